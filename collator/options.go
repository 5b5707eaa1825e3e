package collator

// Option configures a Collator.
type Option func(*config)

type config struct {
	observer  Observer
	nameReuse bool
}

// WithObserver attaches an observer to receive task lifecycle events.
//
// Repeated use composes observers via MultiObserver. Observers are invoked
// synchronously under the engine lock and must not block or call back into
// the Collator.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o == nil {
			return
		}
		if c.observer == nil {
			c.observer = o
			return
		}
		c.observer = MultiObserver(c.observer, o)
	}
}

// WithNameReuse allows re-registering a task name once the previous task with
// that name has reached StateDone.
//
// By default task names stay unique for the lifetime of the Collator, so
// RegisterTask rejects any previously used name even after that task has
// finished.
func WithNameReuse() Option {
	return func(c *config) {
		c.nameReuse = true
	}
}

func defaultConfig() config {
	return config{}
}
