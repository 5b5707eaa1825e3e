package collator

// ChunkKind classifies a chunk of task output.
type ChunkKind uint8

const (
	// KindPrimary marks ordinary output (stdout-like).
	KindPrimary ChunkKind = iota

	// KindSecondary marks error-style output (stderr-like).
	KindSecondary
)

// String returns a short human-readable name for the kind.
func (k ChunkKind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Chunk is one immutable unit of task output.
//
// The engine treats Text as opaque: chunks are never split, merged, or
// inspected, and Kind is forwarded unchanged to the sink.
type Chunk struct {
	Text string
	Kind ChunkKind
}

// TaskState describes where a task is in its lifecycle.
type TaskState uint8

const (
	// StateOpen indicates the task is registered and may still write.
	StateOpen TaskState = iota

	// StateClosed indicates the task's writer was closed but buffered output
	// may not have reached the sink yet.
	StateClosed

	// StateDone indicates the task is closed and fully flushed. Terminal.
	StateDone
)

// String returns a short human-readable name for the state.
func (s TaskState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Sink receives chunks the moment they become emittable, either live-forwarded
// from the front task or as part of a flush batch.
//
// Emit is called synchronously under the engine lock, one call per chunk in
// emission order. Implementations must not mutate the chunk and must not call
// back into the Collator.
type Sink interface {
	Emit(Chunk)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Chunk)

// Emit calls f(c).
func (f SinkFunc) Emit(c Chunk) {
	f(c)
}

// EventType describes the type of task lifecycle event.
type EventType uint8

const (
	// EventTaskRegistered indicates a task was registered and queued.
	EventTaskRegistered EventType = iota

	// EventTaskActivated indicates a task became the live front task: it is
	// open with an empty buffer, and its subsequent writes forward straight to
	// the sink. Tasks that buffered output before reaching the front close
	// without ever activating.
	EventTaskActivated

	// EventTaskDone indicates a task was closed and fully flushed.
	EventTaskDone
)

// Event is a fire-and-forget notification about task lifecycle.
//
// Events are emitted synchronously under the engine lock, so observers see
// them in one deterministic total order.
type Event struct {
	Task  string
	Index int
	Type  EventType
}

// Observer receives task lifecycle events emitted by the Collator.
//
// HandleEvent is called while the engine lock is held; implementations must
// not block and must not call back into the Collator.
type Observer interface {
	HandleEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// HandleEvent calls f(e).
func (f ObserverFunc) HandleEvent(e Event) {
	f(e)
}

// MultiObserver fans out events to multiple observers.
//
// Observers are invoked in the order given. Nil observers are ignored.
func MultiObserver(obs ...Observer) Observer {
	// Copy to avoid surprises if caller mutates the input slice.
	cp := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			cp = append(cp, o)
		}
	}
	if len(cp) == 0 {
		return ObserverFunc(func(Event) {})
	}
	if len(cp) == 1 {
		return cp[0]
	}

	return ObserverFunc(func(e Event) {
		for _, o := range cp {
			o.HandleEvent(e)
		}
	})
}
