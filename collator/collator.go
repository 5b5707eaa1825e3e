package collator

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Collator owns the registry of per-task writers and decides when each task's
// output is safe to emit to the sink.
//
// A Collator is safe for concurrent use across task handles. See the package
// documentation for ordering semantics.
type Collator struct {
	mu  sync.Mutex
	cfg config

	sink Sink

	// entries holds every registered task in registration order; a task's
	// registration index is its position in this slice and is never reassigned.
	entries []*taskEntry

	// byName maps a task name to its most recent entry.
	byName map[string]*taskEntry

	// frontIdx is a monotone scan offset: every entry before it is Done. The
	// front task is recomputed from it rather than cached, so cascades cannot
	// leave a stale pointer behind.
	frontIdx int
}

type taskEntry struct {
	name      string
	index     int
	state     TaskState
	buffer    []Chunk
	activated bool
}

// New constructs a Collator that emits finished chunks to sink.
//
// A nil sink discards all output.
func New(sink Sink, opts ...Option) *Collator {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if sink == nil {
		sink = Discard
	}
	return &Collator{
		cfg:    cfg,
		sink:   sink,
		byName: make(map[string]*taskEntry),
	}
}

// RegisterTask creates a task at the next registration position and returns
// its Writer.
//
// The name must be non-empty and unique for this run; registering a name that
// is already taken fails with ErrDuplicateTask. Under WithNameReuse a name
// becomes available again once its previous task reaches StateDone. Tasks may
// be registered at any time; a new task always queues strictly after every
// existing one.
func (c *Collator) RegisterTask(name string) (*Writer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("collator: register task: empty name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, exists := c.byName[name]; exists {
		if !c.cfg.nameReuse || prev.state != StateDone {
			return nil, fmt.Errorf("collator: register task %q: %w", name, ErrDuplicateTask)
		}
	}

	e := &taskEntry{
		name:  name,
		index: len(c.entries),
		state: StateOpen,
	}
	c.entries = append(c.entries, e)
	c.byName[name] = e

	c.notify(EventTaskRegistered, e)
	c.notifyActive()

	return &Writer{collator: c, entry: e}, nil
}

// write forwards or buffers one chunk for e.
func (c *Collator) write(e *taskEntry, ch Chunk) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.state != StateOpen {
		return fmt.Errorf("collator: write to task %q: %w", e.name, ErrWriterClosed)
	}

	// Live-forward only when this task is front with no buffered history;
	// otherwise append, so a task's chunks reach the sink in write order.
	if c.front() == e && len(e.buffer) == 0 {
		c.sink.Emit(ch)
		return nil
	}
	e.buffer = append(e.buffer, ch)
	return nil
}

// close marks e closed and runs the flush cascade.
func (c *Collator) close(e *taskEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.state != StateOpen {
		return fmt.Errorf("collator: close task %q: %w", e.name, ErrAlreadyClosed)
	}
	e.state = StateClosed
	c.cascade()
	return nil
}

// front returns the entry with the lowest registration index that is not yet
// Done, or nil if every task has finished. Entries only ever transition to
// Done in index order, so the scan offset never moves backward.
func (c *Collator) front() *taskEntry {
	for c.frontIdx < len(c.entries) {
		if c.entries[c.frontIdx].state != StateDone {
			return c.entries[c.frontIdx]
		}
		c.frontIdx++
	}
	return nil
}

// cascade flushes closed tasks from the front of the queue until it reaches a
// task that is still open, or the queue empties. Each flushed buffer goes to
// the sink as one in-order batch, one Emit per chunk.
func (c *Collator) cascade() {
	for {
		e := c.front()
		if e == nil || e.state != StateClosed {
			break
		}
		for _, ch := range e.buffer {
			c.sink.Emit(ch)
		}
		e.buffer = nil
		e.state = StateDone
		c.notify(EventTaskDone, e)
	}
	c.notifyActive()
}

// notifyActive emits EventTaskActivated the first time the current front task
// is observed open with an empty buffer. A front task that already buffered
// output keeps buffering until close and never activates.
func (c *Collator) notifyActive() {
	e := c.front()
	if e == nil || e.activated || e.state != StateOpen || len(e.buffer) != 0 {
		return
	}
	e.activated = true
	c.notify(EventTaskActivated, e)
}

func (c *Collator) notify(t EventType, e *taskEntry) {
	if c.cfg.observer == nil {
		return
	}
	c.cfg.observer.HandleEvent(Event{Type: t, Task: e.name, Index: e.index})
}
