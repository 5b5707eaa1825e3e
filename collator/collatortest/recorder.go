// Package collatortest provides in-memory recorders for tests and diagnostics.
package collatortest

import (
	"sync"

	"github.com/witcher112/rushstack/collator"
)

// ChunkRecorder records every chunk emitted by a Collator.
//
// ChunkRecorder implements collator.Sink and is safe under concurrent Emit
// calls.
type ChunkRecorder struct {
	chunks []collator.Chunk
	mu     sync.Mutex
}

// NewChunkRecorder constructs a ChunkRecorder.
func NewChunkRecorder() *ChunkRecorder {
	return &ChunkRecorder{}
}

// Emit appends the chunk to the recorder.
func (r *ChunkRecorder) Emit(c collator.Chunk) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.chunks = append(r.chunks, c)
	r.mu.Unlock()
}

// Chunks returns a snapshot copy of recorded chunks in emission order.
func (r *ChunkRecorder) Chunks() []collator.Chunk {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]collator.Chunk, len(r.chunks))
	copy(cp, r.chunks)
	return cp
}

// Texts returns the Text of every recorded chunk in emission order.
func (r *ChunkRecorder) Texts() []string {
	chunks := r.Chunks()
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c.Text)
	}
	return out
}

// TextsOf returns the Text of recorded chunks of the given kind, in emission
// order.
func (r *ChunkRecorder) TextsOf(kind collator.ChunkKind) []string {
	chunks := r.Chunks()
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if c.Kind == kind {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset clears the recorder.
func (r *ChunkRecorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.chunks = nil
	r.mu.Unlock()
}

// EventRecorder records task lifecycle events for tests and diagnostics.
//
// EventRecorder implements collator.Observer and is safe under concurrent
// HandleEvent calls.
type EventRecorder struct {
	events []collator.Event
	mu     sync.Mutex
}

// NewEventRecorder constructs an EventRecorder.
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// HandleEvent appends the event to the recorder.
func (r *EventRecorder) HandleEvent(e collator.Event) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a snapshot copy of recorded events.
func (r *EventRecorder) Events() []collator.Event {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]collator.Event, len(r.events))
	copy(cp, r.events)
	return cp
}

// Reset clears the recorder.
func (r *EventRecorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
