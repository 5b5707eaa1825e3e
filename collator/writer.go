package collator

// Writer is the per-task capability for emitting output and signaling
// completion. It is issued by Collator.RegisterTask and delegates all ordering
// decisions to the Collator.
//
// Calls on one Writer are expected to be sequential; different Writers may be
// used from different goroutines concurrently.
type Writer struct {
	collator *Collator
	entry    *taskEntry
}

// Name returns the task name this writer was registered under.
func (w *Writer) Name() string {
	return w.entry.name
}

// Write emits text as ordinary (primary) output.
//
// It returns ErrWriterClosed if the writer has been closed. Write never
// blocks: output is either forwarded to the sink synchronously or appended to
// this task's unbounded buffer.
func (w *Writer) Write(text string) error {
	return w.collator.write(w.entry, Chunk{Text: text, Kind: KindPrimary})
}

// WriteError emits text as error-style (secondary) output.
func (w *Writer) WriteError(text string) error {
	return w.collator.write(w.entry, Chunk{Text: text, Kind: KindSecondary})
}

// WriteChunk emits an explicit chunk.
func (w *Writer) WriteChunk(c Chunk) error {
	return w.collator.write(w.entry, c)
}

// Close signals that this task will produce no further output.
//
// If the task is at the front of the queue, its buffered output (and that of
// any already-closed successors) is flushed to the sink before Close returns.
// Close returns ErrAlreadyClosed if called twice.
func (w *Writer) Close() error {
	return w.collator.close(w.entry)
}

// State returns the task's current lifecycle state.
func (w *Writer) State() TaskState {
	w.collator.mu.Lock()
	defer w.collator.mu.Unlock()
	return w.entry.state
}

// PeekBuffer returns a snapshot of the task's unflushed buffer, in write
// order.
//
// The buffer is empty for a task whose writes are being live-forwarded and
// always empty once the task is Done.
func (w *Writer) PeekBuffer() []Chunk {
	w.collator.mu.Lock()
	defer w.collator.mu.Unlock()
	cp := make([]Chunk, len(w.entry.buffer))
	copy(cp, w.entry.buffer)
	return cp
}
