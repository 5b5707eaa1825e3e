package collator

import "errors"

// Sentinel errors for contract violations. All of them are programmer errors
// raised synchronously by the offending call; the engine never retries or
// suppresses them, and its own invariants never surface as errors.
var (
	// ErrDuplicateTask is reported by RegisterTask when the task name is
	// already taken for this run.
	ErrDuplicateTask = errors.New("duplicate task name")

	// ErrWriterClosed is reported by writes on a closed or finished task.
	ErrWriterClosed = errors.New("task writer is closed")

	// ErrAlreadyClosed is reported by Close on a task that was already closed.
	ErrAlreadyClosed = errors.New("task writer already closed")
)
