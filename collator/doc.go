// Package collator presents output produced by concurrently-running tasks as a
// single deterministic stream.
//
// Each registered task receives its own Writer. Tasks write through their
// Writer from independent goroutines without coordinating with each other; the
// Collator decides, chunk by chunk, whether output is forwarded to the sink
// immediately or buffered. The combined stream always reads as if the tasks
// ran sequentially in registration order.
//
// # Ordering semantics
//
// Tasks are totally ordered by registration. At any instant the front task is
// the earliest-registered task that has not finished. Writes from the front
// task (with no buffered history) go to the sink synchronously; writes from
// any other task accumulate in that task's private buffer. Writes never block
// and buffers are unbounded.
//
// Closing a task marks it finished-from-the-producer's-side. When the front
// task is closed, its buffered output is flushed to the sink as one in-order
// batch and the front position advances; the flush cascades through any
// already-closed successors and stops at the first task that is still open.
// A task that buffered output and then became front while still open keeps
// buffering until it closes, so a task's chunks always reach the sink in the
// order they were written.
//
// # Concurrency
//
// All Collator and Writer methods are safe for concurrent use across task
// handles. Calls on a single Writer are expected to be sequential: one task
// does not write from two goroutines at once, and the Collator preserves only
// the order in which it received a task's chunks.
//
// # Sinks and observers
//
// The sink is injected at construction and called synchronously while the
// engine lock is held, one Emit per chunk. Sinks and observers must be fast,
// must not block, and must not call back into the Collator.
//
// # Errors
//
// All reported errors are contract violations by the caller (duplicate
// registration, write after close, double close). They are returned
// synchronously from the offending call and wrap the package's sentinel
// errors; the engine has no internal failure modes.
package collator
