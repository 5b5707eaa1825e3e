package collator

import (
	"io"
	"sync"
)

// Discard is a Sink that drops all chunks.
var Discard Sink = SinkFunc(func(Chunk) {})

// MultiSink fans out chunks to multiple sinks.
//
// Sinks are invoked in the order given, once per chunk. Nil sinks are ignored.
func MultiSink(sinks ...Sink) Sink {
	cp := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			cp = append(cp, s)
		}
	}
	if len(cp) == 0 {
		return Discard
	}
	if len(cp) == 1 {
		return cp[0]
	}

	return SinkFunc(func(c Chunk) {
		for _, s := range cp {
			s.Emit(c)
		}
	})
}

// writerSink routes chunks to a pair of io.Writers under a mutex so the
// underlying streams stay atomic even when shared with other writers.
type writerSink struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewWriterSink returns a Sink that writes KindPrimary chunks to out and
// KindSecondary chunks to err. A nil err falls back to out.
//
// Write errors on the underlying writers are dropped: the sink boundary is
// fire-and-forget, and a sink that needs error handling should implement Sink
// directly.
func NewWriterSink(out, err io.Writer) Sink {
	if err == nil {
		err = out
	}
	return &writerSink{out: out, err: err}
}

func (s *writerSink) Emit(c Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.out
	if c.Kind == KindSecondary {
		w = s.err
	}
	_, _ = io.WriteString(w, c.Text)
}
