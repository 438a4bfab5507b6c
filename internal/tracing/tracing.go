// Package tracing records coarse timing spans for a single run and prints them on demand.
// A nil *Tracer is valid and records nothing, so callers never need to check whether tracing is on.
package tracing

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Tracer collects spans from concurrently running hooks
type Tracer struct {
	mu    sync.Mutex
	now   func() time.Time
	out   io.Writer
	spans []*Span
}

// Span measures one named operation
type Span struct {
	name   string
	now    func() time.Time
	start  time.Time
	end    time.Time
	ended  bool
	tracer *Tracer
}

// New creates a tracer that prints to out when flushed
func New(out io.Writer) *Tracer {
	return &Tracer{
		now: time.Now,
		out: out,
	}
}

// Start opens a span. Spans are reported in the order they were started.
func (t *Tracer) Start(name string) *Span {
	if t == nil {
		return nil
	}

	span := &Span{
		name:   name,
		now:    t.now,
		start:  t.now(),
		tracer: t,
	}
	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()
	return span
}

// End closes the span; calling it more than once keeps the first end time
func (s *Span) End() {
	if s == nil {
		return
	}

	s.tracer.mu.Lock()
	defer s.tracer.mu.Unlock()
	if !s.ended {
		s.end = s.now()
		s.ended = true
	}
}

// Flush writes every span and its elapsed time, then forgets them
func (t *Tracer) Flush() error {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	spans := t.spans
	t.spans = nil
	t.mu.Unlock()

	if _, err := fmt.Fprintf(t.out, "Traced %d span(s):\n", len(spans)); err != nil {
		return err
	}
	for _, span := range spans {
		if _, err := fmt.Fprintf(t.out, "%s %s\n", span.name, span.elapsed()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Span) elapsed() string {
	s.tracer.mu.Lock()
	ended, start, end := s.ended, s.start, s.end
	s.tracer.mu.Unlock()

	if !ended {
		return "unfinished"
	}
	return humanDuration(end.Sub(start))
}

// humanDuration prints microseconds for very short spans and milliseconds otherwise
func humanDuration(d time.Duration) string {
	if d.Milliseconds() <= 2 {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
