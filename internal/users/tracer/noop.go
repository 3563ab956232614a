package tracer

import "context"

// Noop is a tracer that records nothing. Use it in tests or when tracing is
// disabled.
type Noop struct{}

// NewNoop creates a no-op tracer.
func NewNoop() *Noop {
	return &Noop{}
}

// Start returns the context unchanged and a span that does nothing.
func (Noop) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error)                  {}
func (noopSpan) SetAttributes(...Attribute) {}

var (
	_ Tracer = (*Noop)(nil)
	_ Span   = noopSpan{}
)
