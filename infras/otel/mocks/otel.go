package mocks

import (
	"clinic/infras/otel"
	"context"
	"sync"
)

// Recorder is an otel.Otel that keeps the spans it opened in memory.
type Recorder struct {
	mu      sync.Mutex
	spans   []*Span
	discard bool
}

// NewScope implements otel.Otel.
func (o *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	if o.discard {
		return ctx, discardScope{}
	}

	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	o.mu.Lock()
	o.spans = append(o.spans, span)
	o.mu.Unlock()

	return ctx, &scopeImpl{mu: &o.mu, span: span}
}

// Shutdown implements otel.Otel.
func (o *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns a copy of every span opened so far, in opening order.
func (o *Recorder) Spans() []Span {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := make([]Span, 0, len(o.spans))

	for _, span := range o.spans {
		copied := *span
		copied.Attributes = make(map[string]any, len(span.Attributes))

		for k, v := range span.Attributes {
			copied.Attributes[k] = v
		}

		copied.Errors = append([]error(nil), span.Errors...)
		res = append(res, copied)
	}

	return res
}

// Span returns the first span named name.
func (o *Recorder) Span(name string) (Span, bool) {
	for _, span := range o.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return Span{}, false
}

// NewRecorder returns a tracer whose spans can be inspected with Spans.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a tracer that records nothing.
func NewOtel() otel.Otel {
	return &Recorder{discard: true}
}
