package mocks

import "sync"

// Span is what a recording scope saw before End.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

type scopeImpl struct {
	mu   *sync.Mutex
	span *Span
}

func (s *scopeImpl) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Ended = true
}

func (s *scopeImpl) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Errors = append(s.span.Errors, err)
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Events = append(s.span.Events, name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Attributes[key] = value
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range attributes {
		s.span.Attributes[k] = v
	}
}

type discardScope struct{}

func (discardScope) End()                         {}
func (discardScope) TraceError(error)             {}
func (discardScope) TraceIfError(error)           {}
func (discardScope) AddEvent(string)              {}
func (discardScope) SetAttribute(string, any)     {}
func (discardScope) SetAttributes(map[string]any) {}
