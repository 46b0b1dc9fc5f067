package shapecheck

// Scope carries one binding table across a sequence of checks, so that a
// symbolic name bound by one call is enforced by every later call.
//
// The zero Scope is ready to use. A Scope is not safe for concurrent use.
type Scope struct {
	bindings Bindings
}

// NewScope returns a scope with an empty binding table.
func NewScope() *Scope {
	return &Scope{bindings: make(Bindings)}
}

// NewScopeFrom returns a scope that extends bindings in place.
func NewScopeFrom(bindings Bindings) *Scope {
	if bindings == nil {
		bindings = make(Bindings)
	}
	return &Scope{bindings: bindings}
}

// Bindings returns the live binding table of the scope.
func (s *Scope) Bindings() Bindings {
	return s.table()
}

// Reset drops every binding. Tables handed out earlier by Bindings keep
// their contents.
func (s *Scope) Reset() {
	s.bindings = make(Bindings)
}

// Check validates one shaped value within the scope.
func (s *Scope) Check(array HasShape, pattern Pattern) error {
	return checkShape(array.Shape(), pattern, s.table(), -1)
}

// CheckAll validates a batch within the scope. Argument positions in errors
// are relative to this call.
func (s *Scope) CheckAll(arrays []HasShape, patterns []Pattern) error {
	_, _, err := CheckAll(arrays, patterns, WithBindings(s.table()))
	return err
}

func (s *Scope) table() Bindings {
	if s.bindings == nil {
		s.bindings = make(Bindings)
	}
	return s.bindings
}
