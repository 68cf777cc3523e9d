package pfn

import "github.com/google/uuid"

// PartialFn is a function from A to B defined only on part of A.
// It is immutable once built and safe for concurrent use as long as
// the procedures it was built from are.
type PartialFn[A, B any] struct {
	from    origin
	eval    func(A) (B, bool)
	defined func(A) bool
}

// New builds a PartialFn from an evaluation procedure and a membership
// procedure. The caller guarantees defined(a) == true exactly when eval
// reports a value for a. Nil procedures mean "defined nowhere".
func New[A, B any](eval func(A) (B, bool), defined func(A) bool) *PartialFn[A, B] {
	if eval == nil || defined == nil {
		eval, defined = nowhereEval[A, B], nowhereDefined[A]
	}
	return &PartialFn[A, B]{
		from:    origin{id: uuid.New()},
		eval:    eval,
		defined: defined,
	}
}

func (f *PartialFn[A, B]) Call(a A) Outcome[A, B] {
	if b, ok := f.lift()(a); ok {
		return Matched[A](a, b).withOrigin(f.from)
	}
	return Unmatched[A, B](a).withOrigin(f.from)
}

func (f *PartialFn[A, B]) IsDefinedAt(a A) bool {
	if f.defined == nil {
		return false
	}
	return f.defined(a)
}

// Lift turns f into a total function returning an optional value.
func (f *PartialFn[A, B]) Lift() func(A) (B, bool) {
	return f.lift()
}

// lift treats the zero PartialFn as defined nowhere.
func (f *PartialFn[A, B]) lift() func(A) (B, bool) {
	if f.eval == nil {
		return nowhereEval[A, B]
	}
	return f.eval
}

// ApplyOrElse evaluates f at a, or fallback when a is outside the domain.
func (f *PartialFn[A, B]) ApplyOrElse(a A, fallback func(A) B) B {
	if b, ok := f.lift()(a); ok {
		return b
	}
	return fallback(a)
}

func (f *PartialFn[A, B]) ID() uuid.UUID {
	return f.from.id
}

func (f *PartialFn[A, B]) Name() string {
	return f.from.name
}

// Named returns a copy of f carrying name in its domain-miss errors.
// The copy keeps f's id.
func (f *PartialFn[A, B]) Named(name string) *PartialFn[A, B] {
	named := *f
	named.from.name = name
	return &named
}

func (f *PartialFn[A, B]) String() string {
	return describe(f.from.id, f.from.name)
}

func nowhereEval[A, B any](A) (B, bool) {
	var zero B
	return zero, false
}

func nowhereDefined[A any](A) bool {
	return false
}
