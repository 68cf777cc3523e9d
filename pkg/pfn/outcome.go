package pfn

import "github.com/google/uuid"

// origin identifies the function an Outcome came from.
type origin struct {
	id   uuid.UUID
	name string
}

// Outcome is the result of evaluating a PartialFn at one input.
// It is either matched, holding the produced value, or unmatched,
// holding only the input that fell outside the domain.
type Outcome[A, B any] struct {
	input   A
	value   B
	matched bool
	from    origin
}

func Matched[A, B any](input A, value B) Outcome[A, B] {
	return Outcome[A, B]{
		input:   input,
		value:   value,
		matched: true,
	}
}

func Unmatched[A, B any](input A) Outcome[A, B] {
	return Outcome[A, B]{
		input:   input,
		matched: false,
	}
}

func (o Outcome[A, B]) Value() B {
	return o.value
}

func (o Outcome[A, B]) Input() A {
	return o.input
}

func (o Outcome[A, B]) IsMatched() bool {
	return o.matched
}

func (o Outcome[A, B]) IsUnmatched() bool {
	return !o.matched
}

// Get returns the value and whether there was one.
func (o Outcome[A, B]) Get() (B, bool) {
	return o.value, o.matched
}

func (o Outcome[A, B]) OrElse(fallback B) B {
	if o.matched {
		return o.value
	}
	return fallback
}

// Err returns nil for a matched outcome and a *NotDefinedError[A]
// carrying the rejected input otherwise.
func (o Outcome[A, B]) Err() error {
	if o.matched {
		return nil
	}
	return &NotDefinedError[A]{
		Input: o.input,
		Func:  o.from.id,
		Name:  o.from.name,
	}
}

// FuncID is the id of the PartialFn that produced the outcome,
// uuid.Nil for outcomes built directly with Matched or Unmatched.
func (o Outcome[A, B]) FuncID() uuid.UUID {
	return o.from.id
}

func (o Outcome[A, B]) withOrigin(from origin) Outcome[A, B] {
	o.from = from
	return o
}

// UnmatchedFrom re-types an unmatched outcome, keeping its input and
// the function it came from.
func UnmatchedFrom[A, B, C any](from Outcome[A, B]) Outcome[A, C] {
	return Outcome[A, C]{
		input:   from.input,
		matched: false,
		from:    from.from,
	}
}

// MatchedFrom replaces the value of a matched outcome, keeping its input
// and the function it came from.
func MatchedFrom[A, B, C any](from Outcome[A, B], value C) Outcome[A, C] {
	return Outcome[A, C]{
		input:   from.input,
		value:   value,
		matched: true,
		from:    from.from,
	}
}
