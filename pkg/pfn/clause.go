package pfn

// Clause is one guarded case of a partial function. The binding type of
// its pattern is hidden so clauses with different patterns can share a list.
type Clause[A, B any] struct {
	// match tests pattern and guard; on success it returns the deferred
	// transform over the bindings it found
	match func(A) (func() B, bool)
}

// Case is a clause without a guard.
func Case[A, V, B any](p Pattern[A, V], transform func(V) B) Clause[A, B] {
	return CaseIf(p, nil, transform)
}

// CaseIf is a clause whose guard runs only when p matched, and whose
// transform runs only when the guard passed. A nil guard always passes.
func CaseIf[A, V, B any](p Pattern[A, V], guard func(V) bool, transform func(V) B) Clause[A, B] {
	return Clause[A, B]{
		match: func(a A) (func() B, bool) {
			v, ok := p(a)
			if !ok {
				return nil, false
			}
			if guard != nil && !guard(v) {
				return nil, false
			}
			return func() B { return transform(v) }, true
		},
	}
}

// Default is a catch-all clause; placed last it makes the function total.
func Default[A, B any](transform func(A) B) Clause[A, B] {
	return Case(Wildcard[A](), transform)
}
