package pfn

import "cmp"

// Pattern is a structural test over A. On a match it returns the
// bindings V that the clause's guard and transform get to see.
type Pattern[A, V any] func(A) (V, bool)

// Eq matches one literal and binds it.
func Eq[A comparable](want A) Pattern[A, A] {
	return func(a A) (A, bool) {
		return a, a == want
	}
}

// OneOf matches any of the listed literals.
func OneOf[A comparable](wants ...A) Pattern[A, A] {
	alts := make([]Pattern[A, A], 0, len(wants))
	for _, w := range wants {
		alts = append(alts, Eq(w))
	}
	return Alt(alts...)
}

// Between matches lo <= a <= hi.
func Between[A cmp.Ordered](lo, hi A) Pattern[A, A] {
	return func(a A) (A, bool) {
		return a, cmp.Compare(a, lo) >= 0 && cmp.Compare(a, hi) <= 0
	}
}

// Wildcard matches every input and binds it.
func Wildcard[A any]() Pattern[A, A] {
	return func(a A) (A, bool) {
		return a, true
	}
}

// As matches inputs whose dynamic type is V, the usual way of telling
// apart the variants of a sum type held in an interface.
func As[A, V any]() Pattern[A, V] {
	return func(a A) (V, bool) {
		v, ok := any(a).(V)
		return v, ok
	}
}

// Alt tries each alternative in order against the same input; the first
// one that matches supplies the bindings. A guard on the enclosing clause
// sees only those bindings and a failing guard does not retry the later
// alternatives. To give every alternative its own chance at the guard,
// write one CaseIf per alternative instead.
func Alt[A, V any](alts ...Pattern[A, V]) Pattern[A, V] {
	alts = append([]Pattern[A, V](nil), alts...)
	return func(a A) (V, bool) {
		for _, p := range alts {
			if v, ok := p(a); ok {
				return v, true
			}
		}
		var zero V
		return zero, false
	}
}

// Project reshapes the bindings of p, e.g. from a variant to its field.
func Project[A, V, W any](p Pattern[A, V], f func(V) W) Pattern[A, W] {
	return func(a A) (W, bool) {
		v, ok := p(a)
		if !ok {
			var zero W
			return zero, false
		}
		return f(v), true
	}
}

// Bind binds the whole input when p matches it, ignoring p's bindings.
func Bind[A, V any](p Pattern[A, V]) Pattern[A, A] {
	return func(a A) (A, bool) {
		_, ok := p(a)
		return a, ok
	}
}
