package pfn

// Compile builds a PartialFn from clauses tried in order; the first clause
// whose pattern and guard both hold decides the value. Inputs no clause
// accepts are outside the domain. IsDefinedAt walks the same clauses but
// never runs a transform.
func Compile[A, B any](clauses ...Clause[A, B]) *PartialFn[A, B] {
	cs := append([]Clause[A, B](nil), clauses...)

	return New(
		func(a A) (B, bool) {
			transform, ok := firstMatch(cs, a)
			if !ok {
				var zero B
				return zero, false
			}
			return transform(), true
		},
		func(a A) bool {
			_, ok := firstMatch(cs, a)
			return ok
		},
	)
}

func firstMatch[A, B any](cs []Clause[A, B], a A) (func() B, bool) {
	for _, c := range cs {
		if c.match == nil {
			continue
		}
		if transform, ok := c.match(a); ok {
			return transform, true
		}
	}
	return nil, false
}
