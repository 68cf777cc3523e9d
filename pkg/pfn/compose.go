package pfn

import "maps"

// OrElse is defined wherever any of fs is, and evaluates with the first
// of them defined at the input.
func OrElse[A, B any](fs ...Func[A, B]) *PartialFn[A, B] {
	fs = append([]Func[A, B](nil), fs...)

	return New(
		func(a A) (B, bool) {
			for _, f := range fs {
				if o := f.Call(a); o.IsMatched() {
					return o.Value(), true
				}
			}
			var zero B
			return zero, false
		},
		func(a A) bool {
			for _, f := range fs {
				if f.IsDefinedAt(a) {
					return true
				}
			}
			return false
		},
	)
}

// AndThen applies k to every value f produces. The domain stays f's.
func AndThen[A, B, C any](f Func[A, B], k func(B) C) *PartialFn[A, C] {
	return New(
		func(a A) (C, bool) {
			o := f.Call(a)
			if o.IsUnmatched() {
				var zero C
				return zero, false
			}
			return k(o.Value()), true
		},
		f.IsDefinedAt,
	)
}

// Restrict narrows f's domain to the inputs satisfying pred.
func Restrict[A, B any](f Func[A, B], pred func(A) bool) *PartialFn[A, B] {
	return New(
		func(a A) (B, bool) {
			if !pred(a) {
				var zero B
				return zero, false
			}
			return f.Call(a).Get()
		},
		func(a A) bool {
			return pred(a) && f.IsDefinedAt(a)
		},
	)
}

// FromMap is defined exactly on m's keys. m is copied.
func FromMap[A comparable, B any](m map[A]B) *PartialFn[A, B] {
	table := maps.Clone(m)

	return New(
		func(a A) (B, bool) {
			b, ok := table[a]
			return b, ok
		},
		func(a A) bool {
			_, ok := table[a]
			return ok
		},
	)
}

func Total[A, B any](fn func(A) B) *PartialFn[A, B] {
	return New(
		func(a A) (B, bool) { return fn(a), true },
		func(A) bool { return true },
	)
}

func Nowhere[A, B any]() *PartialFn[A, B] {
	return New(nowhereEval[A, B], nowhereDefined[A])
}
