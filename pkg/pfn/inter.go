package pfn

// Definer answers domain membership without evaluating anything.
type Definer[A any] interface {
	// IsDefinedAt reports whether a lies in the domain
	IsDefinedAt(a A) bool
}

// Evaluator evaluates a function at one input.
type Evaluator[A, B any] interface {
	// Call evaluates at a, returning an unmatched outcome outside the domain
	Call(a A) Outcome[A, B]
}

// Func is anything that behaves as a partial function. Implementations
// must keep IsDefinedAt(a) equal to Call(a).IsMatched() for every a.
type Func[A, B any] interface {
	Definer[A]
	Evaluator[A, B]
}

var _ Func[int, int] = (*PartialFn[int, int])(nil)
