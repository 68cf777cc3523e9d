package solo

import "github.com/ib-77/pfn/pkg/pfn"

func Map[A, B, C any](input pfn.Outcome[A, B], onMatched func(B) C) pfn.Outcome[A, C] {
	if input.IsMatched() {
		return pfn.MatchedFrom(input, onMatched(input.Value()))
	}
	return pfn.UnmatchedFrom[A, B, C](input)
}

// Recover gives an unmatched input a second chance on fallback.
func Recover[A, B any](input pfn.Outcome[A, B], fallback pfn.Evaluator[A, B]) pfn.Outcome[A, B] {
	if input.IsMatched() {
		return input
	}
	return fallback.Call(input.Input())
}

func Tee[A, B any](input pfn.Outcome[A, B], onMatched func(a A, b B)) pfn.Outcome[A, B] {
	if input.IsMatched() {
		onMatched(input.Input(), input.Value())
	}
	return input
}

func DoubleTee[A, B any](input pfn.Outcome[A, B],
	onMatched func(a A, b B),
	onUnmatched func(err error)) pfn.Outcome[A, B] {

	if input.IsMatched() {
		onMatched(input.Input(), input.Value())
	} else {
		onUnmatched(input.Err())
	}
	return input
}

func Finally[A, B, C any](input pfn.Outcome[A, B],
	onMatched func(b B) C,
	onUnmatched func(err error) C) C {

	if input.IsMatched() {
		return onMatched(input.Value())
	}
	return onUnmatched(input.Err())
}

// Collect evaluates f at every input and keeps the values of the ones in
// its domain, in input order.
func Collect[A, B any](f pfn.Evaluator[A, B], inputs []A) []B {
	res := make([]B, 0, len(inputs))
	for _, a := range inputs {
		if b, ok := f.Call(a).Get(); ok {
			res = append(res, b)
		}
	}
	return res
}

// Partition is Collect that also returns the inputs outside the domain.
func Partition[A, B any](f pfn.Evaluator[A, B], inputs []A) (matched []B, unmatched []A) {
	matched = make([]B, 0, len(inputs))
	unmatched = make([]A, 0)
	for _, a := range inputs {
		o := f.Call(a)
		if o.IsMatched() {
			matched = append(matched, o.Value())
		} else {
			unmatched = append(unmatched, a)
		}
	}
	return matched, unmatched
}

// Filter keeps the inputs in f's domain without evaluating f.
func Filter[A any](f pfn.Definer[A], inputs []A) []A {
	res := make([]A, 0, len(inputs))
	for _, a := range inputs {
		if f.IsDefinedAt(a) {
			res = append(res, a)
		}
	}
	return res
}

// RunWith returns a predicate that runs action on f's value whenever its
// input is in the domain, and reports whether it was.
func RunWith[A, B any](f pfn.Evaluator[A, B], action func(b B)) func(a A) bool {
	return func(a A) bool {
		b, ok := f.Call(a).Get()
		if ok {
			action(b)
		}
		return ok
	}
}
