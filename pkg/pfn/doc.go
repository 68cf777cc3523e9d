// Package pfn implements partial functions: functions from A to B that are
// defined only on part of A.
//
// A PartialFn answers two questions about an input. IsDefinedAt says whether
// the input lies in the domain without evaluating anything; Call evaluates
// and returns an Outcome that is either matched (holding the value) or
// unmatched (holding the rejected input, see Outcome.Err). The two always
// agree: IsDefinedAt(a) is true exactly when Call(a) is matched.
//
// Most functions are built with Compile from an ordered list of clauses:
//
//	classify := pfn.Compile(
//		pfn.Case(pfn.OneOf(1, 2), func(int) string { return "low" }),
//		pfn.CaseIf(pfn.Between(3, 10),
//			func(n int) bool { return n%2 == 0 },
//			func(n int) string { return "even" }),
//	)
//
// Clauses are tried in order and the first one whose pattern and guard
// hold wins. A guard only runs after its pattern matched, and a transform
// only runs for the winning clause, so membership probes never trigger
// transforms.
//
// Highlights:
// - Compile/Case/CaseIf/Default: build from clauses
// - Eq/OneOf/Between/Wildcard/As/Alt/Project/Bind: patterns
// - New: build from two hand-written, already consistent procedures
// - OrElse/AndThen/Restrict: compose while keeping the two procedures in agreement
// - FromMap/Total/Nowhere: ready-made functions
package pfn
