// Package solo contains single-value, synchronous helpers that operate on
// pfn.Outcome and on slices of inputs. Nothing here blocks or needs a
// context: evaluation of a partial function is pure in-memory work.
//
// Highlights:
// - Map: transform a matched value
// - Recover: retry an unmatched input on a fallback function
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via matched/unmatched handlers
// - Collect/Partition/Filter: apply a function across a slice
// - RunWith: turn a function plus an action into a predicate
package solo
