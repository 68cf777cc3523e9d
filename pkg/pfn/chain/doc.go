// Package chain provides a fluent wrapper around pfn.PartialFn
// for composing partial functions step by step.
//
// It composes OrElse, Restrict, AndThen and friends behind a
// convenient Chain[A, B] type. Every step keeps membership and
// evaluation in agreement, so the built function is as safe to
// probe with IsDefinedAt as a compiled one.
//
// Key operations:
// - Start/FromClauses: begin a chain from a function or clauses
// - OrElse/OrElseClauses: fall through to another function
// - Restrict: narrow the domain
// - Map: transform produced values (B -> C)
// - Ensure: run side effects on matched evaluations
// - Finally: evaluate and collapse into a final value via handlers
package chain
