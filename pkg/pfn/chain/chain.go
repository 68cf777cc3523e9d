package chain

import (
	"github.com/ib-77/pfn/pkg/pfn"
)

// Chain wraps a partial function to enable fluent composition
type Chain[A, B any] struct {
	fn *pfn.PartialFn[A, B]
}

// Start creates a new chain from a partial function
func Start[A, B any](f *pfn.PartialFn[A, B]) *Chain[A, B] {
	return &Chain[A, B]{fn: f}
}

// FromClauses creates a new chain from compiled clauses
func FromClauses[A, B any](clauses ...pfn.Clause[A, B]) *Chain[A, B] {
	return Start(pfn.Compile(clauses...))
}

// Build returns the composed partial function
func (c *Chain[A, B]) Build() *pfn.PartialFn[A, B] {
	return c.fn
}

func (c *Chain[A, B]) Call(a A) pfn.Outcome[A, B] {
	return c.fn.Call(a)
}

func (c *Chain[A, B]) IsDefinedAt(a A) bool {
	return c.fn.IsDefinedAt(a)
}

// OrElse falls through to g outside the current domain
func (c *Chain[A, B]) OrElse(g pfn.Func[A, B]) *Chain[A, B] {
	return &Chain[A, B]{fn: pfn.OrElse[A, B](c.fn, g)}
}

// OrElseClauses falls through to the given clauses outside the current domain
func (c *Chain[A, B]) OrElseClauses(clauses ...pfn.Clause[A, B]) *Chain[A, B] {
	return c.OrElse(pfn.Compile(clauses...))
}

// Restrict narrows the domain to inputs satisfying pred
func (c *Chain[A, B]) Restrict(pred func(A) bool) *Chain[A, B] {
	return &Chain[A, B]{fn: pfn.Restrict[A, B](c.fn, pred)}
}

// Ensure performs a side effect on every matched evaluation without
// changing the result. Membership probes do not trigger it.
func (c *Chain[A, B]) Ensure(onMatched func(a A, b B)) *Chain[A, B] {
	f := c.fn
	return &Chain[A, B]{fn: pfn.New(
		func(a A) (B, bool) {
			b, ok := f.Call(a).Get()
			if ok {
				onMatched(a, b)
			}
			return b, ok
		},
		f.IsDefinedAt,
	)}
}

// Named labels the function for domain-miss errors
func (c *Chain[A, B]) Named(name string) *Chain[A, B] {
	return &Chain[A, B]{fn: c.fn.Named(name)}
}

// Map chains a transformation of every produced value
func Map[A, B, C any](c *Chain[A, B], onMatched func(B) C) *Chain[A, C] {
	return &Chain[A, C]{fn: pfn.AndThen[A, B](c.fn, onMatched)}
}

// Finally evaluates the chain at a and collapses the outcome into a value
func Finally[A, B, C any](c *Chain[A, B], a A, onMatched func(B) C, onUnmatched func(error) C) C {
	o := c.fn.Call(a)
	if o.IsMatched() {
		return onMatched(o.Value())
	}
	return onUnmatched(o.Err())
}
