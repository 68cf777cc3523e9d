package lite

import (
	"context"

	"github.com/ib-77/pfn/pkg/pfn"
	"github.com/ib-77/pfn/pkg/pfn/core"
)

// Run evaluates f at every input with the given number of workers; a
// non-positive count is taken from ctx (core.WithWorkerOptions), else 1.
// Outcomes arrive in no particular order when workers > 1.
func Run[A, B any](ctx context.Context, inputCh <-chan A, f pfn.Evaluator[A, B], workers int) <-chan pfn.Outcome[A, B] {
	return core.Engine(ctx, inputCh,
		func(_ context.Context, a A) pfn.Outcome[A, B] { return f.Call(a) },
		core.DrainHandlers[A, pfn.Outcome[A, B]](),
		nil,
		workerCount(ctx, workers))
}

func workerCount(ctx context.Context, workers int) int {
	if workers > 0 {
		return workers
	}
	return core.GetWorkerMaxCount(ctx, 1)
}

func RunSingle[A, B any](ctx context.Context, inputCh <-chan A, f pfn.Evaluator[A, B]) <-chan pfn.Outcome[A, B] {
	return Run(ctx, inputCh, f, 1)
}

// Collect keeps only the values of inputs inside f's domain.
func Collect[A, B any](ctx context.Context, inputCh <-chan A, f pfn.Evaluator[A, B], workers int) <-chan B {
	return Finally(ctx, Run(ctx, inputCh, f, workers), FinallyHandlers[A, B, B]{
		OnMatched: func(_ context.Context, b B) (B, bool) { return b, true },
	})
}

type FinallyHandlers[A, B, C any] struct {
	OnMatched   func(ctx context.Context, b B) (C, bool)
	OnUnmatched func(ctx context.Context, err error) (C, bool)
}

// Finally folds every outcome into a value. A handler returning false, or a
// missing handler, drops the outcome.
func Finally[A, B, C any](ctx context.Context, inputCh <-chan pfn.Outcome[A, B],
	handlers FinallyHandlers[A, B, C]) <-chan C {

	out := make(chan C)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				core.DrainRemaining[pfn.Outcome[A, B], C](ctx, inputCh, out)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res, keep := finalize(ctx, in, handlers)
				if !keep {
					continue
				}

				select {
				case <-ctx.Done():
					core.DrainRemaining[pfn.Outcome[A, B], C](ctx, inputCh, out)
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}

func finalize[A, B, C any](ctx context.Context, in pfn.Outcome[A, B], handlers FinallyHandlers[A, B, C]) (C, bool) {
	var zero C
	if in.IsMatched() {
		if handlers.OnMatched == nil {
			return zero, false
		}
		return handlers.OnMatched(ctx, in.Value())
	}
	if handlers.OnUnmatched == nil {
		return zero, false
	}
	return handlers.OnUnmatched(ctx, in.Err())
}
