package core

import "context"

// DrainRemaining discards what is left on inputCh, if the drain option
// of ctx allows it (on by default).
func DrainRemaining[In, Out any](ctx context.Context, inputCh <-chan In, _ chan<- Out) {
	if !IsDrainRemainingEnabled(ctx, true) {
		return
	}
	for range inputCh {
	}
}

// DrainHandlers are cancellation handlers that drop in-flight work and
// drain the rest of the input.
func DrainHandlers[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel: DrainRemaining[In, Out],
	}
}
