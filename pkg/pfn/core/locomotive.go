package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In, outCh chan<- Out)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- Out)
	OnCancelProcessed   func(ctx context.Context, in In, processed Out, outCh chan<- Out)
}

// Locomotive is one worker: it applies apply to every value from inputCh
// and forwards the result to outCh until inputCh closes or ctx is done.
// wg.Done is called on exit.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	apply func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			pr := apply(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}

// Engine starts lines locomotives over a shared input and returns their
// merged output, closed once every locomotive has stopped.
func Engine[In, Out any](ctx context.Context, inputCh <-chan In,
	apply func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out), lines int) <-chan Out {

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, apply, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
