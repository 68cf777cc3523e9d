package core

import (
	"context"
	"sync"
)

// ToChanFromArgs streams values into a new channel, stopping early when
// ctx is done. The channel is closed when the producer finishes.
func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany collects everything from out until it closes or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
