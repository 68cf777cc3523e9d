package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	// DrainRemaining makes workers consume the rest of their input after
	// cancellation so producers feeding them never block.
	DrainRemaining bool
}

func WithProcessOptions(ctx context.Context, drainRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{DrainRemaining: drainRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker count carried by ctx, or
// defaultMaxWorkers when none (or a non-positive one) is set.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsDrainRemainingEnabled(ctx context.Context, defaultDrainRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.DrainRemaining
	}
	return defaultDrainRemaining
}
