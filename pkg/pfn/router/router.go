package router

import (
	"context"
	"log/slog"

	"github.com/ib-77/pfn/pkg/pfn"
	"github.com/ib-77/pfn/pkg/pfn/core"
)

// Route is a named partial function competing for inputs.
type Route[A, B any] struct {
	Name string
	Fn   pfn.Func[A, B]
}

// Delivery is the outcome of dispatching one input. Route is empty when
// no route accepted the input.
type Delivery[A, B any] struct {
	Route   string
	Outcome pfn.Outcome[A, B]
}

// Router sends each input to the first route, in registration order,
// whose domain contains it.
type Router[A, B any] struct {
	log *slog.Logger

	routes []Route[A, B]
	miss   *pfn.PartialFn[A, B]
}

var _ pfn.Func[int, int] = (*Router[int, int])(nil)

// NewRouter builds a router over routes. A nil log discards log output.
func NewRouter[A, B any](log *slog.Logger, routes ...Route[A, B]) *Router[A, B] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Router[A, B]{
		log: log,

		routes: append([]Route[A, B](nil), routes...),
		miss:   pfn.Nowhere[A, B]().Named("router"),
	}
}

// Resolve finds the route for a by membership probes alone; no transform
// runs.
func (r *Router[A, B]) Resolve(a A) (Route[A, B], bool) {
	for _, route := range r.routes {
		if route.Fn.IsDefinedAt(a) {
			return route, true
		}
	}
	return Route[A, B]{}, false
}

func (r *Router[A, B]) Dispatch(a A) Delivery[A, B] {
	route, ok := r.Resolve(a)
	if !ok {
		r.log.Info("No route defined for input", "input", a)
		return Delivery[A, B]{Outcome: r.miss.Call(a)}
	}

	o := route.Fn.Call(a)
	if o.IsUnmatched() {
		// Only a Func breaking its own membership contract gets here.
		r.log.Warn("Route rejected an input it claimed", "route", route.Name, "input", a)
	} else {
		r.log.Debug("Dispatched input", "route", route.Name, "input", a)
	}
	return Delivery[A, B]{Route: route.Name, Outcome: o}
}

func (r *Router[A, B]) Call(a A) pfn.Outcome[A, B] {
	return r.Dispatch(a).Outcome
}

func (r *Router[A, B]) IsDefinedAt(a A) bool {
	_, ok := r.Resolve(a)
	return ok
}

// Routes returns the route names in dispatch order.
func (r *Router[A, B]) Routes() []string {
	names := make([]string, 0, len(r.routes))
	for _, route := range r.routes {
		names = append(names, route.Name)
	}
	return names
}

// Serve dispatches every input from inputCh on lines concurrent workers;
// a non-positive count is taken from ctx (core.WithWorkerOptions), else 1.
// Cancellation stops the workers; the rest of the input is drained unless
// disabled with core.WithProcessOptions.
func (r *Router[A, B]) Serve(ctx context.Context, inputCh <-chan A, lines int) <-chan Delivery[A, B] {
	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	handlers := core.CancellationHandlers[A, Delivery[A, B]]{
		OnCancel: func(ctx context.Context, inputCh <-chan A, outCh chan<- Delivery[A, B]) {
			r.log.Warn("Stopping dispatch", "cause", context.Cause(ctx))
			core.DrainRemaining(ctx, inputCh, outCh)
		},
		OnCancelProcessed: func(ctx context.Context, in A, processed Delivery[A, B], _ chan<- Delivery[A, B]) {
			r.log.Debug("Dropping dispatched input after cancellation", "route", processed.Route, "input", in)
		},
	}

	return core.Engine(ctx, inputCh,
		func(_ context.Context, a A) Delivery[A, B] { return r.Dispatch(a) },
		handlers, nil, lines)
}
