package resolver

import (
	"context"
	"slices"

	"github.com/diwise/library-resolver/pkg/library/dependents"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

//go:generate moq -rm -out resolver_mock_test.go . StateReader ColdStoreReader Dispatcher

// StateReader gives synchronous access to the in-memory index
type StateReader interface {
	Item(container, uri string) (types.Entity, bool)
}

// ColdStoreReader reads whole entities from the persistent cache. A miss is
// reported as a nil entity and a nil error.
type ColdStoreReader interface {
	Get(ctx context.Context, uri string) (types.Entity, error)
}

// Dispatcher is the set of index mutations the resolver may request
type Dispatcher interface {
	SetLoading(ctx context.Context, uri string, loading bool)
	StopLoading(ctx context.Context, uri string)
	LoadItems(ctx context.Context, itemType string, uris []string)
	RestoreItemsFromColdStore(ctx context.Context, items []types.Entity)
	EnqueueURIs(ctx context.Context, req PlaybackRequest)
	PlayURIs(ctx context.Context, req PlaybackRequest)
}

// FetchFunc asks a remote library source for an entity. It closes over its own
// request parameters and is expected to populate the index when it succeeds.
type FetchFunc func(ctx context.Context)

type Request struct {
	URI       string
	Container string
	Type      string

	Dependents     dependents.Set
	FullDependents dependents.Set

	Fetch FetchFunc

	ForceRefetch bool
	Full         bool
	Callback     CallbackAction
}

const (
	TraceAttributeURI       string = "library-uri"
	TraceAttributeContainer string = "library-container"
	TraceAttributeOutcome   string = "resolution-outcome"
)

var tracer = otel.Tracer("library-resolver/resolver")

type Resolver struct {
	state    StateReader
	cold     ColdStoreReader
	dispatch Dispatcher

	format    ContextFormatter
	observers []func(context.Context, Result)

	coldStoreReaders int
}

type Option func(*Resolver)

func WithContextFormatter(f ContextFormatter) Option {
	return func(r *Resolver) {
		r.format = f
	}
}

// WithObserver registers a function that is called with the result of every
// resolution once it completes
func WithObserver(observer func(context.Context, Result)) Option {
	return func(r *Resolver) {
		r.observers = append(r.observers, observer)
	}
}

// WithColdStoreReaders limits how many dependents are read from the cold
// store at the same time
func WithColdStoreReaders(limit int) Option {
	return func(r *Resolver) {
		if limit > 0 {
			r.coldStoreReaders = limit
		}
	}
}

const DefaultColdStoreReaders int = 8

func New(state StateReader, cold ColdStoreReader, dispatch Dispatcher, options ...Option) *Resolver {
	r := &Resolver{
		state:    state,
		cold:     cold,
		dispatch: dispatch,
		format:   DefaultContextFormatter,

		coldStoreReaders: DefaultColdStoreReaders,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// EnsureLoaded makes sure that the entity identified by req.URI, together with
// the attributes it depends on, ends up in the index. It returns as soon as the
// index has been inspected; cold store reads and fetches continue in the
// background and can be awaited through the returned Pending.
func (r *Resolver) EnsureLoaded(ctx context.Context, req Request) *Pending {
	ctx, span := tracer.Start(ctx, "ensure-loaded",
		trace.WithAttributes(
			attribute.String(TraceAttributeURI, req.URI),
			attribute.String(TraceAttributeContainer, req.Container),
		),
	)

	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "uri", req.URI)

	p := newPending()
	finish := func(ctx context.Context, result Result) {
		span.SetAttributes(attribute.String(TraceAttributeOutcome, result.Outcome.String()))
		tracing.RecordAnyErrorAndEndSpan(result.ColdStoreErr, span)

		for _, observer := range r.observers {
			observer(ctx, result)
		}

		p.complete(result)
	}

	if req.ForceRefetch {
		r.dispatch.SetLoading(ctx, req.URI, true)

		detached := context.WithoutCancel(ctx)
		go func() {
			r.fetch(detached, req)
			finish(detached, Result{Outcome: Refetched})
		}()

		return p
	}

	item, found := r.state.Item(req.Container, req.URI)
	if found && item != nil && len(dependents.Missing(item, req.Dependents, req.FullDependents, req.Full)) == 0 {
		r.dispatch.StopLoading(ctx, req.URI)

		uris := dependents.URIs(item, req.Dependents, req.FullDependents)
		if len(uris) > 0 {
			r.dispatch.LoadItems(ctx, req.Type, uris)
		}

		r.dispatchCallback(ctx, item, req.Callback)

		finish(ctx, Result{Outcome: ServedFromIndex, Entity: item})
		return p
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		finish(detached, r.hydrate(detached, req))
	}()

	return p
}

func (r *Resolver) hydrate(ctx context.Context, req Request) Result {
	log := logging.GetFromContext(ctx)

	item, err := r.cold.Get(ctx, req.URI)
	if err != nil {
		log.Warn("cold store read failed, falling back to fetch", "err", err.Error())
		item = nil
	}

	if item == nil || len(dependents.Missing(item, req.Dependents, req.FullDependents, req.Full)) > 0 {
		r.dispatch.SetLoading(ctx, req.URI, true)
		r.fetch(ctx, req)

		return Result{Outcome: Fetched, ColdStoreErr: err}
	}

	r.dispatch.RestoreItemsFromColdStore(ctx, []types.Entity{item})
	r.dispatchCallback(ctx, item, req.Callback)

	uris := dependents.URIs(item, req.Dependents, req.FullDependents)
	restored := r.restoreDependents(ctx, uris)

	return Result{Outcome: RestoredFromColdStore, Entity: item, Restored: restored}
}

// restoreDependents reads all uris from the cold store with a bounded number
// of concurrent readers and restores whatever was found with a single dispatch. Misses are dropped.
func (r *Resolver) restoreDependents(ctx context.Context, uris []string) int {
	if len(uris) == 0 {
		return 0
	}

	log := logging.GetFromContext(ctx)

	found := make([]types.Entity, len(uris))

	var eg errgroup.Group
	eg.SetLimit(r.coldStoreReaders)

	for idx, uri := range uris {
		eg.Go(func() error {
			e, err := r.cold.Get(ctx, uri)
			if err != nil {
				log.Debug("failed to read dependent from cold store", "dependent", uri, "err", err.Error())
				return nil
			}

			found[idx] = e
			return nil
		})
	}

	// a failed read is a miss, so there is never an error to collect
	_ = eg.Wait()

	found = slices.DeleteFunc(found, func(e types.Entity) bool { return e == nil })

	if len(found) > 0 {
		r.dispatch.RestoreItemsFromColdStore(ctx, found)
	}

	return len(found)
}

func (r *Resolver) fetch(ctx context.Context, req Request) {
	if req.Fetch == nil {
		logging.GetFromContext(ctx).Warn("resolution requires a fetch but no fetch function was supplied")
		return
	}

	req.Fetch(ctx)
}
