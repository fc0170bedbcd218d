package library

import (
	"context"
	"fmt"
	"regexp"

	"github.com/diwise/library-resolver/internal/pkg/application/index"
	"github.com/diwise/library-resolver/internal/pkg/application/playqueue"
	"github.com/diwise/library-resolver/internal/pkg/application/resolver"
	"github.com/diwise/library-resolver/internal/pkg/infrastructure/coldstore"
	"github.com/diwise/library-resolver/pkg/library/client"
	"github.com/diwise/library-resolver/pkg/library/dependents"
	"github.com/diwise/library-resolver/pkg/library/entities"
	"github.com/diwise/library-resolver/pkg/library/errors"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type ResolveRequest struct {
	URI          string
	Type         string
	ForceRefetch bool
	Full         bool
	Callback     resolver.CallbackAction
}

type typeInfo struct {
	itemType       string
	container      string
	dependentType  string
	dependents     dependents.Set
	fullDependents dependents.Set
}

type source struct {
	pattern *regexp.Regexp
	client  client.SourceClient
}

type App struct {
	types   map[string]typeInfo
	sources []source

	index    *index.Index
	cold     coldstore.Store
	queue    *playqueue.Queue
	resolver *resolver.Resolver

	resolverOptions []resolver.Option
	onFetchFailure  func(itemType string)
}

type Option func(*App)

func WithResolverOptions(options ...resolver.Option) Option {
	return func(a *App) {
		a.resolverOptions = append(a.resolverOptions, options...)
	}
}

// OnFetchFailure registers a function that is called with the item type
// whenever a fetch from a library source fails
func OnFetchFailure(f func(itemType string)) Option {
	return func(a *App) {
		a.onFetchFailure = f
	}
}

func New(ctx context.Context, cfg *Config, idx *index.Index, cold coldstore.Store, queue *playqueue.Queue, options ...Option) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	app := &App{
		types:          map[string]typeInfo{},
		index:          idx,
		cold:           cold,
		queue:          queue,
		onFetchFailure: func(string) {},
	}

	for _, tc := range cfg.Types {
		deps, full := tc.DependentSets()
		app.types[tc.Type] = typeInfo{
			itemType:       tc.Type,
			container:      tc.ContainerName(),
			dependentType:  tc.DependentItemType(),
			dependents:     deps,
			fullDependents: full,
		}
	}

	for _, src := range cfg.Sources {
		app.sources = append(app.sources, source{
			pattern: regexp.MustCompile(src.URIPattern),
			client:  newSourceClient(src),
		})
	}

	for _, option := range options {
		option(app)
	}

	app.resolver = resolver.New(idx, cold, app, app.resolverOptions...)

	logging.GetFromContext(ctx).Info("library application configured", "types", len(app.types), "sources", len(app.sources))

	return app, nil
}

func newSourceClient(src SourceConfig) client.SourceClient {
	options := []client.Option{client.Debug(fmt.Sprintf("%t", src.Debug))}
	for key, value := range src.Headers {
		options = append(options, client.Header(key, value))
	}

	return client.NewSourceClient(src.Endpoint, options...)
}

// Resolve makes sure that the requested item and its dependents are loaded
// into the index, using the schema configured for the item type
func (a *App) Resolve(ctx context.Context, req ResolveRequest) (*resolver.Pending, error) {
	if req.URI == "" {
		return nil, errors.NewBadRequestError("a uri is required")
	}

	info, ok := a.types[req.Type]
	if !ok {
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown item type %s", req.Type))
	}

	return a.resolve(ctx, info, req), nil
}

func (a *App) resolve(ctx context.Context, info typeInfo, req ResolveRequest) *resolver.Pending {
	return a.resolver.EnsureLoaded(ctx, resolver.Request{
		URI:            req.URI,
		Container:      info.container,
		Type:           info.dependentType,
		Dependents:     info.dependents,
		FullDependents: info.fullDependents,
		Fetch:          a.fetchItem(info, req.URI),
		ForceRefetch:   req.ForceRefetch,
		Full:           req.Full,
		Callback:       req.Callback,
	})
}

// fetchItem returns a fetch function that retrieves uri from the first source
// whose pattern matches it, and writes the result to the index and cold store
func (a *App) fetchItem(info typeInfo, uri string) resolver.FetchFunc {
	return func(ctx context.Context) {
		log := logging.GetFromContext(ctx)
		defer a.StopLoading(ctx, uri)

		src, ok := a.sourceFor(uri)
		if !ok {
			log.Warn("no library source is configured for uri")
			a.onFetchFailure(info.itemType)
			return
		}

		fetched, err := src.client.RetrieveItem(ctx, uri)
		if err != nil {
			log.Error("failed to fetch item from library source", "err", err.Error())
			a.onFetchFailure(info.itemType)
			return
		}

		// the requested uri and the configured type win over whatever the source reports
		typed, _ := entities.New(uri, info.itemType)
		item := entities.Merge(fetched, typed)

		a.index.Put(ctx, item)

		if err := a.cold.Put(ctx, item); err != nil {
			log.Warn("failed to write item to cold store", "err", err.Error())
		}
	}
}

func (a *App) sourceFor(uri string) (source, bool) {
	for _, src := range a.sources {
		if src.pattern.MatchString(uri) {
			return src, true
		}
	}
	return source{}, false
}

func (a *App) SetLoading(ctx context.Context, uri string, loading bool) {
	a.index.SetLoading(uri, loading)
}

func (a *App) StopLoading(ctx context.Context, uri string) {
	a.index.SetLoading(uri, false)
}

// LoadItems resolves every uri that is neither indexed nor already loading as
// an item of the given type
func (a *App) LoadItems(ctx context.Context, itemType string, uris []string) {
	log := logging.GetFromContext(ctx)

	info, ok := a.types[itemType]
	if !ok {
		log.Warn("unable to load items of unknown type", "type", itemType, "count", len(uris))
		return
	}

	for _, uri := range uris {
		if _, found := a.index.Item(info.container, uri); found || a.index.Loading(uri) {
			continue
		}

		a.resolve(ctx, info, ResolveRequest{URI: uri, Type: itemType})
	}
}

func (a *App) RestoreItemsFromColdStore(ctx context.Context, items []types.Entity) {
	a.index.Restore(ctx, items...)
}

func (a *App) EnqueueURIs(ctx context.Context, req resolver.PlaybackRequest) {
	a.queue.Enqueue(ctx, req)
}

func (a *App) PlayURIs(ctx context.Context, req resolver.PlaybackRequest) {
	a.queue.Play(ctx, req)
}

func (a *App) Item(container, uri string) (types.Entity, bool) {
	return a.index.Item(container, uri)
}

func (a *App) Items(container string) []types.Entity {
	return a.index.Items(container)
}

func (a *App) Loading(uri string) bool {
	return a.index.Loading(uri)
}

func (a *App) Queue() []playqueue.Entry {
	return a.queue.Entries()
}
