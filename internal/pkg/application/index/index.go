package index

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/diwise/library-resolver/pkg/library/entities"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const DefaultContainer string = "items"

// ContainerFunc decides which container an entity of a given type belongs in
type ContainerFunc func(entityType string) string

// Index is the in-memory entity store. All mutations are serialized.
type Index struct {
	mu sync.RWMutex

	containerFor ContainerFunc
	containers   map[string]map[string]types.Entity
	loading      map[string]bool
}

func New(containerFor ContainerFunc) *Index {
	if containerFor == nil {
		containerFor = func(string) string { return DefaultContainer }
	}

	return &Index{
		containerFor: containerFor,
		containers:   map[string]map[string]types.Entity{},
		loading:      map[string]bool{},
	}
}

func (idx *Index) Item(container, uri string) (types.Entity, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	items, ok := idx.containers[container]
	if !ok {
		return nil, false
	}

	e, ok := items[uri]
	return e, ok
}

// Items returns the entities of a container ordered by uri
func (idx *Index) Items(container string) []types.Entity {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	items := idx.containers[container]
	result := make([]types.Entity, 0, len(items))

	for _, uri := range slices.Sorted(maps.Keys(items)) {
		result = append(result, items[uri])
	}

	return result
}

func (idx *Index) Containers() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return slices.Sorted(maps.Keys(idx.containers))
}

// Put merges freshly loaded entities into the index and clears their loading flags
func (idx *Index) Put(ctx context.Context, items ...types.Entity) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, e := range items {
		if e == nil {
			continue
		}
		idx.merge(e)
		delete(idx.loading, e.URI())
	}
}

// Restore merges entities read from the cold store into the index
func (idx *Index) Restore(ctx context.Context, items ...types.Entity) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, e := range items {
		idx.merge(e)
	}

	logging.GetFromContext(ctx).Debug("restored items from cold store", "count", len(items))
}

func (idx *Index) merge(e types.Entity) {
	if e == nil {
		return
	}

	container := idx.containerFor(e.Type())

	items, ok := idx.containers[container]
	if !ok {
		items = map[string]types.Entity{}
		idx.containers[container] = items
	}

	items[e.URI()] = entities.Merge(items[e.URI()], e)
}

func (idx *Index) SetLoading(uri string, loading bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if loading {
		idx.loading[uri] = true
	} else {
		delete(idx.loading, uri)
	}
}

func (idx *Index) Loading(uri string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.loading[uri]
}
