package coldstore

import (
	"context"
	"sync"

	"github.com/diwise/library-resolver/pkg/library/types"
)

type inMemory struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewInMemory returns a Store that keeps its documents in memory
func NewInMemory() Store {
	return &inMemory{documents: map[string][]byte{}}
}

func (m *inMemory) Get(ctx context.Context, uri string) (types.Entity, error) {
	m.mu.RLock()
	body, ok := m.documents[uri]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	return decode(body)
}

func (m *inMemory) Put(ctx context.Context, items ...types.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range items {
		doc, err := encode(e)
		if err != nil {
			return err
		}
		m.documents[doc.uri] = doc.body
	}

	return nil
}

func (m *inMemory) Close() error {
	return nil
}
