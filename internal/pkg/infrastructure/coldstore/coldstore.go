package coldstore

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/library-resolver/pkg/library/entities"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Store persists whole entities keyed by uri. Get reports a miss as a nil
// entity and a nil error.
type Store interface {
	Get(ctx context.Context, uri string) (types.Entity, error)
	Put(ctx context.Context, items ...types.Entity) error
	Close() error
}

const DefaultSQLitePath string = "/opt/diwise/coldstore.db"

// Open picks a cold store implementation from the environment. A configured
// POSTGRES_HOST selects Postgres, otherwise a SQLite database is opened at
// COLDSTORE_PATH.
func Open(ctx context.Context) (Store, error) {
	log := logging.GetFromContext(ctx)

	if env.GetVariableOrDefault(ctx, "POSTGRES_HOST", "") != "" {
		log.Info("using postgres cold store")

		store, err := NewPostgres(ctx, LoadConfiguration(ctx))
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	path := env.GetVariableOrDefault(ctx, "COLDSTORE_PATH", DefaultSQLitePath)
	log.Info("using sqlite cold store", "path", path)

	return NewSQLite(ctx, path)
}

type document struct {
	uri      string
	body     []byte
	modified time.Time
}

func encode(e types.Entity) (document, error) {
	body, err := e.MarshalJSON()
	if err != nil {
		return document{}, fmt.Errorf("failed to marshal entity %s: %w", e.URI(), err)
	}

	return document{uri: e.URI(), body: body, modified: time.Now().UTC()}, nil
}

func decode(body []byte) (types.Entity, error) {
	e, err := entities.NewFromJSON(body)
	if err != nil {
		return nil, fmt.Errorf("corrupt cold store document: %w", err)
	}
	return e, nil
}
