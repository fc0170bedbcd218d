package coldstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, cfg Config) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS library_entities (
			uri      TEXT PRIMARY KEY,
			body     JSONB NOT NULL,
			modified TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS library_entities_modified_idx ON library_entities (modified);`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create cold store table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Get(ctx context.Context, uri string) (types.Entity, error) {
	var body []byte

	err := p.pool.QueryRow(ctx, `SELECT body FROM library_entities WHERE uri=$1`, uri).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from cold store: %w", uri, err)
	}

	return decode(body)
}

func (p *PostgresStore) Put(ctx context.Context, items ...types.Entity) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}

	for _, e := range items {
		doc, err := encode(e)
		if err != nil {
			tx.Rollback(ctx)
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO library_entities (uri, body, modified) VALUES ($1, $2, $3)
			ON CONFLICT (uri) DO UPDATE SET body = EXCLUDED.body, modified = EXCLUDED.modified;`,
			doc.uri, string(doc.body), doc.modified)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to write %s to cold store: %w", doc.uri, err)
		}
	}

	return tx.Commit(ctx)
}

// Prune deletes every document that has not been written since before the
// given age and returns the number of removed rows
func (p *PostgresStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	tag, err := p.pool.Exec(ctx, `DELETE FROM library_entities WHERE modified < $1;`, cutoff)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (p *PostgresStore) Vacuum(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, "VACUUM ANALYZE library_entities;")
	return err
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
