package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/diwise/library-resolver/internal/pkg/infrastructure/coldstore"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	appName string = "coldstore-cleaner"

	defaultMaxAge string = "720h"
)

//go:generate moq -rm -out pruner_mock_test.go . pruner

type pruner interface {
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Vacuum(ctx context.Context) error
}

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	maxAge, err := maxAgeFromEnvironment(ctx)
	if err != nil {
		log.Error("failed to parse max age", "err", err.Error())
		os.Exit(1)
	}

	store, err := coldstore.NewPostgres(ctx, coldstore.LoadConfiguration(ctx))
	if err != nil {
		log.Error("failed to connect to database", "err", err.Error())
		os.Exit(1)
	}
	defer store.Close()

	count, err := run(ctx, store, maxAge)
	if err != nil {
		log.Error("failed to clean cold store", "err", err.Error())
		os.Exit(1)
	}

	log.Info("done cleaning", slog.Int64("total", count))
}

func maxAgeFromEnvironment(ctx context.Context) (time.Duration, error) {
	maxAge, err := time.ParseDuration(env.GetVariableOrDefault(ctx, "COLDSTORE_MAX_AGE", defaultMaxAge))
	if err != nil {
		return 0, err
	}

	if maxAge <= 0 {
		return 0, fmt.Errorf("max age must be positive, got %s", maxAge)
	}

	return maxAge, nil
}

// run prunes documents older than maxAge and reclaims the space they used
func run(ctx context.Context, store pruner, maxAge time.Duration) (int64, error) {
	log := logging.GetFromContext(ctx)
	log.Debug("begin clean cold store", slog.Duration("max_age", maxAge))

	count, err := store.Prune(ctx, maxAge)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cold store: %w", err)
	}

	log.Debug("vacuum")

	err = store.Vacuum(ctx)
	if err != nil {
		return count, fmt.Errorf("failed to vacuum table: %w", err)
	}

	return count, nil
}
