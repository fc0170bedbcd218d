package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/diwise/library-resolver/internal/pkg/application/index"
	"github.com/diwise/library-resolver/internal/pkg/application/library"
	"github.com/diwise/library-resolver/internal/pkg/application/playqueue"
	"github.com/diwise/library-resolver/internal/pkg/application/resolver"
	"github.com/diwise/library-resolver/internal/pkg/infrastructure/coldstore"
	"github.com/diwise/library-resolver/internal/pkg/infrastructure/metrics"
	"github.com/diwise/library-resolver/internal/pkg/infrastructure/router"
	"github.com/diwise/library-resolver/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
)

const serviceName string = "library-resolver"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	flags := parseExternalConfig(context.Background(), defaultFlags())

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	libraryConfig, err := os.Open(flags[configPath])
	exitIf(err, log.Error, "failed to open library configuration", "path", flags[configPath])

	policies, err := os.Open(flags[opaPath])
	exitIf(err, log.Error, "failed to open authorization policies", "path", flags[opaPath])

	store, err := coldstore.Open(ctx)
	exitIf(err, log.Error, "failed to open cold store")

	runner, err := initialize(ctx, flags, &AppConfig{
		libraryConfig: libraryConfig,
		opaConfig:     policies,
		coldStore:     store,
	})
	exitIf(err, log.Error, "failed to initialize service runner")

	err = runner.Run(ctx)
	exitIf(err, log.Error, "service runner failed")
}

func initialize(ctx context.Context, flags FlagMap, cfg *AppConfig) (servicerunner.Runner[AppConfig], error) {
	defer cfg.libraryConfig.Close()
	defer cfg.opaConfig.Close()

	libraryConfig, err := library.LoadConfiguration(cfg.libraryConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load library configuration: %w", err)
	}

	m := metrics.New()

	app, err := library.New(ctx, libraryConfig,
		index.New(libraryConfig.ContainerFor),
		cfg.coldStore,
		playqueue.New(),
		library.WithResolverOptions(resolver.WithObserver(m.ObserveResolution)),
		library.OnFetchFailure(m.FetchFailed),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create library application: %w", err)
	}

	log := logging.GetFromContext(ctx)

	_, runner := servicerunner.New(ctx, *cfg,
		webserver("public", listen(flags[listenAddress]), port(flags[servicePort]),
			muxinit(func(ctx context.Context, identifier, port string, svcCfg *AppConfig, handler *http.ServeMux) error {
				svcCfg.publicPort = port
				return api.RegisterHandlers(ctx, handler, router.Middleware(serviceName), svcCfg.opaConfig, app)
			}),
		),
		ifnot(flags[controlPort] == "",
			webserver("control", listen(flags[listenAddress]), port(flags[controlPort]),
				liveness(func() error { return nil }),
				muxinit(func(ctx context.Context, identifier, port string, svcCfg *AppConfig, handler *http.ServeMux) error {
					svcCfg.controlPort = port
					handler.Handle("GET /metrics", m.Handler())
					return nil
				}),
			),
		),
		onrunning(func(ctx context.Context, svcCfg *AppConfig) error {
			log.Info("service is running and waiting for connections", "port", svcCfg.publicPort)
			return nil
		}),
		onshutdown(func(ctx context.Context, svcCfg *AppConfig) error {
			log.Info("shutting down", "port", svcCfg.publicPort)
			return svcCfg.coldStore.Close()
		}),
	)

	return runner, nil
}

var ifnot = servicerunner.IfNot[AppConfig]
var onrunning = servicerunner.OnRunning[AppConfig]
var onshutdown = servicerunner.OnShutdown[AppConfig]
var webserver = servicerunner.WithHTTPServeMux[AppConfig]
var muxinit = servicerunner.OnMuxInit[AppConfig]
var listen = servicerunner.WithListenAddr[AppConfig]
var port = servicerunner.WithPort[AppConfig]
var liveness = servicerunner.WithK8SLivenessProbe[AppConfig]

func exitIf(err error, logger func(string, ...any), msg string, args ...any) {
	if err != nil {
		logger(msg, append(args, "err", err.Error())...)
		os.Exit(1)
	}
}
