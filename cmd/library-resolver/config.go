package main

import (
	"context"
	"flag"
	"io"

	"github.com/diwise/library-resolver/internal/pkg/infrastructure/coldstore"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort
	controlPort

	configPath
	opaPath

	logFormat
)

type AppConfig struct {
	libraryConfig io.ReadCloser
	opaConfig     io.ReadCloser
	coldStore     coldstore.Store

	publicPort  string
	controlPort string
}

func defaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "", // listen on all ipv4 and ipv6 interfaces
		servicePort:   "8080",
		controlPort:   "", // control port disabled by default

		configPath: "/opt/diwise/config/library.yaml",
		opaPath:    "/opt/diwise/config/authz.rego",

		logFormat: "json",
	}
}

func parseExternalConfig(ctx context.Context, flags FlagMap) FlagMap {
	// environment variables override the defaults, flags override both
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[controlPort] = envOrDef(ctx, "CONTROL_PORT", flags[controlPort])
	flags[configPath] = envOrDef(ctx, "LIBRARY_CONFIG_PATH", flags[configPath])
	flags[opaPath] = envOrDef(ctx, "POLICY_PATH", flags[opaPath])
	flags[logFormat] = envOrDef(ctx, "LOG_FORMAT", flags[logFormat])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	flag.Func("config", "a library configuration file", apply(configPath))
	flag.Func("policies", "an authorization policy file", apply(opaPath))
	flag.Func("listen", "the address to listen on", apply(listenAddress))
	flag.Func("port", "the port to listen on", apply(servicePort))
	flag.Func("control", "the port to serve metrics and health checks on (disabled if empty)", apply(controlPort))
	flag.Func("logformat", "the log format to use (json or text)", apply(logFormat))
	flag.Parse()

	return flags
}
