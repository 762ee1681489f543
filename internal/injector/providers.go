package injector

import (
	"fmt"
	"slices"

	"github.com/google/wire"

	"github.com/zeusync/selector/internal/config"
	"github.com/zeusync/selector/internal/core/observability/log"
	"github.com/zeusync/selector/internal/core/selector"
	"github.com/zeusync/selector/internal/core/selector/filter"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideOptions,
	filter.NewRegistry,
	ProvideService,
)

func ProvideLogger(cfg config.Config) log.Log {
	return log.New(log.ParseLevel(cfg.LogLevel))
}

func ProvideOptions(cfg config.Config) selector.Options {
	return selector.Options{
		KeepEmptyTokens: cfg.KeepEmptyTokens,
		StackShards:     cfg.StackShards,
	}
}

// ProvideService builds the service and registers the configured presets
// in alias order.
func ProvideService(cfg config.Config, opts selector.Options, registry *filter.Registry, logger log.Log) (*selector.Service, error) {
	svc := selector.NewService(opts, registry, nil, logger)

	aliases := make([]string, 0, len(cfg.Presets))
	for alias := range cfg.Presets {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)

	for _, alias := range aliases {
		if err := svc.RegisterPreset(alias, cfg.Presets[alias]); err != nil {
			return nil, fmt.Errorf("register presets: %w", err)
		}
	}
	return svc, nil
}
