//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/selector/internal/config"
	"github.com/zeusync/selector/internal/core/selector"
)

func InitializeService(cfg config.Config) (*selector.Service, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
