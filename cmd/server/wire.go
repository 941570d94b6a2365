//go:build wireinject

package main

import (
	"model-gateway/services/gemini-adapter/internal/domain"
	"model-gateway/services/gemini-adapter/internal/infrastructure"
	"model-gateway/services/gemini-adapter/internal/interfaces"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
