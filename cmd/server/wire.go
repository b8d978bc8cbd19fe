//go:build wireinject

package main

import (
	"quill-server/internal/domain"
	"quill-server/internal/infrastructure"
	"quill-server/internal/interfaces"
	"quill-server/internal/interfaces/httpserver/routes"

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
