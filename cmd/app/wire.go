//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/bootstrap"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/domain/aqi"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/domain/chat"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/airquality/openmeteo"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/config"
	httpiface "github.com/Sujal12345-pheoniix/AirGaurd/internal/interface/http"
	"github.com/Sujal12345-pheoniix/AirGaurd/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatConfig,
		provideChatClient,
		provideAirQualityClient,
		aqi.NewService,
		chat.NewService,
		wire.Bind(new(aqi.ProviderClient), new(*openmeteo.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
