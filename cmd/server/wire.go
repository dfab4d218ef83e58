//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"clickrec/internal/app"
	"clickrec/internal/config"
	"clickrec/internal/http"
	"clickrec/internal/http/controller"
	"clickrec/internal/logging"
	"clickrec/internal/queue/rabbitmq"
	"clickrec/internal/service/clicks"
	"clickrec/internal/sse"
	"clickrec/internal/store"
)

func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		logging.New,
		store.NewLedger,
		store.NewCategoryStore,
		sse.NewHub,
		clicks.NewService,
		controller.NewHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
	)
	return &app.App{}, nil
}
