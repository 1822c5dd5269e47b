package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/MKhiriev/go-unit-dispatcher/internal/adapter"
	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/handler"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/server"
	"github.com/MKhiriev/go-unit-dispatcher/internal/service"
	"github.com/MKhiriev/go-unit-dispatcher/internal/store"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("unit-dispatcher", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name, cfg.App.LogLevel)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting unit dispatcher")
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	var awsOptions []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		awsOptions = append(awsOptions, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading AWS config")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, awsCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	processor, err := adapter.NewProcessorAdapter(cfg.Adapter, awsCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating processor adapter")
	}

	services := service.NewServices(storages, processor, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}
	srv.OnShutdown(func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	})

	srv.RunServer()
	srv.Shutdown()
}
