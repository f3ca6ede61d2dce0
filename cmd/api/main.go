package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-estimator-api/infrastructure/repository"
	"github.com/vfg2006/earnings-estimator-api/internal/api"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/internal/scheduler"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/widget"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if cfg.App.Env != "" && cfg.App.Env != "development" && cfg.App.Env != "dev" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	estimator, err := estimating.NewServiceFromConfig(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	widgetRepo := repository.NewWidgetRepository()
	widgetService := widget.NewService(widgetRepo, estimator, cfg)

	widgetSweepService := scheduler.NewWidgetSweepService(widgetRepo, cfg)
	if err := widgetSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza de sessões do widget")
	}

	server, err := api.New(cfg, estimator, widgetService, widgetSweepService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
