package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-estimator-api/internal/api/handler"
	"github.com/vfg2006/earnings-estimator-api/internal/api/handler/router"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/scheduler"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/widget"
	"github.com/vfg2006/earnings-estimator-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	estimator estimating.Estimator,
	widgetService widget.WidgetService,
	widgetSweepService *scheduler.WidgetSweepService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address(),
			Handler:           NewHandler(cfg, estimator, widgetService, widgetSweepService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares globais
func NewHandler(
	cfg *config.Config,
	estimator estimating.Estimator,
	widgetService widget.WidgetService,
	widgetSweepService *scheduler.WidgetSweepService,
) http.Handler {
	defaults := domain.EarningsInput{
		Views:            cfg.Estimator.DefaultViews,
		MonetizedPercent: cfg.Estimator.DefaultMonetized,
		CPMLow:           cfg.Estimator.DefaultCPMLow,
		CPMHigh:          cfg.Estimator.DefaultCPMHigh,
	}

	cronServices := handler.CronJobServices{
		WidgetSweepService: widgetSweepService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Form(estimator, defaults)...),
		router.WithRoutes(handler.Estimates(estimator)...),
		router.WithRoutes(handler.Widgets(widgetService)...),
		router.WithRoutes(handler.CronJobs(cronServices, cfg.Auth.Secret)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
