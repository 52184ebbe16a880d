package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/internal/api/handler"
	"github.com/vfg2006/campaign-insights-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/metrics"
	"github.com/vfg2006/campaign-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Insighter     insighting.Insighter
	Ingester      ingesting.Ingester
	Authenticator authenticating.Authenticator
	Metrics       *metrics.Metrics
	Pinger        handler.Pinger
	CronServices  handler.CronJobServices
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	configs := make([]router.ConfigRouter, 0)
	if deps.Metrics != nil {
		configs = append(configs,
			router.WithRequestRecorder(deps.Metrics),
			router.WithRoutes(handler.Metrics(deps.Metrics.Handler())...),
		)
	}

	configs = append(configs,
		router.WithRoutes(handler.Healthcheck(deps.Pinger)...),
		router.WithRoutes(handler.Campaigns(deps.Insighter)...),
		router.WithRoutes(handler.Insights(deps.Insighter)...),
		router.WithRoutes(handler.PerformanceRecords(deps.Ingester)...),
		router.WithRoutes(handler.CronJobs(deps.CronServices)...),
	)

	rt := router.New(configs...)

	var authMiddleware alice.Constructor
	if config.Auth.Enabled {
		authMiddleware = middleware.AuthMiddleware(deps.Authenticator)
	} else {
		authMiddleware = middleware.NoAuthMiddleware()
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		authMiddleware,
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

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

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
