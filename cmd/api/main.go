package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/api"
	"github.com/vfg2006/campaign-insights-api/internal/api/handler"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/scheduler"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/metrics"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	appMetrics := metrics.New()

	recordRepo := repository.NewPerformanceRecordRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)

	insightService := insighting.NewService(
		cfg,
		recordRepo,
		campaignRepo,
		aggregating.WithSkipObserver(appMetrics.ObserveSkipped),
	)
	ingestService := ingesting.NewService(recordRepo)
	authenticator := authenticating.NewService(cfg.Auth.Secret)

	recordRetentionService := scheduler.NewRecordRetentionService(recordRepo, appMetrics, cfg)
	if err := recordRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de registros")
	} else {
		logrus.Info("Agendador de retenção de registros iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Insighter:     insightService,
		Ingester:      ingestService,
		Authenticator: authenticator,
		Metrics:       appMetrics,
		Pinger:        pgConn,
		CronServices: handler.CronJobServices{
			RecordRetentionService: recordRetentionService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
