package main

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

const seedDays = 30

var schema = []string{
	`CREATE TABLE IF NOT EXISTS campaigns (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS performance_records (
		id          BIGSERIAL PRIMARY KEY,
		campaign_id TEXT NOT NULL REFERENCES campaigns (id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		clicks      BIGINT NOT NULL DEFAULT 0 CHECK (clicks >= 0),
		impressions BIGINT NOT NULL DEFAULT 0 CHECK (impressions >= 0),
		conversions BIGINT NOT NULL DEFAULT 0 CHECK (conversions >= 0),
		revenue     DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (revenue >= 0),
		ctr         DOUBLE PRECISION,
		roi         DOUBLE PRECISION,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT performance_records_campaign_date_key UNIQUE (campaign_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS performance_records_date_idx ON performance_records (date)`,
}

var demoCampaigns = []string{
	"Black Friday",
	"Dia das Mães",
	"Volta às Aulas",
	"Natal",
}

func migrate(db *sql.DB) {
	logrus.Infof("Aplicando %d instruções de schema...", len(schema))
	startTime := time.Now()

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			logrus.Fatalf("ERRO ao aplicar instrução [%d/%d]: %v", i+1, len(schema), err)
		}
	}

	logrus.Infof("Schema aplicado em %v", time.Since(startTime))
}

// seedCampaigns insere as campanhas de demonstração que ainda não existem
func seedCampaigns(db *sql.DB) []domain.CampaignID {
	logrus.Infof("Iniciando inserção de %d campanhas...", len(demoCampaigns))

	ids := make([]domain.CampaignID, 0, len(demoCampaigns))
	for i, name := range demoCampaigns {
		var id string
		err := db.QueryRow(`SELECT id FROM campaigns WHERE name = $1`, name).Scan(&id)
		if err == nil {
			ids = append(ids, domain.CampaignID(id))
			continue
		}
		if err != sql.ErrNoRows {
			logrus.Fatalf("ERRO ao buscar campanha %s: %v", name, err)
		}

		id, err = utils.GenerateID(utils.CampaignIDLength)
		if err != nil {
			logrus.Fatalf("ERRO ao gerar id de campanha: %v", err)
		}

		if _, err := db.Exec(`INSERT INTO campaigns (id, name) VALUES ($1, $2)`, id, name); err != nil {
			logrus.Errorf("ERRO ao inserir campanha [%d/%d] %s: %v", i+1, len(demoCampaigns), name, err)
			continue
		}
		ids = append(ids, domain.CampaignID(id))
	}

	logrus.Infof("Campanhas disponíveis: %d", len(ids))
	return ids
}

func demoRecords(ids []domain.CampaignID, days int) []domain.PerformanceRecord {
	rng := rand.New(rand.NewPCG(42, 7))
	today := domain.DayOf(time.Now()).Time(time.UTC)

	records := make([]domain.PerformanceRecord, 0, len(ids)*days)
	for _, id := range ids {
		for d := 1; d <= days; d++ {
			impressions := int64(1000 + rng.IntN(9000))
			clicks := impressions * int64(1+rng.IntN(5)) / 100
			conversions := clicks * int64(rng.IntN(10)) / 100
			revenue := utils.RoundWithTwoDecimalPlace(float64(conversions) * (50 + rng.Float64()*150))
			ctr := float64(clicks) / float64(impressions)

			records = append(records, domain.PerformanceRecord{
				CampaignID:  id,
				Date:        today.AddDate(0, 0, -d),
				Clicks:      clicks,
				Impressions: impressions,
				Conversions: conversions,
				Revenue:     revenue,
				CTR:         &ctr,
			})
		}
	}
	return records
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	conn, err := postgres.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	migrate(conn.DB)

	ids := seedCampaigns(conn.DB)
	if len(ids) == 0 {
		logrus.Warn("Nenhuma campanha disponível, registros de demonstração não serão gerados")
		return
	}

	records := demoRecords(ids, seedDays)
	if err := repository.NewPerformanceRecordRepository(conn).SaveOrUpdate(records); err != nil {
		logrus.Fatalf("ERRO ao inserir registros de demonstração: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": len(ids),
		"records":   len(records),
		"days":      seedDays,
	}).Info("Migração concluída")
}
