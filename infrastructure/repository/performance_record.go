package repository

//go:generate mockgen -source=performance_record.go -destination=mocks/performance_record.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const (
	performanceRecordsTable = "performance_records pr"
	dateLayout              = "2006-01-02"
)

type PerformanceRecordRepository interface {
	GetByDateRange(startDate, endDate time.Time, campaignIDs []domain.CampaignID) ([]domain.PerformanceRecord, error)
	SaveOrUpdate(records []domain.PerformanceRecord) error
	DeleteOlderThan(days int) (int64, error)
}

type performanceRecordRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRecordRepository(conn *postgres.Connection) PerformanceRecordRepository {
	return &performanceRecordRepository{
		conn: conn,
	}
}

// GetByDateRange busca os registros diários do período; sem campanhas informadas retorna todas
func (r *performanceRecordRepository) GetByDateRange(startDate, endDate time.Time, campaignIDs []domain.CampaignID) ([]domain.PerformanceRecord, error) {
	queryBuilder := squirrel.
		Select("pr.campaign_id, pr.date, pr.clicks, pr.impressions, pr.conversions, pr.revenue, pr.ctr, pr.roi").
		From(performanceRecordsTable).
		Where(squirrel.GtOrEq{"pr.date": startDate.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"pr.date": endDate.Format(dateLayout)}).
		OrderBy("pr.date ASC", "pr.campaign_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(campaignIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Expr("pr.campaign_id = ANY(?)", pq.Array(campaignIDStrings(campaignIDs))))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PerformanceRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de performance: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SaveOrUpdate grava o lote em uma única transação; (campaign_id, date) repetido sobrescreve o anterior
func (r *performanceRecordRepository) SaveOrUpdate(records []domain.PerformanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(q postgres.Queryer) error {
		for _, record := range records {
			if err := r.upsert(q, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *performanceRecordRepository) upsert(q postgres.Queryer, record domain.PerformanceRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("performance_records").
		Columns("campaign_id", "date", "clicks", "impressions", "conversions", "revenue", "ctr", "roi").
		Values(
			string(record.CampaignID),
			record.Date.Format(dateLayout),
			record.Clicks,
			record.Impressions,
			record.Conversions,
			record.Revenue,
			nullFloat(record.CTR),
			nullFloat(record.ROI),
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				clicks = EXCLUDED.clicks,
				impressions = EXCLUDED.impressions,
				conversions = EXCLUDED.conversions,
				revenue = EXCLUDED.revenue,
				ctr = EXCLUDED.ctr,
				roi = EXCLUDED.roi,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = q.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *performanceRecordRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(dateLayout)

	query, args, err := squirrel.
		Delete("performance_records").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *performanceRecordRepository) scanRecord(rows *sql.Rows) (domain.PerformanceRecord, error) {
	var (
		record     domain.PerformanceRecord
		campaignID string
		ctr, roi   sql.NullFloat64
	)

	err := rows.Scan(
		&campaignID,
		&record.Date,
		&record.Clicks,
		&record.Impressions,
		&record.Conversions,
		&record.Revenue,
		&ctr,
		&roi,
	)
	if err != nil {
		return record, err
	}

	record.CampaignID = domain.CampaignID(campaignID)
	if ctr.Valid {
		record.CTR = &ctr.Float64
	}
	if roi.Valid {
		record.ROI = &roi.Float64
	}

	return record, nil
}

func nullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func campaignIDStrings(ids []domain.CampaignID) []string {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = string(id)
	}
	return values
}
