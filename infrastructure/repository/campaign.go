package repository

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	ListCampaigns() ([]domain.Campaign, error)
	GetByIDs(ids []domain.CampaignID) ([]domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (c *campaignRepository) ListCampaigns() ([]domain.Campaign, error) {
	return c.list(nil)
}

// GetByIDs retorna apenas as campanhas encontradas; ids desconhecidos são ignorados
func (c *campaignRepository) GetByIDs(ids []domain.CampaignID) ([]domain.Campaign, error) {
	if len(ids) == 0 {
		return []domain.Campaign{}, nil
	}
	return c.list(squirrel.Expr("c.id = ANY(?)", pq.Array(campaignIDStrings(ids))))
}

func (c *campaignRepository) list(where squirrel.Sqlizer) ([]domain.Campaign, error) {
	queryBuilder := squirrel.
		Select("c.id, c.name").
		From(campaignsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := c.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.Campaign{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var (
			campaign domain.Campaign
			id       string
		)
		if err := rows.Scan(&id, &campaign.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaign.ID = domain.CampaignID(id)
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
