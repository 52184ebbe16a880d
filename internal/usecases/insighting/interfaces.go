package insighting

import (
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// Insighter monta as visões de comparação de campanhas a partir dos registros persistidos
type Insighter interface {
	// CompareTotals retorna o total da métrica por campanha selecionada
	CompareTotals(metric domain.MetricKey, campaignIDs []domain.CampaignID, filters *domain.InsightFilters) (*domain.ComparisonResponse, error)

	// CompareProfile retorna o perfil normalizado (0-100) das campanhas para cada métrica
	CompareProfile(metrics []domain.MetricKey, campaignIDs []domain.CampaignID, filters *domain.InsightFilters) (*domain.ProfileResponse, error)

	// TimeSeries retorna a métrica dia a dia para as campanhas selecionadas
	TimeSeries(metric domain.MetricKey, campaignIDs []domain.CampaignID, filters *domain.InsightFilters) (*domain.TimeSeriesResponse, error)

	// ListCampaigns lista as campanhas disponíveis para seleção
	ListCampaigns() ([]domain.Campaign, error)
}
