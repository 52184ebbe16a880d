package insighting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/aggregating"
)

// Service implementa Insighter sobre os repositórios de campanhas e de registros
type Service struct {
	cfg                config.Insights
	recordRepository   repository.PerformanceRecordRepository
	campaignRepository repository.CampaignRepository
	aggregator         *aggregating.Aggregator
	now                func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	recordRepo repository.PerformanceRecordRepository,
	campaignRepo repository.CampaignRepository,
	opts ...aggregating.Option,
) *Service {
	return &Service{
		cfg:                cfg.Insights,
		recordRepository:   recordRepo,
		campaignRepository: campaignRepo,
		aggregator:         aggregating.New(opts...),
		now:                time.Now,
	}
}

var _ Insighter = (*Service)(nil)

func (s *Service) CompareTotals(metric domain.MetricKey, campaignIDs []domain.CampaignID, filters *domain.InsightFilters) (*domain.ComparisonResponse, error) {
	if err := metric.Validate(); err != nil {
		return nil, err
	}
	if err := aggregating.ValidateSelection(campaignIDs); err != nil {
		return nil, err
	}

	filters, err := s.resolveFilters(filters)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchRecords(filters, campaignIDs)
	if err != nil {
		return nil, err
	}

	names, err := s.campaignNames(campaignIDs)
	if err != nil {
		return nil, err
	}

	points, err := s.aggregator.AggregateTotals(records, names, campaignIDs, metric)
	if err != nil {
		return nil, err
	}

	return &domain.ComparisonResponse{
		Metric:      metric,
		MetricLabel: metric.Label(),
		Points:      points,
		Filters:     filters,
	}, nil
}

func (s *Service) CompareProfile(metrics []domain.MetricKey, campaignIDs []domain.CampaignID, filters *domain.InsightFilters) (*domain.ProfileResponse, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: no metrics selected", domain.ErrEmptySelection)
	}
	for _, metric := range metrics {
		if err := metric.Validate(); err != nil {
			return nil, err
		}
	}
	if err := aggregating.ValidateSelection(campaignIDs); err != nil {
		return nil, err
	}

	filters, err := s.resolveFilters(filters)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchRecords(filters, campaignIDs)
	if err != nil {
		return nil, err
	}

	names, err := s.campaignNames(campaignIDs)
	if err != nil {
		return nil, err
	}

	points, err := s.aggregator.BuildNormalizedProfile(records, campaignIDs, metrics)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		campaigns = append(campaigns, domain.Campaign{ID: id, Name: names.Label(id)})
	}

	return &domain.ProfileResponse{
		Campaigns: campaigns,
		Points:    points,
		Filters:   filters,
	}, nil
}

// TimeSeries busca os registros de todas as campanhas do período: o eixo de
// datas é a união dos dias com dados, não apenas os dias das selecionadas.
func (s *Service) TimeSeries(metric domain.MetricKey, campaignIDs []domain.CampaignID, filters *domain.InsightFilters) (*domain.TimeSeriesResponse, error) {
	if err := metric.Validate(); err != nil {
		return nil, err
	}
	if err := aggregating.ValidateSelection(campaignIDs); err != nil {
		return nil, err
	}

	filters, err := s.resolveFilters(filters)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchRecords(filters, nil)
	if err != nil {
		return nil, err
	}

	series, err := s.aggregator.BuildTimeSeries(records, campaignIDs, metric)
	if err != nil {
		return nil, err
	}

	return &domain.TimeSeriesResponse{
		Metric:      metric,
		MetricLabel: metric.Label(),
		Series:      series,
		Filters:     filters,
	}, nil
}

func (s *Service) ListCampaigns() ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepository.ListCampaigns()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar campanhas")
	}
	return campaigns, nil
}

// resolveFilters completa o período ausente com os últimos DefaultRangeDays dias
// e rejeita períodos invertidos ou maiores que MaxRangeDays.
func (s *Service) resolveFilters(filters *domain.InsightFilters) (*domain.InsightFilters, error) {
	resolved := &domain.InsightFilters{}
	if filters != nil {
		resolved.StartDate = filters.StartDate
		resolved.EndDate = filters.EndDate
	}

	if resolved.EndDate == nil {
		today := domain.DayOf(s.now()).Time(time.UTC)
		if resolved.StartDate != nil && resolved.StartDate.After(today) {
			today = *resolved.StartDate
		}
		resolved.EndDate = &today
	}
	if resolved.StartDate == nil {
		start := resolved.EndDate.AddDate(0, 0, -(s.cfg.DefaultRangeDays - 1))
		resolved.StartDate = &start
	}

	start := domain.DayOf(*resolved.StartDate)
	end := domain.DayOf(*resolved.EndDate)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", domain.ErrInvalidDateRange, start, end)
	}

	days := int(end.Time(time.UTC).Sub(start.Time(time.UTC)).Hours()/24) + 1
	if s.cfg.MaxRangeDays > 0 && days > s.cfg.MaxRangeDays {
		return nil, fmt.Errorf("%w: %d days requested, maximum is %d", domain.ErrInvalidDateRange, days, s.cfg.MaxRangeDays)
	}

	return resolved, nil
}

func (s *Service) fetchRecords(filters *domain.InsightFilters, campaignIDs []domain.CampaignID) ([]domain.PerformanceRecord, error) {
	records, err := s.recordRepository.GetByDateRange(*filters.StartDate, *filters.EndDate, campaignIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_ids": campaignIDs,
			"start_date":   filters.StartDate.Format(time.DateOnly),
			"end_date":     filters.EndDate.Format(time.DateOnly),
			"error":        err,
		}).Error("Erro ao buscar registros de performance")
		return nil, errors.Wrap(err, "falha ao buscar registros de performance")
	}
	return records, nil
}

func (s *Service) campaignNames(campaignIDs []domain.CampaignID) (domain.CampaignNames, error) {
	campaigns, err := s.campaignRepository.GetByIDs(campaignIDs)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar nomes das campanhas")
	}
	return domain.NamesOf(campaigns), nil
}
