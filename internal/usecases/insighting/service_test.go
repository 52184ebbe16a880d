package insighting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/aggregating"
	"go.uber.org/mock/gomock"
)

var referenceNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestService(t *testing.T, opts ...aggregating.Option) (*Service, *mocks.MockPerformanceRecordRepository, *mocks.MockCampaignRepository) {
	ctrl := gomock.NewController(t)

	recordRepo := mocks.NewMockPerformanceRecordRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	cfg := &config.Config{Insights: config.Insights{DefaultRangeDays: 30, MaxRangeDays: 90}}
	service := NewService(cfg, recordRepo, campaignRepo, opts...)
	service.now = func() time.Time { return referenceNow }

	return service, recordRepo, campaignRepo
}

var sampleRecords = []domain.PerformanceRecord{
	{CampaignID: "1", Date: date(2024, 3, 1), Clicks: 10, Revenue: 100},
	{CampaignID: "1", Date: date(2024, 3, 2), Clicks: 5, Revenue: 50},
	{CampaignID: "2", Date: date(2024, 3, 1), Clicks: 20, Revenue: 10},
}

func TestService_CompareTotals(t *testing.T) {
	service, recordRepo, campaignRepo := newTestService(t)
	selection := []domain.CampaignID{"1", "2"}
	filters := &domain.InsightFilters{StartDate: timePtr(date(2024, 3, 1)), EndDate: timePtr(date(2024, 3, 2))}

	recordRepo.EXPECT().
		GetByDateRange(date(2024, 3, 1), date(2024, 3, 2), selection).
		Return(sampleRecords, nil)
	campaignRepo.EXPECT().
		GetByIDs(selection).
		Return([]domain.Campaign{{ID: "1", Name: "Black Friday"}}, nil)

	result, err := service.CompareTotals(domain.MetricClicks, selection, filters)
	require.NoError(t, err)

	assert.Equal(t, domain.MetricClicks, result.Metric)
	assert.Equal(t, domain.MetricClicks.Label(), result.MetricLabel)
	assert.Equal(t, []domain.ComparisonPoint{
		{CampaignID: "1", Label: "Black Friday", Value: 15},
		{CampaignID: "2", Label: "Campaign 2", Value: 20},
	}, result.Points)
	assert.Equal(t, filters.StartDate, result.Filters.StartDate)
}

func TestService_CompareTotals_DefaultRange(t *testing.T) {
	service, recordRepo, campaignRepo := newTestService(t)
	selection := []domain.CampaignID{"1"}

	recordRepo.EXPECT().
		GetByDateRange(date(2024, 2, 10), date(2024, 3, 10), selection).
		Return(nil, nil)
	campaignRepo.EXPECT().GetByIDs(selection).Return(nil, nil)

	result, err := service.CompareTotals(domain.MetricRevenue, selection, nil)
	require.NoError(t, err)

	require.Len(t, result.Points, 1)
	assert.Equal(t, 0.0, result.Points[0].Value)
	assert.Equal(t, date(2024, 2, 10), *result.Filters.StartDate)
	assert.Equal(t, date(2024, 3, 10), *result.Filters.EndDate)
}

func TestService_ValidationHappensBeforeRepository(t *testing.T) {
	// Nenhum EXPECT: qualquer chamada ao repositório falha o teste
	service, _, _ := newTestService(t)

	tests := []struct {
		name     string
		call     func() error
		expected error
	}{
		{
			name: "métrica inválida",
			call: func() error {
				_, err := service.CompareTotals("bogus", []domain.CampaignID{"1"}, nil)
				return err
			},
			expected: domain.ErrInvalidMetricKey,
		},
		{
			name: "seleção vazia",
			call: func() error {
				_, err := service.TimeSeries(domain.MetricClicks, nil, nil)
				return err
			},
			expected: domain.ErrEmptySelection,
		},
		{
			name: "campanha repetida",
			call: func() error {
				_, err := service.CompareTotals(domain.MetricClicks, []domain.CampaignID{"1", "1"}, nil)
				return err
			},
			expected: domain.ErrDuplicateCampaign,
		},
		{
			name: "perfil sem métricas",
			call: func() error {
				_, err := service.CompareProfile(nil, []domain.CampaignID{"1"}, nil)
				return err
			},
			expected: domain.ErrEmptySelection,
		},
		{
			name: "perfil com métrica inválida",
			call: func() error {
				_, err := service.CompareProfile([]domain.MetricKey{domain.MetricClicks, "bogus"}, []domain.CampaignID{"1"}, nil)
				return err
			},
			expected: domain.ErrInvalidMetricKey,
		},
		{
			name: "data inicial após a final",
			call: func() error {
				filters := &domain.InsightFilters{StartDate: timePtr(date(2024, 3, 5)), EndDate: timePtr(date(2024, 3, 1))}
				_, err := service.CompareTotals(domain.MetricClicks, []domain.CampaignID{"1"}, filters)
				return err
			},
			expected: domain.ErrInvalidDateRange,
		},
		{
			name: "período maior que o máximo",
			call: func() error {
				filters := &domain.InsightFilters{StartDate: timePtr(date(2023, 1, 1)), EndDate: timePtr(date(2024, 3, 1))}
				_, err := service.TimeSeries(domain.MetricClicks, []domain.CampaignID{"1"}, filters)
				return err
			},
			expected: domain.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_CompareProfile(t *testing.T) {
	service, recordRepo, campaignRepo := newTestService(t)
	selection := []domain.CampaignID{"1", "2"}
	filters := &domain.InsightFilters{StartDate: timePtr(date(2024, 3, 1)), EndDate: timePtr(date(2024, 3, 2))}

	recordRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), selection).
		Return(sampleRecords, nil)
	campaignRepo.EXPECT().
		GetByIDs(selection).
		Return([]domain.Campaign{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}, nil)

	result, err := service.CompareProfile([]domain.MetricKey{domain.MetricClicks, domain.MetricRevenue}, selection, filters)
	require.NoError(t, err)

	assert.Equal(t, []domain.Campaign{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}, result.Campaigns)
	require.Len(t, result.Points, 2)
	assert.Equal(t, map[domain.CampaignID]int{"1": 75, "2": 100}, result.Points[0].Scores)
	assert.Equal(t, map[domain.CampaignID]int{"1": 100, "2": 7}, result.Points[1].Scores)
}

func TestService_TimeSeries_FetchesAllCampaigns(t *testing.T) {
	service, recordRepo, _ := newTestService(t)
	filters := &domain.InsightFilters{StartDate: timePtr(date(2024, 3, 1)), EndDate: timePtr(date(2024, 3, 2))}

	recordRepo.EXPECT().
		GetByDateRange(date(2024, 3, 1), date(2024, 3, 2), gomock.Nil()).
		Return(sampleRecords, nil)

	result, err := service.TimeSeries(domain.MetricClicks, []domain.CampaignID{"2"}, filters)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSeriesPoint{
		{Date: "2024-03-01", Values: map[domain.CampaignID]float64{"2": 20}},
		{Date: "2024-03-02", Values: map[domain.CampaignID]float64{"2": 0}},
	}, result.Series)
}

func TestService_RepositoryErrorsAreWrapped(t *testing.T) {
	service, recordRepo, campaignRepo := newTestService(t)
	dbErr := errors.New("connection reset")

	recordRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	_, err := service.CompareTotals(domain.MetricClicks, []domain.CampaignID{"1"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "falha ao buscar registros de performance")

	campaignRepo.EXPECT().ListCampaigns().Return(nil, dbErr)
	_, err = service.ListCampaigns()
	assert.ErrorIs(t, err, dbErr)
}

func TestService_SkipObserverReceivesMalformedCount(t *testing.T) {
	var observed []int
	service, recordRepo, campaignRepo := newTestService(t, aggregating.WithSkipObserver(func(operation string, skipped int) {
		assert.Equal(t, aggregating.OperationTotals, operation)
		observed = append(observed, skipped)
	}))

	records := append([]domain.PerformanceRecord{
		{CampaignID: "1", Date: date(2024, 3, 1), Clicks: -3},
	}, sampleRecords...)

	recordRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)
	campaignRepo.EXPECT().GetByIDs(gomock.Any()).Return(nil, nil)

	result, err := service.CompareTotals(domain.MetricClicks, []domain.CampaignID{"1"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 15.0, result.Points[0].Value)
	assert.Equal(t, []int{1}, observed)
}
