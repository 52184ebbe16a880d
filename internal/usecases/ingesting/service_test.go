package ingesting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockPerformanceRecordRepository) {
	ctrl := gomock.NewController(t)
	recordRepo := mocks.NewMockPerformanceRecordRepository(ctrl)

	service := NewService(recordRepo)
	service.generateBatchID = func() (string, error) { return "batch_test", nil }

	return service, recordRepo
}

func TestService_Ingest(t *testing.T) {
	service, recordRepo := newTestService(t)

	raw := []map[string]any{
		{"campaign_id": 1, "date": "2024-03-01", "clicks": "10", "revenue": 99.5},
		{"campaign_id": "2", "date": "2024-03-01", "clicks": -1},
		{"date": "2024-03-01", "clicks": 3},
		{"campaignId": "3", "date": "2024-03-02", "impressions": 1000, "ctr": "0.02"},
	}

	var saved []domain.PerformanceRecord
	recordRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(records []domain.PerformanceRecord) error {
			saved = records
			return nil
		})

	result, err := service.Ingest(raw)
	require.NoError(t, err)

	assert.Equal(t, "batch_test", result.BatchID)
	assert.Equal(t, 4, result.Received)
	assert.Equal(t, 2, result.Accepted)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 1, result.Rejected[0].Index)
	assert.Contains(t, result.Rejected[0].Reason, "clicks")
	assert.Equal(t, 2, result.Rejected[1].Index)
	assert.Contains(t, result.Rejected[1].Reason, "campaign_id")

	require.Len(t, saved, 2)
	assert.Equal(t, domain.CampaignID("1"), saved[0].CampaignID)
	assert.Equal(t, int64(10), saved[0].Clicks)
	assert.Equal(t, 99.5, saved[0].Revenue)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), saved[0].Date)
	assert.Equal(t, domain.CampaignID("3"), saved[1].CampaignID)
	require.NotNil(t, saved[1].CTR)
	assert.Equal(t, 0.02, *saved[1].CTR)
}

func TestService_Ingest_AllRejectedSkipsRepository(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.Ingest([]map[string]any{{"clicks": 1}})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Accepted)
	assert.Len(t, result.Rejected, 1)
}

func TestService_Ingest_EmptyBatch(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Ingest(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestService_Ingest_RepositoryError(t *testing.T) {
	service, recordRepo := newTestService(t)
	dbErr := errors.New("deadlock detected")

	recordRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(dbErr)

	result, err := service.Ingest([]map[string]any{{"campaign_id": "1", "date": "2024-03-01"}})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_Ingest_BatchIDError(t *testing.T) {
	service, _ := newTestService(t)
	service.generateBatchID = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := service.Ingest([]map[string]any{{"campaign_id": "1", "date": "2024-03-01"}})
	assert.ErrorContains(t, err, "falha ao gerar id do lote")
}
