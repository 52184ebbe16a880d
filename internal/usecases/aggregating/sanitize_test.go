package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

func TestSanitizeRecords(t *testing.T) {
	records := []domain.PerformanceRecord{
		{CampaignID: "1", Date: day(2024, 1, 1), Clicks: 1},
		{CampaignID: "  ", Date: day(2024, 1, 1)},
		{CampaignID: "2", Date: day(2024, 1, 1), Conversions: -1},
	}

	valid, skipped := SanitizeRecords(records)

	assert.Equal(t, records[:1], valid)
	if assert.Len(t, skipped, 2) {
		assert.Equal(t, 1, skipped[0].Index)
		assert.ErrorIs(t, skipped[0].Err, domain.ErrMalformedRecord)
		assert.Equal(t, 2, skipped[1].Index)

		var recordErr *domain.RecordError
		if assert.ErrorAs(t, skipped[1].Err, &recordErr) {
			assert.Equal(t, "conversions", recordErr.Field)
		}
	}
}

func TestSanitizeRecords_AllValid(t *testing.T) {
	records := []domain.PerformanceRecord{
		{CampaignID: "1", Date: day(2024, 1, 1)},
	}

	valid, skipped := SanitizeRecords(records)
	assert.Equal(t, records, valid)
	assert.Empty(t, skipped)
}
