package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetricKey(t *testing.T) {
	tests := []struct {
		input    string
		expected MetricKey
		wantErr  bool
	}{
		{input: "clicks", expected: MetricClicks},
		{input: " Revenue ", expected: MetricRevenue},
		{input: "CTR", expected: MetricCTR},
		{input: "roi", expected: MetricROI},
		{input: "bogus", wantErr: true},
		{input: "click", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, err := ParseMetricKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMetricKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestParseMetricKeys(t *testing.T) {
	keys, err := ParseMetricKeys("revenue, clicks,,ctr")
	require.NoError(t, err)
	assert.Equal(t, []MetricKey{MetricRevenue, MetricClicks, MetricCTR}, keys)

	_, err = ParseMetricKeys("clicks,bogus")
	var metricErr *MetricError
	require.ErrorAs(t, err, &metricErr)
	assert.Equal(t, "bogus", metricErr.Key)

	keys, err = ParseMetricKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMetricKeys_ReturnsCopy(t *testing.T) {
	keys := MetricKeys()
	keys[0] = "mutated"
	assert.Equal(t, MetricClicks, MetricKeys()[0])
}

func TestMetricKey_ValueOf(t *testing.T) {
	ctr := 0.12
	record := PerformanceRecord{
		Clicks:      3,
		Impressions: 25,
		Conversions: 1,
		Revenue:     99.9,
		CTR:         &ctr,
	}

	assert.Equal(t, 3.0, MetricClicks.ValueOf(record))
	assert.Equal(t, 25.0, MetricImpressions.ValueOf(record))
	assert.Equal(t, 1.0, MetricConversions.ValueOf(record))
	assert.Equal(t, 99.9, MetricRevenue.ValueOf(record))
	assert.Equal(t, 0.12, MetricCTR.ValueOf(record))
	assert.Equal(t, 0.0, MetricROI.ValueOf(record))
	assert.Equal(t, 0.0, MetricKey("bogus").ValueOf(record))
}

func TestMetricKey_Label(t *testing.T) {
	assert.Equal(t, "ROI", MetricROI.Label())
	assert.Equal(t, "Impressions", MetricImpressions.Label())
}
