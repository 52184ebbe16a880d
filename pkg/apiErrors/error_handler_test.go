package apiErrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		expected string
	}{
		{name: "métrica inválida", err: &domain.MetricError{Key: "bogus"}, fallback: ErrInternalServer, expected: ErrInvalidMetric},
		{name: "seleção vazia", err: fmt.Errorf("%w: no campaigns", domain.ErrEmptySelection), fallback: ErrInternalServer, expected: ErrEmptySelection},
		{name: "lote vazio", err: domain.ErrEmptyBatch, fallback: ErrInternalServer, expected: ErrEmptySelection},
		{name: "campanha repetida", err: fmt.Errorf("%w: 1", domain.ErrDuplicateCampaign), fallback: ErrInternalServer, expected: ErrDuplicateSelection},
		{name: "período inválido embrulhado", err: pkgerrors.Wrap(domain.ErrInvalidDateRange, "insighting"), fallback: ErrInternalServer, expected: ErrInvalidFormat},
		{name: "erro desconhecido usa fallback", err: errors.New("connection refused"), fallback: ErrDatabaseOperation, expected: ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err, tt.fallback)
			assert.Equal(t, tt.expected, apiErr.Code)
			assert.Equal(t, tt.err.Error(), apiErr.Message)
		})
	}

	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)
}

func TestWriteFromError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFromError(rec, &domain.MetricError{Key: "bogus"}, ErrInternalServer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrInvalidMetric, body.Code)
	assert.Contains(t, body.Message, "bogus")
}

func TestStatusOf_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf("XYZ_999"))
}
