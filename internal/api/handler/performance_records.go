package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

const maxIngestBodyBytes = 10 << 20

// IngestPerformanceRecords aceita um array JSON de registros. A resposta lista
// os registros rejeitados; o restante do lote é gravado.
func IngestPerformanceRecords(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var raw []map[string]any
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIngestBodyBytes)).Decode(&raw); err != nil {
			logger.WithError(err).Warn("performance-records: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição deve ser um array JSON de registros", nil)
			return
		}

		result, err := service.Ingest(raw)
		if err != nil {
			writeServiceError(w, logger, "performance-records: failed to ingest batch", err)
			return
		}

		logger.WithFields(log.Fields{
			"batch_id": result.BatchID,
			"accepted": result.Accepted,
			"rejected": len(result.Rejected),
		}).Info("performance-records: batch ingested")

		status := http.StatusCreated
		if result.Accepted == 0 {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, logger, status, result)
	})
}
