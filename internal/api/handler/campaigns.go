package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

func ListCampaigns(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns, err := service.ListCampaigns()
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to list campaigns")
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		logger.WithField("count", len(campaigns)).Debug("campaigns: listed")
		writeJSON(w, logger, http.StatusOK, campaigns)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}
