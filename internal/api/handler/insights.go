package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// insightQuery são os parâmetros comuns às três visões
type insightQuery struct {
	campaignIDs []domain.CampaignID
	filters     *domain.InsightFilters
}

func parseInsightQuery(query url.Values) (*insightQuery, error) {
	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, fmt.Errorf("start_date inválido: %w", err)
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, fmt.Errorf("end_date inválido: %w", err)
	}

	return &insightQuery{
		campaignIDs: domain.ParseCampaignIDs(query.Get("campaign_ids")),
		filters: &domain.InsightFilters{
			StartDate: startDate,
			EndDate:   endDate,
		},
	}, nil
}

func GetComparison(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		params, err := parseInsightQuery(query)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metric, err := domain.ParseMetricKey(query.Get("metric"))
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidRequest)
			return
		}

		logger.WithFields(log.Fields{
			"metric":       metric,
			"campaign_ids": params.campaignIDs,
		}).Debug("insights: comparing totals")

		result, err := service.CompareTotals(metric, params.campaignIDs, params.filters)
		if err != nil {
			writeServiceError(w, logger, "insights: failed to compare totals", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

// GetProfile usa todas as métricas do catálogo quando "metrics" não é informado
func GetProfile(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		params, err := parseInsightQuery(query)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metrics := domain.MetricKeys()
		if raw := query.Get("metrics"); raw != "" {
			metrics, err = domain.ParseMetricKeys(raw)
			if err != nil {
				apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidRequest)
				return
			}
		}

		logger.WithFields(log.Fields{
			"metric":       metrics,
			"campaign_ids": params.campaignIDs,
		}).Debug("insights: building normalized profile")

		result, err := service.CompareProfile(metrics, params.campaignIDs, params.filters)
		if err != nil {
			writeServiceError(w, logger, "insights: failed to build profile", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

func GetTimeSeries(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		params, err := parseInsightQuery(query)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metric, err := domain.ParseMetricKey(query.Get("metric"))
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidRequest)
			return
		}

		logger.WithFields(log.Fields{
			"metric":       metric,
			"campaign_ids": params.campaignIDs,
		}).Debug("insights: building time series")

		result, err := service.TimeSeries(metric, params.campaignIDs, params.filters)
		if err != nil {
			writeServiceError(w, logger, "insights: failed to build time series", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

// writeServiceError responde 4xx para erros de validação e 5xx para o restante
func writeServiceError(w http.ResponseWriter, logger log.Logger, msg string, err error) {
	apiErr := apiErrors.FromError(err, apiErrors.ErrDatabaseOperation)
	if apiErrors.StatusOf(apiErr.Code) >= http.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Warn(msg)
	}
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}
