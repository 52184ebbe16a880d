// Package aggregating deriva as visões de comparação de campanhas a partir dos
// registros diários de performance: totais por campanha, perfil normalizado
// (radar) e série temporal alinhada por dia.
//
// Todas as operações são funções puras sobre a coleção recebida: não fazem I/O,
// não guardam estado entre chamadas e não alteram os registros de entrada.
package aggregating

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// normalizationFloor é o menor denominador usado na normalização. Sem ele uma
// métrica com todos os totais zerados produziria NaN em todo o eixo.
const normalizationFloor = 1.0

const (
	OperationTotals     = "totals"
	OperationProfile    = "profile"
	OperationTimeSeries = "timeseries"
)

// SkipObserver é notificado quando registros malformados são descartados
type SkipObserver func(operation string, skipped int)

// Aggregator carrega apenas configuração imutável; pode ser compartilhado entre goroutines
type Aggregator struct {
	onSkip SkipObserver
}

type Option func(*Aggregator)

// WithSkipObserver registra um observador para a contagem de registros descartados
func WithSkipObserver(observer SkipObserver) Option {
	return func(a *Aggregator) {
		a.onSkip = observer
	}
}

func New(opts ...Option) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAggregator = New()

// AggregateTotals usa o agregador padrão (sem observador)
func AggregateTotals(
	records []domain.PerformanceRecord,
	names domain.CampaignNames,
	campaignIDs []domain.CampaignID,
	metric domain.MetricKey,
) ([]domain.ComparisonPoint, error) {
	return defaultAggregator.AggregateTotals(records, names, campaignIDs, metric)
}

// BuildNormalizedProfile usa o agregador padrão (sem observador)
func BuildNormalizedProfile(
	records []domain.PerformanceRecord,
	campaignIDs []domain.CampaignID,
	metrics []domain.MetricKey,
) ([]domain.ProfilePoint, error) {
	return defaultAggregator.BuildNormalizedProfile(records, campaignIDs, metrics)
}

// BuildTimeSeries usa o agregador padrão (sem observador)
func BuildTimeSeries(
	records []domain.PerformanceRecord,
	campaignIDs []domain.CampaignID,
	metric domain.MetricKey,
) ([]domain.TimeSeriesPoint, error) {
	return defaultAggregator.BuildTimeSeries(records, campaignIDs, metric)
}

// AggregateTotals soma a métrica por campanha, na ordem de campaignIDs.
// Registros de campanhas fora da seleção são ignorados.
func (a *Aggregator) AggregateTotals(
	records []domain.PerformanceRecord,
	names domain.CampaignNames,
	campaignIDs []domain.CampaignID,
	metric domain.MetricKey,
) ([]domain.ComparisonPoint, error) {
	if err := metric.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateSelection(campaignIDs); err != nil {
		return nil, err
	}

	valid := a.sanitize(OperationTotals, records)
	totals := sumByCampaign(valid, campaignIDs, metric)

	points := make([]domain.ComparisonPoint, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		points = append(points, domain.ComparisonPoint{
			CampaignID: id,
			Label:      names.Label(id),
			Value:      totals[id],
		})
	}

	return points, nil
}

// BuildNormalizedProfile calcula, para cada métrica, a pontuação 0-100 de cada
// campanha relativa ao maior total entre as campanhas selecionadas. A
// normalização é independente por métrica. O divisor nunca é menor que 1, então
// a campanha líder só pontua 100 quando o maior total é pelo menos 1.
func (a *Aggregator) BuildNormalizedProfile(
	records []domain.PerformanceRecord,
	campaignIDs []domain.CampaignID,
	metrics []domain.MetricKey,
) ([]domain.ProfilePoint, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: no metrics selected", domain.ErrEmptySelection)
	}
	for _, metric := range metrics {
		if err := metric.Validate(); err != nil {
			return nil, err
		}
	}
	if err := ValidateSelection(campaignIDs); err != nil {
		return nil, err
	}

	valid := a.sanitize(OperationProfile, records)

	points := make([]domain.ProfilePoint, 0, len(metrics))
	for _, metric := range metrics {
		totals := sumByCampaign(valid, campaignIDs, metric)
		denominator := normalizationDenominator(totals, campaignIDs)

		scores := make(map[domain.CampaignID]int, len(campaignIDs))
		for _, id := range campaignIDs {
			scores[id] = int(math.Round(totals[id] / denominator * 100))
		}

		points = append(points, domain.ProfilePoint{
			Metric:      metric,
			MetricLabel: metric.Label(),
			Scores:      scores,
		})
	}

	return points, nil
}

// BuildTimeSeries monta um ponto por dia distinto presente nos registros, em
// ordem crescente. Cada ponto tem exatamente um valor por campanha selecionada;
// campanhas sem registro no dia valem 0.
func (a *Aggregator) BuildTimeSeries(
	records []domain.PerformanceRecord,
	campaignIDs []domain.CampaignID,
	metric domain.MetricKey,
) ([]domain.TimeSeriesPoint, error) {
	if err := metric.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateSelection(campaignIDs); err != nil {
		return nil, err
	}

	valid := a.sanitize(OperationTimeSeries, records)

	// Os dias vêm de todos os registros, não só dos selecionados, para que as séries fiquem alinhadas
	days := distinctDays(valid)
	position := make(map[domain.Day]int, len(days))
	series := make([]domain.TimeSeriesPoint, len(days))
	for i, day := range days {
		position[day] = i
		values := make(map[domain.CampaignID]float64, len(campaignIDs))
		for _, id := range campaignIDs {
			values[id] = 0
		}
		series[i] = domain.TimeSeriesPoint{Date: day.String(), Values: values}
	}

	for _, record := range valid {
		values := series[position[record.Day()]].Values
		if _, selected := values[record.CampaignID]; !selected {
			continue
		}
		values[record.CampaignID] += metric.ValueOf(record)
	}

	return series, nil
}

// ValidateSelection rejeita seleções vazias ou com campanhas repetidas
func ValidateSelection(campaignIDs []domain.CampaignID) error {
	if len(campaignIDs) == 0 {
		return fmt.Errorf("%w: no campaigns selected", domain.ErrEmptySelection)
	}

	seen := make(map[domain.CampaignID]struct{}, len(campaignIDs))
	for _, id := range campaignIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCampaign, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func (a *Aggregator) sanitize(operation string, records []domain.PerformanceRecord) []domain.PerformanceRecord {
	valid, skipped := SanitizeRecords(records)
	if len(skipped) == 0 {
		return valid
	}

	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"skipped":   len(skipped),
		"received":  len(records),
	}).Debug("aggregating: registros malformados descartados")

	if a.onSkip != nil {
		a.onSkip(operation, len(skipped))
	}

	return valid
}

func sumByCampaign(
	records []domain.PerformanceRecord,
	campaignIDs []domain.CampaignID,
	metric domain.MetricKey,
) map[domain.CampaignID]float64 {
	totals := make(map[domain.CampaignID]float64, len(campaignIDs))
	for _, id := range campaignIDs {
		totals[id] = 0
	}

	for _, record := range records {
		if _, selected := totals[record.CampaignID]; !selected {
			continue
		}
		totals[record.CampaignID] += metric.ValueOf(record)
	}

	return totals
}

// normalizationDenominator considera apenas as campanhas selecionadas
func normalizationDenominator(totals map[domain.CampaignID]float64, campaignIDs []domain.CampaignID) float64 {
	denominator := normalizationFloor
	for _, id := range campaignIDs {
		if totals[id] > denominator {
			denominator = totals[id]
		}
	}
	return denominator
}

func distinctDays(records []domain.PerformanceRecord) []domain.Day {
	seen := make(map[domain.Day]struct{})
	days := make([]domain.Day, 0)
	for _, record := range records {
		day := record.Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	slices.SortFunc(days, domain.Day.Compare)
	return days
}
