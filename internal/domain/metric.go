package domain

import (
	"strings"
)

// MetricKey seleciona qual campo numérico de PerformanceRecord será agregado
type MetricKey string

const (
	MetricClicks      MetricKey = "clicks"
	MetricConversions MetricKey = "conversions"
	MetricRevenue     MetricKey = "revenue"
	MetricImpressions MetricKey = "impressions"
	MetricCTR         MetricKey = "ctr"
	MetricROI         MetricKey = "roi"
)

type metricSpec struct {
	label string
	value func(PerformanceRecord) float64
}

// Catálogo de métricas. Para adicionar uma métrica basta registrá-la aqui e em metricOrder.
var metricCatalog = map[MetricKey]metricSpec{
	MetricClicks: {
		label: "Clicks",
		value: func(r PerformanceRecord) float64 { return float64(r.Clicks) },
	},
	MetricConversions: {
		label: "Conversions",
		value: func(r PerformanceRecord) float64 { return float64(r.Conversions) },
	},
	MetricRevenue: {
		label: "Revenue",
		value: func(r PerformanceRecord) float64 { return r.Revenue },
	},
	MetricImpressions: {
		label: "Impressions",
		value: func(r PerformanceRecord) float64 { return float64(r.Impressions) },
	},
	MetricCTR: {
		label: "CTR",
		value: func(r PerformanceRecord) float64 { return valueOrZero(r.CTR) },
	},
	MetricROI: {
		label: "ROI",
		value: func(r PerformanceRecord) float64 { return valueOrZero(r.ROI) },
	},
}

var metricOrder = []MetricKey{
	MetricClicks,
	MetricConversions,
	MetricRevenue,
	MetricImpressions,
	MetricCTR,
	MetricROI,
}

// MetricKeys retorna todas as métricas conhecidas na ordem padrão dos eixos do radar
func MetricKeys() []MetricKey {
	keys := make([]MetricKey, len(metricOrder))
	copy(keys, metricOrder)
	return keys
}

// ParseMetricKey normaliza caixa e espaços e rejeita chaves desconhecidas
func ParseMetricKey(value string) (MetricKey, error) {
	key := MetricKey(strings.ToLower(strings.TrimSpace(value)))
	if err := key.Validate(); err != nil {
		return "", &MetricError{Key: value}
	}
	return key, nil
}

// ParseMetricKeys converte uma lista separada por vírgula, preservando a ordem
func ParseMetricKeys(csv string) ([]MetricKey, error) {
	keys := make([]MetricKey, 0)
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, err := ParseMetricKey(part)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (m MetricKey) Validate() error {
	if _, ok := metricCatalog[m]; !ok {
		return &MetricError{Key: string(m)}
	}
	return nil
}

func (m MetricKey) Label() string {
	if spec, ok := metricCatalog[m]; ok {
		return spec.label
	}
	return string(m)
}

// ValueOf extrai o valor da métrica do registro. Chaves desconhecidas valem 0;
// quem chama deve validar a chave antes.
func (m MetricKey) ValueOf(r PerformanceRecord) float64 {
	spec, ok := metricCatalog[m]
	if !ok {
		return 0
	}
	return spec.value(r)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
