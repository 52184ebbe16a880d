package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// PerformanceRecord é a observação diária de uma campanha. CTR e ROI são
// opcionais; quando ausentes contribuem com 0 para as agregações.
type PerformanceRecord struct {
	CampaignID  CampaignID `json:"campaign_id"`
	Date        time.Time  `json:"date"`
	Clicks      int64      `json:"clicks"`
	Impressions int64      `json:"impressions"`
	Conversions int64      `json:"conversions"`
	Revenue     float64    `json:"revenue"`
	CTR         *float64   `json:"ctr,omitempty"`
	ROI         *float64   `json:"roi,omitempty"`
}

// Day retorna o dia de calendário do registro
func (r PerformanceRecord) Day() Day {
	return DayOf(r.Date)
}

// Validate verifica se o registro pode participar de uma agregação
func (r PerformanceRecord) Validate() error {
	if strings.TrimSpace(string(r.CampaignID)) == "" {
		return &RecordError{Field: "campaign_id", Reason: "is required"}
	}

	if r.Date.IsZero() {
		return &RecordError{Field: "date", Reason: "is required"}
	}

	counters := []struct {
		field string
		value int64
	}{
		{"clicks", r.Clicks},
		{"impressions", r.Impressions},
		{"conversions", r.Conversions},
	}
	for _, c := range counters {
		if c.value < 0 {
			return &RecordError{Field: c.field, Reason: "must not be negative"}
		}
	}

	if err := checkAmount("revenue", &r.Revenue); err != nil {
		return err
	}
	if err := checkAmount("ctr", r.CTR); err != nil {
		return err
	}
	return checkAmount("roi", r.ROI)
}

func checkAmount(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return &RecordError{Field: field, Reason: "must be a finite number"}
	}
	if *v < 0 {
		return &RecordError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

// ParseRecord converte um registro de tipagem frouxa (JSON genérico vindo do
// upstream) em PerformanceRecord. Valores numéricos em texto ("10") são aceitos;
// campos numéricos ausentes ou nulos valem 0.
func ParseRecord(raw map[string]any) (PerformanceRecord, error) {
	record := PerformanceRecord{}

	campaignValue, ok := lookup(raw, "campaign_id", "campaignId")
	if !ok {
		return record, &RecordError{Field: "campaign_id", Reason: "is required"}
	}
	campaignID, err := cast.ToStringE(campaignValue)
	if err != nil {
		return record, &RecordError{Field: "campaign_id", Reason: "is not a valid identifier"}
	}
	record.CampaignID = CampaignID(strings.TrimSpace(campaignID))

	dateValue, ok := lookup(raw, "date")
	if !ok {
		return record, &RecordError{Field: "date", Reason: "is required"}
	}
	date, err := cast.ToTimeInDefaultLocationE(dateValue, time.UTC)
	if err != nil {
		return record, &RecordError{Field: "date", Reason: "is not a valid date"}
	}
	record.Date = date

	if record.Clicks, err = parseCounter(raw, "clicks"); err != nil {
		return record, err
	}
	if record.Impressions, err = parseCounter(raw, "impressions"); err != nil {
		return record, err
	}
	if record.Conversions, err = parseCounter(raw, "conversions"); err != nil {
		return record, err
	}

	revenue, err := parseAmount(raw, "revenue")
	if err != nil {
		return record, err
	}
	if revenue != nil {
		record.Revenue = *revenue
	}

	if record.CTR, err = parseAmount(raw, "ctr"); err != nil {
		return record, err
	}
	if record.ROI, err = parseAmount(raw, "roi"); err != nil {
		return record, err
	}

	return record, record.Validate()
}

func lookup(raw map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
				continue
			}
			return value, true
		}
	}
	return nil, false
}

// parseCounter aceita inteiros em JSON ou em texto na base 10 ("010" vale 10).
// Frações e outras bases ("0x10") são rejeitadas, nunca truncadas.
func parseCounter(raw map[string]any, field string) (int64, error) {
	value, ok := lookup(raw, field)
	if !ok {
		return 0, nil
	}

	switch v := value.(type) {
	case bool:
		return 0, &RecordError{Field: field, Reason: "is not numeric"}
	case string:
		s := strings.TrimSpace(v)
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n, nil
		}
		if f, floatErr := strconv.ParseFloat(s, 64); floatErr == nil && isDecimalText(s) && !isWhole(f) {
			return 0, &RecordError{Field: field, Reason: "is not an integer"}
		}
		return 0, &RecordError{Field: field, Reason: "is not numeric"}
	case float64:
		return wholeCounter(field, v)
	case float32:
		return wholeCounter(field, float64(v))
	}

	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, &RecordError{Field: field, Reason: "is not numeric"}
	}
	return n, nil
}

func wholeCounter(field string, f float64) (int64, error) {
	if !isWhole(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, &RecordError{Field: field, Reason: "is not an integer"}
	}
	return int64(f), nil
}

func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// isDecimalText recusa prefixos de base e separadores que o strconv aceitaria
func isDecimalText(s string) bool {
	return s != "" && !strings.ContainsAny(s, "xXoObB_")
}

func parseAmount(raw map[string]any, field string) (*float64, error) {
	value, ok := lookup(raw, field)
	if !ok {
		return nil, nil
	}

	switch v := value.(type) {
	case bool:
		return nil, &RecordError{Field: field, Reason: "is not numeric"}
	case string:
		s := strings.TrimSpace(v)
		if !isDecimalText(s) {
			return nil, &RecordError{Field: field, Reason: "is not numeric"}
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &RecordError{Field: field, Reason: "is not numeric"}
		}
		return &n, nil
	}

	n, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, &RecordError{Field: field, Reason: "is not numeric"}
	}
	return &n, nil
}
