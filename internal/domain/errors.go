package domain

import (
	"errors"
	"fmt"
)

var (
	// Erros estruturais: indicam uso incorreto por parte de quem chama
	ErrInvalidMetricKey  = errors.New("invalid metric key")
	ErrEmptySelection    = errors.New("empty selection")
	ErrDuplicateCampaign = errors.New("duplicate campaign in selection")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrEmptyBatch        = errors.New("empty record batch")

	// Erros de qualidade de dados: o registro é descartado, a agregação continua
	ErrMalformedRecord = errors.New("malformed performance record")
)

// MetricError carrega a chave de métrica rejeitada
type MetricError struct {
	Key string
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidMetricKey.Error(), e.Key)
}

func (e *MetricError) Unwrap() error {
	return ErrInvalidMetricKey
}

// RecordError descreve por que um registro foi considerado malformado
type RecordError struct {
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrMalformedRecord.Error(), e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}
