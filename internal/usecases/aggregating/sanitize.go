package aggregating

import "github.com/vfg2006/campaign-insights-api/internal/domain"

// SkippedRecord aponta um registro descartado e o motivo
type SkippedRecord struct {
	Index int
	Err   error
}

// SanitizeRecords separa os registros válidos dos malformados sem alterar a entrada.
// Registros malformados não interrompem a agregação; apenas deixam de contribuir.
func SanitizeRecords(records []domain.PerformanceRecord) ([]domain.PerformanceRecord, []SkippedRecord) {
	valid := make([]domain.PerformanceRecord, 0, len(records))
	var skipped []SkippedRecord

	for i, record := range records {
		if err := record.Validate(); err != nil {
			skipped = append(skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		valid = append(valid, record)
	}

	return valid, skipped
}
