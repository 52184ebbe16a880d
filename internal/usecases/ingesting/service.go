package ingesting

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// Ingester recebe lotes de registros diários enviados pelo upstream
type Ingester interface {
	Ingest(raw []map[string]any) (*domain.IngestResult, error)
}

type Service struct {
	recordRepository repository.PerformanceRecordRepository
	generateBatchID  func() (string, error)
}

func NewService(recordRepo repository.PerformanceRecordRepository) *Service {
	return &Service{
		recordRepository: recordRepo,
		generateBatchID:  utils.GenerateBatchID,
	}
}

var _ Ingester = (*Service)(nil)

// Ingest converte e grava o lote. Registros malformados não interrompem o lote:
// são devolvidos em Rejected com a posição original e o motivo.
func (s *Service) Ingest(raw []map[string]any) (*domain.IngestResult, error) {
	if len(raw) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	batchID, err := s.generateBatchID()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao gerar id do lote")
	}

	result := &domain.IngestResult{
		BatchID:  batchID,
		Received: len(raw),
		Rejected: make([]domain.RejectedRecord, 0),
	}

	accepted := make([]domain.PerformanceRecord, 0, len(raw))
	for i, item := range raw {
		record, err := domain.ParseRecord(item)
		if err != nil {
			result.Rejected = append(result.Rejected, domain.RejectedRecord{
				Index:  i,
				Reason: err.Error(),
			})
			continue
		}
		accepted = append(accepted, record)
	}

	logger := logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"received": result.Received,
		"accepted": len(accepted),
		"rejected": len(result.Rejected),
	})

	if len(accepted) > 0 {
		if err := s.recordRepository.SaveOrUpdate(accepted); err != nil {
			logger.WithError(err).Error("Erro ao gravar lote de registros de performance")
			return nil, errors.Wrap(err, "falha ao gravar registros de performance")
		}
	}

	result.Accepted = len(accepted)
	logger.Info("Lote de registros de performance processado")

	return result, nil
}
