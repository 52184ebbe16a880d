package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/config"
)

// RetentionRecorder recebe a quantidade de registros removidos em cada execução
type RetentionRecorder interface {
	AddRetentionDeleted(deleted int64)
}

// RecordRetentionConfig representa a configuração do agendador de retenção
type RecordRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// RecordRetentionService remove periodicamente os registros de performance mais antigos que RetentionDays
type RecordRetentionService struct {
	scheduler        *gocron.Scheduler
	config           RecordRetentionConfig
	recordRepo       repository.PerformanceRecordRepository
	recorder         RetentionRecorder
	syncRunning      bool
	syncMutex        sync.Mutex
	lastRunStartedAt time.Time
	lastRunEndedAt   time.Time
	lastDeleted      int64
	lastError        string
}

func NewRecordRetentionService(
	recordRepo repository.PerformanceRecordRepository,
	recorder RetentionRecorder,
	appConfig *config.Config,
) *RecordRetentionService {
	retentionConfig := RecordRetentionConfig{
		CronSchedule:  appConfig.RecordRetention.CronSchedule,
		RetentionDays: appConfig.RecordRetention.Days,
		Enabled:       appConfig.RecordRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de registros carregada")

	return &RecordRetentionService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     retentionConfig,
		recordRepo: recordRepo,
		recorder:   recorder,
	}
}

// Start agenda a limpeza; o agendador para quando ctx é cancelado
func (s *RecordRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de registros de performance desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de registros")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneOldRecords()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de registros: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de registros")
		s.scheduler.Stop()
	}()

	return nil
}

// pruneOldRecords retorna false quando outra execução já está em andamento
func (s *RecordRetentionService) pruneOldRecords() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retenção de registros já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	deleted, err := s.recordRepo.DeleteOlderThan(s.config.RetentionDays)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastRunEndedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao remover registros de performance antigos")
		return true
	}

	s.lastError = ""
	s.lastDeleted = deleted
	if s.recorder != nil {
		s.recorder.AddRetentionDeleted(deleted)
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
		"duration":       s.lastRunEndedAt.Sub(s.lastRunStartedAt).String(),
	}).Info("Retenção de registros de performance concluída")

	return true
}

// TriggerManualSync dispara a limpeza fora do agendamento
func (s *RecordRetentionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retenção de registros já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando retenção manual de registros de performance")
	go s.pruneOldRecords()
}

// GetStatus retorna o status atual do agendador
func (s *RecordRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":             s.config.Enabled,
		"cron":                s.config.CronSchedule,
		"retention_days":      s.config.RetentionDays,
		"running":             s.syncRunning,
		"last_run_started_at": s.lastRunStartedAt,
		"last_run_ended_at":   s.lastRunEndedAt,
		"last_deleted":        s.lastDeleted,
		"last_error":          s.lastError,
	}
}
