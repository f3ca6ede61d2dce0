// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-estimator-api/infrastructure/repository"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
)

type WidgetSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
	WidgetTTL    time.Duration
}

// WidgetSweepService remove periodicamente as sessões do widget que expiraram
type WidgetSweepService struct {
	scheduler           *gocron.Scheduler
	widgetRepo          repository.WidgetRepository
	config              WidgetSweepConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.WidgetSweepResult
}

func NewWidgetSweepService(widgetRepo repository.WidgetRepository, cfg *config.Config) *WidgetSweepService {
	sweepConfig := WidgetSweepConfig{
		CronSchedule: cfg.WidgetSweep.CronSchedule,
		SyncEnabled:  cfg.WidgetSweep.Enabled,
		WidgetTTL:    cfg.Widget.TTL,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"widget_ttl":    sweepConfig.WidgetTTL.String(),
	}).Info("Configuração da limpeza de sessões do widget carregada")

	return &WidgetSweepService{
		scheduler:  gocron.NewScheduler(time.Local),
		widgetRepo: widgetRepo,
		config:     sweepConfig,
		now:        time.Now,
	}
}

func (s *WidgetSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de sessões do widget desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SweepExpiredWidgets(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de sessões do widget")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões do widget: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando limpeza de sessões do widget")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepExpiredWidgets remove as sessões expiradas. Retorna nil se já houver uma limpeza em andamento.
func (s *WidgetSweepService) SweepExpiredWidgets() (*domain.WidgetSweepResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza de sessões do widget já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	sweptAt := s.now()
	removed, err := s.widgetRepo.DeleteExpired(sweptAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao remover sessões expiradas: %w", err)
	}

	remaining, err := s.widgetRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar sessões ativas: %w", err)
	}

	result := &domain.WidgetSweepResult{
		Removed:   removed,
		Remaining: remaining,
		SweptAt:   sweptAt,
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": remaining,
	}).Info("Limpeza de sessões do widget concluída")

	return result, nil
}

// TriggerManualSync dispara uma limpeza fora do agendamento
func (s *WidgetSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões do widget")
	go func() {
		if _, err := s.SweepExpiredWidgets(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de sessões do widget")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *WidgetSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"widget_ttl":             s.config.WidgetTTL.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
