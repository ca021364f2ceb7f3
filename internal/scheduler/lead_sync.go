package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/repository"
	"github.com/vfg2006/leadssu-webmaster/internal/config"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
)

// LeadSyncConfig representa a configuração do agendador de leads
type LeadSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// LeadSyncService copia periodicamente os leads da janela de lookback para o banco
type LeadSyncService struct {
	scheduler      *gocron.Scheduler
	config         LeadSyncConfig
	leadRepo       repository.LeadRepository
	leadssuService leadssu.Integrator
	state          jobState
	lastSynced     int
	now            func() time.Time
}

func NewLeadSyncService(
	leadRepo repository.LeadRepository,
	leadssuService leadssu.Integrator,
	cfg *config.Config,
) *LeadSyncService {
	syncConfig := LeadSyncConfig{
		CronSchedule: cfg.LeadSync.CronSchedule,
		LookbackDays: cfg.LeadSync.LookbackDays,
		SyncEnabled:  cfg.LeadSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: lead sync configuration loaded")

	return &LeadSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		leadRepo:       leadRepo,
		leadssuService: leadssuService,
		now:            time.Now,
	}
}

func (s *LeadSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: lead sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting lead sync")

	return startCron(ctx, s.scheduler, s.config.CronSchedule, "lead-sync", func() {
		if err := s.SyncLeads(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: lead sync failed")
		}
	})
}

// SyncLeads busca os leads de hoje e dos LookbackDays anteriores e grava no banco.
// Se já houver uma sincronização em andamento, não faz nada.
func (s *LeadSyncService) SyncLeads(ctx context.Context) (err error) {
	runID, ok := s.state.begin()
	if !ok {
		logrus.Warn("scheduler: lead sync already running")
		return nil
	}
	defer func() { s.state.finish(err) }()

	end := s.now()
	start := end.AddDate(0, 0, -s.config.LookbackDays)

	logger := logrus.WithFields(logrus.Fields{
		"job":        "lead-sync",
		"run_id":     runID,
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	})
	logger.Info("scheduler: lead sync started")

	leads, err := s.leadssuService.GetLeadsByOfferID(ctx, domain.LeadFilters{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}

	saved, err := s.leadRepo.SaveOrUpdateLeads(ctx, leads)
	if err != nil {
		return err
	}

	s.state.mu.Lock()
	s.lastSynced = saved
	s.state.mu.Unlock()

	logger.WithField("leads", saved).Info("scheduler: lead sync completed")
	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de leads
func (s *LeadSyncService) TriggerManualSync() {
	if s.state.isRunning() {
		logrus.Info("scheduler: lead sync already running, ignoring manual trigger")
		return
	}

	logrus.Info("scheduler: manual lead sync triggered")
	go func() {
		if err := s.SyncLeads(context.Background()); err != nil {
			logrus.WithError(err).Error("scheduler: manual lead sync failed")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *LeadSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_lookback_days"] = s.config.LookbackDays

	s.state.mu.Lock()
	status["last_synced_leads"] = s.lastSynced
	s.state.mu.Unlock()

	return status
}
