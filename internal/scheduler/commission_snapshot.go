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
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

type CommissionSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CommissionSnapshotService grava diariamente o resumo de comissões do dia anterior
type CommissionSnapshotService struct {
	scheduler      *gocron.Scheduler
	config         CommissionSnapshotConfig
	snapshotRepo   repository.CommissionSnapshotRepository
	leadssuService leadssu.Integrator
	state          jobState
	now            func() time.Time
}

func NewCommissionSnapshotService(
	snapshotRepo repository.CommissionSnapshotRepository,
	leadssuService leadssu.Integrator,
	cfg *config.Config,
) *CommissionSnapshotService {
	snapshotConfig := CommissionSnapshotConfig{
		CronSchedule: cfg.CommissionSnapshot.CronSchedule,
		SyncEnabled:  cfg.CommissionSnapshot.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("scheduler: commission snapshot configuration loaded")

	return &CommissionSnapshotService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         snapshotConfig,
		snapshotRepo:   snapshotRepo,
		leadssuService: leadssuService,
		now:            time.Now,
	}
}

func (s *CommissionSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: commission snapshot disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting commission snapshot")

	return startCron(ctx, s.scheduler, s.config.CronSchedule, "commission-snapshot", func() {
		if err := s.TakeSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: commission snapshot failed")
		}
	})
}

// TakeSnapshot resume as comissões de ontem (todos os offers) e grava no banco
func (s *CommissionSnapshotService) TakeSnapshot(ctx context.Context) (err error) {
	runID, ok := s.state.begin()
	if !ok {
		logrus.Warn("scheduler: commission snapshot already running")
		return nil
	}
	defer func() { s.state.finish(err) }()

	yesterday := s.now().AddDate(0, 0, -1)
	date := utils.FormatDate(yesterday)

	logger := logrus.WithFields(logrus.Fields{
		"job":    "commission-snapshot",
		"run_id": runID,
		"date":   date,
	})
	logger.Info("scheduler: commission snapshot started")

	summary, err := s.leadssuService.GetWebmasterCommissions(ctx, domain.CommissionFilters{
		StartDate: yesterday,
		EndDate:   yesterday,
	})
	if err != nil {
		return err
	}

	err = s.snapshotRepo.Save(ctx, &domain.CommissionSnapshot{
		Date:    date,
		Summary: *summary,
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"commission_open":     summary.CommissionOpen,
		"commission_approved": summary.CommissionApproved,
	}).Info("scheduler: commission snapshot completed")
	return nil
}

func (s *CommissionSnapshotService) TriggerManualSync() {
	if s.state.isRunning() {
		logrus.Info("scheduler: commission snapshot already running, ignoring manual trigger")
		return
	}

	logrus.Info("scheduler: manual commission snapshot triggered")
	go func() {
		if err := s.TakeSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("scheduler: manual commission snapshot failed")
		}
	}()
}

func (s *CommissionSnapshotService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	return status
}
