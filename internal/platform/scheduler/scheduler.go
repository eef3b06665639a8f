package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// scheduleCreator marks backup records produced by unattended runs.
const scheduleCreator = "scheduler"

// refreshInterval is how often the stored schedule is re-read, so admin
// changes take effect without a restart.
const refreshInterval = time.Minute

// BackupScheduler runs unattended backups on the cron schedule stored in the
// database.
type BackupScheduler struct {
	backupService portssvc.BackupSvcFacade
	logger        *slog.Logger

	mu       sync.Mutex
	cron     *cron.Cron
	entryID  cron.EntryID
	cronSpec string
	enabled  bool
	stop     chan struct{}
}

// NewBackupScheduler creates a scheduler; Start must be called to activate it.
func NewBackupScheduler(backupService portssvc.BackupSvcFacade, logger *slog.Logger) *BackupScheduler {
	return &BackupScheduler{
		backupService: backupService,
		logger:        logger,
		cron:          cron.New(),
		stop:          make(chan struct{}),
	}
}

// Start loads the stored schedule, starts the cron loop and begins watching
// for schedule changes.
func (s *BackupScheduler) Start(ctx context.Context) {
	s.refresh(ctx)
	s.cron.Start()

	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.refresh(context.Background())
			case <-s.stop:
				return
			}
		}
	}()

	s.logger.Info("Backup scheduler started")
}

// Stop halts the cron loop and the schedule watcher. Running jobs finish.
func (s *BackupScheduler) Stop() {
	close(s.stop)
	<-s.cron.Stop().Done()
	s.logger.Info("Backup scheduler stopped")
}

// refresh re-reads the stored schedule and swaps the cron entry when the
// spec or enabled flag changed.
func (s *BackupScheduler) refresh(ctx context.Context) {
	schedule, err := s.backupService.GetSchedule(ctx)
	if err != nil {
		s.logger.Error("Failed to load backup schedule", slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if schedule.CronSpec == s.cronSpec && schedule.Enabled == s.enabled {
		return
	}

	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
		s.entryID = 0
	}
	s.cronSpec = schedule.CronSpec
	s.enabled = schedule.Enabled

	if !schedule.Enabled {
		s.logger.Info("Unattended backups disabled")
		return
	}

	entryID, err := s.cron.AddFunc(schedule.CronSpec, s.runBackup)
	if err != nil {
		s.logger.Error("Failed to schedule backups",
			slog.String("cron_spec", schedule.CronSpec),
			slog.String("error", err.Error()))
		return
	}
	s.entryID = entryID
	s.logger.Info("Unattended backups scheduled", slog.String("cron_spec", schedule.CronSpec))
}

func (s *BackupScheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	backup, err := s.backupService.CreateBackup(ctx, scheduleCreator)
	if err != nil {
		s.logger.Error("Scheduled backup failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled backup completed",
		slog.String("backup_id", backup.BackupID),
		slog.String("file", backup.FileName))
}
