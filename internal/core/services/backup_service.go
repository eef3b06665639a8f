package services

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/platform/config"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// backupTables is the fixed set of tables included in every snapshot.
var backupTables = []string{
	"users",
	"bank_accounts",
	"balance_entries",
	"fixed_entries",
	"installments",
	"installment_payments",
	"categories",
}

// defaultBackupCronSpec runs nightly at 03:00 until an admin sets a schedule.
const defaultBackupCronSpec = "0 3 * * *"

// FailureNotifier delivers an out-of-band alert when a backup fails
// verification. A nil notifier disables alerting.
type FailureNotifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// backupServiceImpl implements the BackupSvcFacade interface
type backupServiceImpl struct {
	BaseService
	cfg        *config.Config
	backupRepo portsrepo.BackupRepository
	notifier   FailureNotifier
}

// NewBackupService creates a new backup service. notifier may be nil.
func NewBackupService(cfg *config.Config, backupRepo portsrepo.BackupRepository, notifier FailureNotifier) portssvc.BackupSvcFacade {
	return &backupServiceImpl{cfg: cfg, backupRepo: backupRepo, notifier: notifier}
}

// Ensure backupServiceImpl implements the BackupSvcFacade interface
var _ portssvc.BackupSvcFacade = (*backupServiceImpl)(nil)

// CreateBackup exports all tables concurrently, writes them into a gzipped
// tar archive and records the archive with its sha256 checksum.
func (s *backupServiceImpl) CreateBackup(ctx context.Context, createdBy string) (*domain.Backup, error) {
	if err := os.MkdirAll(s.cfg.BackupDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	dumps := make([]json.RawMessage, len(backupTables))
	g, gctx := errgroup.WithContext(ctx)
	for i, table := range backupTables {
		g.Go(func() error {
			data, err := s.backupRepo.ExportTable(gctx, table)
			if err != nil {
				return fmt.Errorf("failed to export table %s: %w", table, err)
			}
			dumps[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Backup export failed")
		return nil, err
	}

	now := time.Now()
	backupID := uuid.NewString()
	fileName := fmt.Sprintf("backup_%s_%s.tar.gz", now.Format("20060102_150405"), backupID[:8])
	path := filepath.Join(s.cfg.BackupDir, fileName)

	checksum, size, err := writeBackupArchive(path, backupTables, dumps)
	if err != nil {
		s.LogError(ctx, err, "Failed to write backup archive", slog.String("file", fileName))
		return nil, err
	}

	backup := domain.Backup{
		BackupID:  backupID,
		FileName:  fileName,
		SizeBytes: size,
		Checksum:  checksum,
		Tables:    backupTables,
		Status:    domain.BackupCompleted,
		CreatedAt: now,
		CreatedBy: createdBy,
	}
	if err := s.backupRepo.SaveBackup(ctx, backup); err != nil {
		s.LogError(ctx, err, "Failed to save backup record", slog.String("backup_id", backupID))
		// The archive without a record is an orphan; remove it.
		_ = os.Remove(path)
		return nil, err
	}

	s.LogInfo(ctx, "Backup created",
		slog.String("backup_id", backupID),
		slog.String("file", fileName),
		slog.Int64("size_bytes", size))
	return &backup, nil
}

// writeBackupArchive streams the table dumps into path as a gzipped tar,
// hashing the compressed bytes as they are written.
func writeBackupArchive(path string, tables []string, dumps []json.RawMessage) (string, int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create archive: %w", err)
	}
	defer file.Close()

	hasher := sha256.New()
	gzw := gzip.NewWriter(io.MultiWriter(file, hasher))
	tw := tar.NewWriter(gzw)

	modTime := time.Now()
	for i, table := range tables {
		hdr := &tar.Header{
			Name:    table + ".json",
			Mode:    0o640,
			Size:    int64(len(dumps[i])),
			ModTime: modTime,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return "", 0, fmt.Errorf("failed to write archive header for %s: %w", table, err)
		}
		if _, err := tw.Write(dumps[i]); err != nil {
			return "", 0, fmt.Errorf("failed to write archive entry for %s: %w", table, err)
		}
	}

	if err := tw.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := file.Sync(); err != nil {
		return "", 0, fmt.Errorf("failed to sync archive: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat archive: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), info.Size(), nil
}

func (s *backupServiceImpl) ListBackups(ctx context.Context) ([]domain.Backup, error) {
	backups, err := s.backupRepo.ListBackups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list backups")
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	if backups == nil {
		return []domain.Backup{}, nil
	}
	return backups, nil
}

func (s *backupServiceImpl) GetBackupByID(ctx context.Context, backupID string) (*domain.Backup, error) {
	backup, err := s.backupRepo.FindBackupByID(ctx, backupID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find backup", slog.String("backup_id", backupID))
		}
		return nil, err
	}
	return backup, nil
}

func (s *backupServiceImpl) DeleteBackup(ctx context.Context, backupID string, userID string) error {
	backup, err := s.backupRepo.FindBackupByID(ctx, backupID)
	if err != nil {
		return err
	}
	if err := s.backupRepo.DeleteBackup(ctx, backupID); err != nil {
		s.LogError(ctx, err, "Failed to delete backup record", slog.String("backup_id", backupID))
		return err
	}
	if err := os.Remove(filepath.Join(s.cfg.BackupDir, backup.FileName)); err != nil && !os.IsNotExist(err) {
		s.LogWarn(ctx, "Failed to remove backup archive", slog.String("file", backup.FileName), slog.String("error", err.Error()))
	}
	s.LogInfo(ctx, "Backup deleted", slog.String("backup_id", backupID))
	return nil
}

// VerifyBackup recomputes the archive checksum and compares it with the
// recorded one. A missing file or a mismatch marks the backup corrupt and
// triggers a notification when a notifier is configured.
func (s *backupServiceImpl) VerifyBackup(ctx context.Context, backupID string) (bool, *domain.Backup, error) {
	backup, err := s.backupRepo.FindBackupByID(ctx, backupID)
	if err != nil {
		return false, nil, err
	}

	checksum, err := hashFile(filepath.Join(s.cfg.BackupDir, backup.FileName))
	valid := err == nil && checksum == backup.Checksum

	if valid {
		s.LogInfo(ctx, "Backup verified", slog.String("backup_id", backupID))
		return true, backup, nil
	}

	reason := "checksum mismatch"
	if err != nil {
		reason = err.Error()
	}
	s.LogWarn(ctx, "Backup failed verification", slog.String("backup_id", backupID), slog.String("reason", reason))

	if backup.Status != domain.BackupCorrupt {
		if uerr := s.backupRepo.UpdateBackupStatus(ctx, backupID, domain.BackupCorrupt); uerr != nil {
			s.LogError(ctx, uerr, "Failed to mark backup corrupt", slog.String("backup_id", backupID))
			return false, backup, uerr
		}
		backup.Status = domain.BackupCorrupt
	}

	if s.notifier != nil {
		subject := "Backup verification failed"
		body := fmt.Sprintf("Backup %s (%s) failed verification: %s", backup.BackupID, backup.FileName, reason)
		if nerr := s.notifier.Notify(ctx, subject, body); nerr != nil {
			s.LogError(ctx, nerr, "Failed to send backup alert", slog.String("backup_id", backupID))
		}
	}

	return false, backup, nil
}

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash archive: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// GetSchedule returns the stored schedule, or the disabled default when none
// has been saved yet.
func (s *backupServiceImpl) GetSchedule(ctx context.Context) (*domain.BackupSchedule, error) {
	schedule, err := s.backupRepo.GetSchedule(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.BackupSchedule{CronSpec: defaultBackupCronSpec, Enabled: false}, nil
		}
		s.LogError(ctx, err, "Failed to load backup schedule")
		return nil, err
	}
	return schedule, nil
}

func (s *backupServiceImpl) UpdateSchedule(ctx context.Context, req dto.UpdateBackupScheduleRequest, userID string) (*domain.BackupSchedule, error) {
	if _, err := cron.ParseStandard(req.CronSpec); err != nil {
		return nil, fmt.Errorf("%w: cronSpec is not a valid cron expression", apperrors.ErrValidation)
	}

	schedule := domain.BackupSchedule{
		CronSpec:  req.CronSpec,
		Enabled:   req.Enabled,
		UpdatedAt: time.Now(),
		UpdatedBy: userID,
	}
	if err := s.backupRepo.SaveSchedule(ctx, schedule); err != nil {
		s.LogError(ctx, err, "Failed to save backup schedule")
		return nil, err
	}

	s.LogInfo(ctx, "Backup schedule updated",
		slog.String("cron_spec", schedule.CronSpec),
		slog.Bool("enabled", schedule.Enabled))
	return &schedule, nil
}
