package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
)

const backupKeyFormat = "2006-01-02"

// SnapshotBackupJob copies the live product snapshot to a per-day backup
// key. The live snapshot is overwritten on every mutation; the daily copy
// gives the operator something to reach for after a bad bulk edit.
type SnapshotBackupJob struct {
	Redis  *redis.Client
	Logger *slog.Logger
	clock  func() time.Time
}

// NewSnapshotBackupJob wires dependencies for the backup handler.
func NewSnapshotBackupJob(client *redis.Client, logger *slog.Logger) *SnapshotBackupJob {
	return &SnapshotBackupJob{
		Redis:  client,
		Logger: logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes TaskSnapshotBackup tasks.
func (j *SnapshotBackupJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload SnapshotBackupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.SnapshotKey == "" {
		payload.SnapshotKey = catalog.DefaultSnapshotKey
	}
	if payload.KeepDays <= 0 {
		payload.KeepDays = 7
	}

	raw, err := j.Redis.Get(ctx, payload.SnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		j.Logger.Info("snapshot backup skipped, nothing persisted yet",
			slog.String("key", payload.SnapshotKey))
		return nil
	}
	if err != nil {
		return fmt.Errorf("jobs: read snapshot: %w", err)
	}

	now := j.clock()
	backupKey := BackupKey(payload.SnapshotKey, now)
	ttl := time.Duration(payload.KeepDays) * 24 * time.Hour
	if err := j.Redis.Set(ctx, backupKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("jobs: write backup: %w", err)
	}

	j.Logger.Info("snapshot backup written",
		slog.String("key", backupKey),
		slog.Int("bytes", len(raw)))
	return nil
}

// BackupKey derives the dated backup key for a snapshot key.
func BackupKey(snapshotKey string, day time.Time) string {
	return fmt.Sprintf("%s:backup:%s", snapshotKey, day.Format(backupKeyFormat))
}
