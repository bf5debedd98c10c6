package jobs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBackupFixture(t *testing.T) (*SnapshotBackupJob, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	job := NewSnapshotBackupJob(client, testLogger())
	job.clock = func() time.Time {
		return time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)
	}
	return job, mr
}

func backupTask(t *testing.T, payload SnapshotBackupPayload) *asynq.Task {
	t.Helper()
	task, err := NewSnapshotBackupTask(payload)
	require.NoError(t, err)
	return task
}

func TestSnapshotBackupCopiesLiveSnapshot(t *testing.T) {
	job, mr := newBackupFixture(t)
	require.NoError(t, mr.Set(catalog.DefaultSnapshotKey, `[{"id":"p1"}]`))

	task := backupTask(t, SnapshotBackupPayload{SnapshotKey: catalog.DefaultSnapshotKey, KeepDays: 3})
	require.NoError(t, job.Handle(context.Background(), task))

	backupKey := BackupKey(catalog.DefaultSnapshotKey, job.clock())
	require.Equal(t, catalog.DefaultSnapshotKey+":backup:2025-06-15", backupKey)
	got, err := mr.Get(backupKey)
	require.NoError(t, err)
	require.Equal(t, `[{"id":"p1"}]`, got)
	require.InDelta(t, (3 * 24 * time.Hour).Seconds(), mr.TTL(backupKey).Seconds(), 1)
}

func TestSnapshotBackupSkipsWhenNothingPersisted(t *testing.T) {
	job, mr := newBackupFixture(t)

	task := backupTask(t, SnapshotBackupPayload{})
	require.NoError(t, job.Handle(context.Background(), task))
	require.False(t, mr.Exists(BackupKey(catalog.DefaultSnapshotKey, job.clock())))
}

func TestSnapshotBackupRejectsMalformedPayload(t *testing.T) {
	job, _ := newBackupFixture(t)

	err := job.Handle(context.Background(), asynq.NewTask(TaskSnapshotBackup, []byte("{broken")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestSnapshotBackupPayloadRoundTrip(t *testing.T) {
	task := backupTask(t, SnapshotBackupPayload{SnapshotKey: "custom_key", KeepDays: 14})
	var decoded SnapshotBackupPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	require.Equal(t, "custom_key", decoded.SnapshotKey)
	require.Equal(t, 14, decoded.KeepDays)
}
