// Package jobs contains the background tasks run by the asynq worker.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskSnapshotBackup copies the live snapshot to a dated backup key.
	TaskSnapshotBackup = "snapshot:backup"
)

// SnapshotBackupPayload selects which snapshot key to back up and how many
// daily backups to retain.
type SnapshotBackupPayload struct {
	SnapshotKey string `json:"snapshot_key"`
	KeepDays    int    `json:"keep_days"`
}

// NewSnapshotBackupTask constructs the backup task.
func NewSnapshotBackupTask(payload SnapshotBackupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSnapshotBackup, data), nil
}
