package tmplsync

import "github.com/bianoble/tmpl-sync/internal/engine"

// Type aliases re-export engine result and error types as the public API.
// Users import "github.com/bianoble/tmpl-sync/pkg/tmplsync" and use
// tmplsync.Result, tmplsync.TargetReport, etc.

type TargetReport = engine.TargetReport
type Result = engine.Result
type OverwriteRefusalError = engine.OverwriteRefusalError
type BackupExhaustionError = engine.BackupExhaustionError
type NoEnabledTargetsError = engine.NoEnabledTargetsError
type ChangesPendingError = engine.ChangesPendingError

// Per-target statuses.
const (
	StatusUpdated     = engine.StatusUpdated
	StatusWouldUpdate = engine.StatusWouldUpdate
	StatusOK          = engine.StatusOK
)
