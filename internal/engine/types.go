package engine

import "fmt"

// Per-target statuses, reported in target declaration order.
const (
	StatusUpdated     = "updated"
	StatusWouldUpdate = "would update"
	StatusOK          = "ok"
)

// TargetReport is the outcome for a single target.
type TargetReport struct {
	Agent  string
	Path   string // resolved absolute destination
	Status string
}

// Result holds the outcome of a sync run. Changed is true if any target
// changed or would change.
type Result struct {
	Reports []TargetReport
	Changed bool
}

// OverwriteRefusalError is returned when a destination exists with different
// content and overwriting is disabled. It aborts the remaining targets in
// every mode, including dry-run and check.
type OverwriteRefusalError struct {
	Path string
}

func (e *OverwriteRefusalError) Error() string {
	return fmt.Sprintf("refusing to overwrite %s: file exists with different content and overwrite is disabled", e.Path)
}

// BackupExhaustionError is returned when no free backup filename exists
// within the bounded slot search.
type BackupExhaustionError struct {
	Path  string
	Slots int
}

func (e *BackupExhaustionError) Error() string {
	return fmt.Sprintf("no free backup slot for %s: all %d candidate names exist", e.Path, e.Slots)
}

// NoEnabledTargetsError is returned when every target is disabled or the
// enabled set is empty. It signals a likely misconfiguration.
type NoEnabledTargetsError struct{}

func (e *NoEnabledTargetsError) Error() string {
	return "no enabled targets in configuration"
}

// ChangesPendingError is the failing outcome of check mode: every step
// succeeded, but at least one target would change.
type ChangesPendingError struct {
	Count int
}

func (e *ChangesPendingError) Error() string {
	return fmt.Sprintf("check failed: %d target(s) would change", e.Count)
}
