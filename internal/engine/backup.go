package engine

import (
	"fmt"
	"os"
)

// maxBackupSlots bounds the numeric suffix search.
const maxBackupSlots = 999

// backupFile copies dest to the first free backup name: <dest><suffix>,
// then <dest><suffix>.1 through <dest><suffix>.999. Existing backups are
// never overwritten.
func backupFile(dest, suffix string) error {
	data, err := os.ReadFile(dest)
	if err != nil {
		return fmt.Errorf("reading %s for backup: %w", dest, err)
	}

	base := dest + suffix
	for i := 0; i <= maxBackupSlots; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s.%d", base, i)
		}

		// O_EXCL claims the slot only if the name is still free.
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("creating backup %s: %w", candidate, err)
		}

		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing backup %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing backup %s: %w", candidate, err)
		}
		return nil
	}

	return &BackupExhaustionError{Path: dest, Slots: maxBackupSlots + 1}
}
