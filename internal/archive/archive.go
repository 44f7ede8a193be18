// Package archive moves previous export files out of the way before a new
// export is written.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveFile moves an existing export file into an "archive" directory
// next to it, with a timestamp in the name. It returns the archive path, or
// "" when there was nothing to archive.
func ArchiveFile(path string) (string, error) {
	return archiveFileAt(path, time.Now())
}

func archiveFileAt(path string, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("not a file: %s", path)
	}

	// Archive directory sits next to the export
	archiveDir := filepath.Join(filepath.Dir(path), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, now.Format("20060102-150405"), ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, now.Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return archivePath, nil
}
