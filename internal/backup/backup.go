// SPDX-License-Identifier: MIT

// Package backup snapshots the catalog database and exports the catalog as YAML.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	filePrefix      = "chromabags-"
	fileExt         = ".db"
	timestampLayout = "20060102-150405.000"
)

// ErrInvalidBackupName is returned for names that are not plain backup file names
var ErrInvalidBackupName = errors.New("invalid backup name")

// BackupMetadata describes one database snapshot
type BackupMetadata struct {
	Filename  string
	Path      string
	Timestamp time.Time
	Size      int64
}

// BackupManager handles all backup operations for a sqlite catalog
type BackupManager struct {
	BackupPath   string // ~/.chromabags/backups
	DatabasePath string // the live sqlite file
}

// NewBackupManager creates a new backup manager
func NewBackupManager(backupPath, databasePath string) *BackupManager {
	return &BackupManager{
		BackupPath:   backupPath,
		DatabasePath: databasePath,
	}
}

// SystemDir is where database snapshots are kept
func (m *BackupManager) SystemDir() string {
	return filepath.Join(m.BackupPath, "system")
}

// CreateBackup copies the database file into a new timestamped snapshot
func (m *BackupManager) CreateBackup() (*BackupMetadata, error) {
	if m.DatabasePath == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	if err := os.MkdirAll(m.SystemDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := time.Now()
	filename := filePrefix + now.Format(timestampLayout) + fileExt
	dest := filepath.Join(m.SystemDir(), filename)

	size, err := copyFile(m.DatabasePath, dest)
	if err != nil {
		return nil, fmt.Errorf("failed to back up database: %w", err)
	}

	return &BackupMetadata{
		Filename:  filename,
		Path:      dest,
		Timestamp: now,
		Size:      size,
	}, nil
}

// ListBackups returns all snapshots, newest first
func (m *BackupManager) ListBackups() ([]BackupMetadata, error) {
	entries, err := os.ReadDir(m.SystemDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var backups []BackupMetadata
	for _, entry := range entries {
		ts, ok := parseName(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupMetadata{
			Filename:  entry.Name(),
			Path:      filepath.Join(m.SystemDir(), entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// RestoreBackup replaces the database file with the named snapshot
func (m *BackupManager) RestoreBackup(filename string) error {
	src, err := m.backupFile(filename)
	if err != nil {
		return err
	}
	if m.DatabasePath == "" {
		return fmt.Errorf("no database path configured")
	}

	// copy next to the target first so the swap is a rename
	tmp := m.DatabasePath + ".restore"
	if _, err := copyFile(src, tmp); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	if err := os.Rename(tmp, m.DatabasePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

// DeleteBackup removes one snapshot
func (m *BackupManager) DeleteBackup(filename string) error {
	path, err := m.backupFile(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// Prune deletes all but the newest keep snapshots and returns the removed names
func (m *BackupManager) Prune(keep int) ([]string, error) {
	if keep < 1 {
		return nil, nil
	}
	backups, err := m.ListBackups()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, b := range backups[min(keep, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			return removed, fmt.Errorf("failed to prune %s: %w", b.Filename, err)
		}
		removed = append(removed, b.Filename)
	}
	return removed, nil
}

func (m *BackupManager) backupFile(filename string) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("%w: %s", ErrInvalidBackupName, filename)
	}
	if _, ok := parseName(filename); !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidBackupName, filename)
	}
	path := filepath.Join(m.SystemDir(), filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("backup %s not found: %w", filename, err)
	}
	return path, nil
}

func parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dest)
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, err
	}
	return n, nil
}
