package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "habitgrid-"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a storage file. It works on whole
// files, so it covers both the JSON and the SQLite provider.
type Manager struct {
	storePath string
	backupDir string
}

// NewManager creates a new backup manager
func NewManager(storePath string) *Manager {
	configDir := filepath.Dir(storePath)
	backupDir := filepath.Join(configDir, BackupDirName)
	return &Manager{
		storePath: storePath,
		backupDir: backupDir,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// suffix mirrors the storage file's extension so a backup restores to the
// same provider it came from.
func (m *Manager) suffix() string {
	ext := filepath.Ext(m.storePath)
	if ext == "" {
		ext = ".db"
	}
	return ext
}

// CreateBackup creates a new backup of the storage file
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup creates a new backup of the storage file.
// skipRotation is used to prevent recursive backup creation during restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage file does not exist: %s", m.storePath)
	}

	// Generate backup filename with timestamp, falling back to second
	// precision and then a counter on collision.
	timestamp := time.Now().Format("20060102-1504")
	backupName := fmt.Sprintf("%s%s%s", BackupFilePrefix, timestamp, m.suffix())
	backupPath := filepath.Join(m.backupDir, backupName)

	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupName = fmt.Sprintf("%s%s%s", BackupFilePrefix, timestamp, m.suffix())
		backupPath = filepath.Join(m.backupDir, backupName)

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupName = fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, m.suffix())
			backupPath = filepath.Join(m.backupDir, backupName)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := m.copyStorage(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up storage: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// Rotation failure should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// copyStorage writes a clean copy of the storage file to destPath. SQLite
// files go through VACUUM INTO when possible so a half-written page never
// lands in a backup; anything else is a plain file copy.
func (m *Manager) copyStorage(destPath string) error {
	if m.suffix() == ".json" {
		return copyFile(m.storePath, destPath)
	}

	srcDB, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return copyFile(m.storePath, destPath)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		// VACUUM INTO needs SQLite >= 3.27; fall back to a file copy.
		srcDB.Close()
		return copyFile(m.storePath, destPath)
	}

	return nil
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix())

		// Strip a collision counter if present: it is the all-digit part
		// after the last hyphen that is neither HHMM nor HHMMSS.
		parts := strings.Split(timestampStr, "-")
		if len(parts) > 2 {
			lastPart := parts[len(parts)-1]
			if len(lastPart) != 4 && len(lastPart) != 6 {
				isCounter := true
				for _, c := range lastPart {
					if c < '0' || c > '9' {
						isCounter = false
						break
					}
				}
				if isCounter {
					timestampStr = strings.Join(parts[:len(parts)-1], "-")
				}
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				// Skip files with invalid timestamp format
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup restores the storage file from a backup
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	// Back up the current storage before replacing it. skipRotation avoids
	// recursing through createBackup's rotation.
	if _, err := os.Stat(m.storePath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
		fmt.Printf("Created backup of current storage: %s\n", filepath.Base(currentBackup))
	}

	// Copy to a temporary file and rename so the swap is atomic.
	tempPath := m.storePath + ".restore.tmp"

	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore storage: %w", err)
	}

	return nil
}

// verifyBackup checks that a backup file parses as its format.
func (m *Manager) verifyBackup(path string) error {
	if m.suffix() == ".json" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return fmt.Errorf("not valid JSON")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
