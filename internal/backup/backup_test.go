package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStorage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "habitgrid.json")
	content := `{"habits":[{"id":"h1","name":"Reading","target_min":30,"created_at":"2024-01-01T12:00:00Z"}],"entries":[]}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write storage file: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeStorage(t, dir)

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(backupPath), BackupFilePrefix) {
		t.Errorf("Backup name missing prefix: %s", backupPath)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("Backup should keep the storage extension, got %s", backupPath)
	}

	original, _ := os.ReadFile(path)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("Backup content differs from the storage file")
	}
}

func TestCreateBackup_MissingStorage(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "habitgrid.json"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("Expected error when the storage file does not exist")
	}
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()
	path := writeStorage(t, dir)
	mgr := NewManager(path)

	// Empty before any backup exists
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("Expected no backups yet, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("Expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("Expected backup size to be recorded")
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeStorage(t, dir)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the storage file, then restore the earlier state.
	if err := os.WriteFile(path, []byte(`{"habits":[],"entries":[]}`), 0600); err != nil {
		t.Fatalf("Failed to modify storage: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored, _ := os.ReadFile(path)
	if !strings.Contains(string(restored), "Reading") {
		t.Error("Expected the restored file to hold the original habit")
	}
}

func TestRestoreBackup_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeStorage(t, dir)
	mgr := NewManager(path)

	bogus := filepath.Join(dir, "bogus.json")
	if err := os.WriteFile(bogus, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write bogus file: %v", err)
	}

	if err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("Expected restore to reject a corrupt backup")
	}
}
