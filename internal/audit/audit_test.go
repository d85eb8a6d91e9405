package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/confcrypt/confcrypt/internal/configs"
)

func TestLogAppendsEntries(t *testing.T) {
	tempDir := t.TempDir()
	confPath := filepath.Join(tempDir, "app.econf")

	Log(confPath, Entry{Operation: "add", Parameters: []string{"TOKEN"}})
	Log(confPath, Entry{Operation: "delete", Parameters: []string{"TOKEN"}})

	f, err := os.Open(filepath.Join(tempDir, FileName))
	if err != nil {
		t.Fatalf("audit log missing: %v", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSONL line: %v", err)
		}
		entries = append(entries, entry)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != "add" || entries[1].Operation != "delete" {
		t.Errorf("unexpected operations: %q, %q", entries[0].Operation, entries[1].Operation)
	}
	for _, entry := range entries {
		if entry.Timestamp == "" {
			t.Error("timestamp should be populated")
		}
		if entry.ID == "" {
			t.Error("entry id should be populated")
		}
		if entry.File != "app.econf" {
			t.Errorf("expected file app.econf, got %q", entry.File)
		}
	}
}

func TestLogCarriesUserIdentity(t *testing.T) {
	oldConfigsPath := configs.UserConfcryptSettings.UserConfigsPath
	configs.UserConfcryptSettings.UserConfigsPath = t.TempDir()
	defer func() {
		configs.UserConfcryptSettings.UserConfigsPath = oldConfigsPath
	}()

	if err := configs.SaveUserConfig(&configs.UserConfig{
		User: configs.User{Name: "test-user", UUID: "uuid-123"},
	}); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	confDir := t.TempDir()
	confPath := filepath.Join(confDir, "app.econf")
	Log(confPath, Entry{Operation: "add", Parameters: []string{"TOKEN"}})

	f, err := os.Open(filepath.Join(confDir, FileName))
	if err != nil {
		t.Fatalf("audit log missing: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("audit log is empty")
	}
	var entry Entry
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSONL line: %v", err)
	}
	if entry.UserUUID != "uuid-123" {
		t.Errorf("expected configured user UUID, got %q", entry.UserUUID)
	}
}

func TestLogNeverFails(t *testing.T) {
	// Unwritable directory: Log must swallow the failure.
	Log(filepath.Join(string(os.PathSeparator), "nonexistent-root-dir", "app.econf"), Entry{Operation: "add"})
}
