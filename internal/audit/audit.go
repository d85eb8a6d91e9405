package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/confcrypt/confcrypt/internal/configs"
)

// FileName is the audit log kept beside each managed confcrypt file.
const FileName = ".confcrypt-audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	ID        string `json:"id"`   // Entry UUID.
	User      string `json:"user"` // Username performing the action.
	UserUUID  string `json:"uuid"` // UUID of the user, if configured.
	Operation string `json:"op"`   // Operation name (add, edit, delete, encrypt).
	File      string `json:"file"` // Confcrypt file acted on.

	// Optional fields depending on operation.
	Parameters []string `json:"params,omitempty"` // Parameter names touched.
	Count      int      `json:"count,omitempty"`  // For bulk encrypt.
}

// Log appends an entry to the audit log next to the confcrypt file.
// If logging fails it is silently skipped; operations should not fail just
// because audit logging failed.
func Log(confPath string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.User == "" {
		entry.User = configs.UserConfcryptSettings.Username
	}
	if entry.UserUUID == "" {
		if config, err := configs.LoadUserConfig(); err == nil {
			entry.UserUUID = config.User.UUID
		}
	}
	if entry.File == "" {
		entry.File = filepath.Base(confPath)
	}

	logPath := filepath.Join(filepath.Dir(confPath), FileName)

	// #nosec G306 -- the audit log holds no secrets and should be readable by the team.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
