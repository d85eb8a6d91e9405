package configs

import (
	"log"
	"os"
	"os/user"
	"path/filepath"
)

type UserSettings struct {
	UserKeysPath    string
	UserConfigsPath string
	Username        string
}

var UserConfcryptSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username := "unknown"
	if current, err := user.Current(); err == nil && current.Username != "" {
		username = current.Username
	}

	// Independent of which file is being edited, so it is ok to init here.
	UserConfcryptSettings = &UserSettings{
		UserKeysPath:    filepath.Join(dataDir, "confcrypt", "keys"),
		UserConfigsPath: filepath.Join(configDir, "confcrypt"),
		Username:        username,
	}
}
