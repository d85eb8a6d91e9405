package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type UserConfig struct {
	User     User     `toml:"user"`
	Defaults Defaults `toml:"defaults"`
}

type User struct {
	Name string `toml:"name"`
	UUID string `toml:"user_uuid"`
}

type Defaults struct {
	// KeyPath is the private key used when --key is not given.
	KeyPath string `toml:"key_path"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields an empty config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserConfcryptSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig writes the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserConfcryptSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig loads the user config, assigning identity fields on
// first use and persisting them.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	changed := false
	if config.User.UUID == "" {
		config.User.UUID = GenerateUserUUID()
		changed = true
	}
	if config.User.Name == "" {
		config.User.Name = UserConfcryptSettings.Username
		changed = true
	}

	if changed {
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// GenerateUserUUID returns a new random user identifier.
func GenerateUserUUID() string {
	return uuid.New().String()
}
