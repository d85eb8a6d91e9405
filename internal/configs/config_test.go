package configs

import (
	"testing"
)

func TestGenerateUserUUID(t *testing.T) {
	uuid := GenerateUserUUID()
	if uuid == "" {
		t.Fatal("GenerateUserUUID returned empty string")
	}

	if len(uuid) != 36 {
		t.Fatalf("Expected UUID length 36, got %d", len(uuid))
	}
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserConfcryptSettings.UserConfigsPath
	UserConfcryptSettings.UserConfigsPath = tempDir
	defer func() {
		UserConfcryptSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config := &UserConfig{
		User: User{
			Name: "test-user",
			UUID: "test-uuid-123",
		},
		Defaults: Defaults{
			KeyPath: "/home/test/.local/share/confcrypt/keys/confcrypt",
		},
	}

	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	loaded, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}

	if loaded.User.Name != config.User.Name {
		t.Errorf("Expected name %q, got %q", config.User.Name, loaded.User.Name)
	}
	if loaded.User.UUID != config.User.UUID {
		t.Errorf("Expected UUID %q, got %q", config.User.UUID, loaded.User.UUID)
	}
	if loaded.Defaults.KeyPath != config.Defaults.KeyPath {
		t.Errorf("Expected key path %q, got %q", config.Defaults.KeyPath, loaded.Defaults.KeyPath)
	}
}

func TestLoadUserConfigMissingFile(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserConfcryptSettings.UserConfigsPath
	UserConfcryptSettings.UserConfigsPath = tempDir
	defer func() {
		UserConfcryptSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig on missing file should not error: %v", err)
	}
	if config.User.UUID != "" || config.Defaults.KeyPath != "" {
		t.Error("missing config file should yield an empty config")
	}
}

func TestEnsureUserConfigAssignsIdentity(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserConfcryptSettings.UserConfigsPath
	UserConfcryptSettings.UserConfigsPath = tempDir
	defer func() {
		UserConfcryptSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if config.User.UUID == "" {
		t.Error("EnsureUserConfig should assign a UUID")
	}

	// A second call must keep the persisted identity.
	again, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("second EnsureUserConfig failed: %v", err)
	}
	if again.User.UUID != config.User.UUID {
		t.Errorf("UUID changed between calls: %q vs %q", config.User.UUID, again.User.UUID)
	}
}
