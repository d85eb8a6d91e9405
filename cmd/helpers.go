package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/pflag"

	"github.com/confcrypt/confcrypt/internal/configs"
	"github.com/confcrypt/confcrypt/internal/secrets"
	"github.com/confcrypt/confcrypt/internal/ui"
)

// passphraseEnv names the environment variable consulted for the private
// key passphrase. Passing secrets through argv would leak into shell history
// and process listings.
const passphraseEnv = "CONFCRYPT_PASSPHRASE"

// addKeyFlag registers the shared --key flag on a command's flag set.
func addKeyFlag(flags *pflag.FlagSet, key *string) {
	flags.StringVarP(key, "key", "k", "", "path to the RSA private key (defaults to the configured key path)")
}

// resolveKeyPath picks the key path from the flag, falling back to the
// user's configured default.
func resolveKeyPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	config, err := configs.LoadUserConfig()
	if err != nil {
		return "", err
	}
	if config.Defaults.KeyPath != "" {
		return config.Defaults.KeyPath, nil
	}
	return "", fmt.Errorf("no key given: pass --key or set key_path in %s", ui.Path.Sprint("config.toml"))
}

// loadKeyPair resolves and loads the key pair for a command, checking the
// key file's permissions along the way.
func loadKeyPair(flagValue string) (*secrets.KeyPair, error) {
	path, err := resolveKeyPath(flagValue)
	if err != nil {
		return nil, err
	}

	if fileInfo, err := os.Stat(path); err == nil {
		if fileInfo.Mode().Perm() != 0600 {
			Logger.WarnfAlways("Private key file has overly permissive permissions (%o), consider running 'chmod 600 %s'",
				fileInfo.Mode().Perm(), path)
		}
	}

	return secrets.LoadKeyPair(path, []byte(os.Getenv(passphraseEnv)))
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines: the cleanup
// function calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
