package cmd

import (
	logger "github.com/confcrypt/confcrypt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// RootCmd is the confcrypt command group.
	RootCmd = &cobra.Command{
		Use:   "confcrypt",
		Short: "Manage configuration files with RSA-encrypted values",
		Long: `Confcrypt manages plain-text configuration files in which individual
parameter values are stored RSA-encrypted alongside schema declarations and
comments. Files stay line-stable across edits, so diffs and version control
remain meaningful.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing confcrypt command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(readCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(newCmd)
	RootCmd.AddCommand(keygenCmd)
}
