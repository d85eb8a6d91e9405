package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/workflows"
)

var readKeyPath string

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Decrypts a confcrypt file and prints it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting read command for %s", args[0])

		key, err := loadKeyPair(readKeyPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load private key: %v", err)
		}

		result, err := workflows.Read(cmd.Context(), workflows.ReadOptions{
			FilePath: args[0],
			Key:      key,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read %s: %v", args[0], err)
		}

		for _, line := range result.Lines {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	addKeyFlag(readCmd.Flags(), &readKeyPath)
}
