package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/workflows"
)

var deleteName string

var deleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Removes a parameter and its schema declaration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command for %s", args[0])
		spinner, cleanup := startSpinner("Removing parameter...", verbose)
		defer cleanup()

		if _, err := workflows.Delete(cmd.Context(), workflows.DeleteOptions{
			FilePath: args[0],
			Name:     deleteName,
		}); err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to delete " + color.CyanString(deleteName) + "\n" +
				color.RedString("Error: ") + err.Error()
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Removed " + color.CyanString(deleteName) +
			" from " + color.YellowString(args[0])
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteName, "name", "n", "", "parameter name")
	_ = deleteCmd.MarkFlagRequired("name")
}
