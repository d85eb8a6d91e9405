package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/workflows"
)

var (
	editKeyPath string
	editName    string
	editValue   string
	editType    string
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Re-encrypts a new value for an existing parameter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command for %s", args[0])
		spinner, cleanup := startSpinner("Re-encrypting parameter...", verbose)
		defer cleanup()

		opts := workflows.EditOptions{
			FilePath: args[0],
			Name:     editName,
			Value:    editValue,
		}

		if editType != "" {
			schemaType, err := conffile.ParseSchemaType(editType)
			if err != nil {
				return Logger.ErrorfAndReturn("invalid --type: %v", err)
			}
			opts.Type = schemaType
			opts.HasType = true
		}

		key, err := loadKeyPair(editKeyPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load private key: %v", err)
		}
		opts.Key = key

		if _, err := workflows.Edit(cmd.Context(), opts); err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to edit " + color.CyanString(editName) + "\n" +
				color.RedString("Error: ") + err.Error()
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Updated " + color.CyanString(editName) +
			" in " + color.YellowString(args[0])
		return nil
	},
}

func init() {
	addKeyFlag(editCmd.Flags(), &editKeyPath)
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "parameter name")
	editCmd.Flags().StringVar(&editValue, "value", "", "new plaintext value to encrypt")
	editCmd.Flags().StringVarP(&editType, "type", "t", "", "new schema type, if it changes")
	_ = editCmd.MarkFlagRequired("name")
	_ = editCmd.MarkFlagRequired("value")
}
