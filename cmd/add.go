package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/workflows"
)

var (
	addKeyPath string
	addName    string
	addValue   string
	addType    string
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Encrypts and adds a new parameter with its schema declaration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command for %s", args[0])
		spinner, cleanup := startSpinner("Encrypting new parameter...", verbose)
		defer cleanup()

		schemaType, err := conffile.ParseSchemaType(addType)
		if err != nil {
			return Logger.ErrorfAndReturn("invalid --type: %v", err)
		}

		key, err := loadKeyPair(addKeyPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load private key: %v", err)
		}

		Logger.Debugf("Adding parameter %s of type %s", addName, schemaType)
		if _, err := workflows.Add(cmd.Context(), workflows.AddOptions{
			FilePath: args[0],
			Key:      key,
			Name:     addName,
			Value:    addValue,
			Type:     schemaType,
		}); err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to add " + color.CyanString(addName) + "\n" +
				color.RedString("Error: ") + err.Error()
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Added " + color.CyanString(addName) +
			" to " + color.YellowString(args[0])
		return nil
	},
}

func init() {
	addKeyFlag(addCmd.Flags(), &addKeyPath)
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "parameter name")
	addCmd.Flags().StringVar(&addValue, "value", "", "plaintext value to encrypt")
	addCmd.Flags().StringVarP(&addType, "type", "t", "string", "schema type: string, int, or bool")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("value")
}
