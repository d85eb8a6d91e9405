package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

// newFileTemplate is the scaffold written by `confcrypt new`. The example
// value is plaintext so `confcrypt encrypt` has something to pick up.
const newFileTemplate = `# confcrypt schema and configuration file
# Comments begin with '#', schema lines are 'name : type', and parameters
# are 'name = value'. Run 'confcrypt encrypt' to encrypt plaintext values.
EXAMPLE_PARAM : string
EXAMPLE_PARAM = change-me
`

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Creates a fresh confcrypt file with an example entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting new command for %s", args[0])
		spinner, cleanup := startSpinner("Creating confcrypt file...", verbose)
		defer cleanup()

		path := args[0]
		if _, err := os.Stat(path); err == nil {
			Logger.Debugf("Refusing to overwrite existing file: %v", cerrors.ErrFileExists)
			spinner.FinalMSG = color.RedString("✗") + " " + color.YellowString(path) + " already exists\n" +
				color.CyanString("→") + " Use " + color.YellowString("confcrypt add") + " to extend it"
			return nil
		}

		if err := os.WriteFile(path, []byte(newFileTemplate), 0644); err != nil { // #nosec G306
			return Logger.ErrorfAndReturn("failed to create %s: %v", path, err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Created " + color.YellowString(path) + "\n" +
			color.CyanString("→") + " Add parameters with " + color.YellowString("confcrypt add") +
			", then run " + color.YellowString("confcrypt encrypt")
		return nil
	},
}
