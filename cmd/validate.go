package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/ui"
	"github.com/confcrypt/confcrypt/internal/workflows"
)

var validateKeyPath string

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir|glob>...",
	Short: "Checks schema coverage and type consistency of confcrypt files",
	Long: `Validate decrypts every parameter and reports parameters without schema
declarations, schemas without parameters, values that fail to decrypt, and
values inconsistent with their declared type. Files are never modified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting validate command")

		files, err := conffile.ResolveFiles(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve confcrypt files: %v", err)
		}
		Logger.Debugf("Validating %d files", len(files))

		key, err := loadKeyPair(validateKeyPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load private key: %v", err)
		}

		result, err := workflows.Validate(cmd.Context(), workflows.ValidateOptions{
			FilePaths: files,
			Key:       key,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("validation failed: %v", err)
		}

		if len(result.Findings) == 0 {
			fmt.Printf("%s %d file(s) valid\n", ui.Success.Sprint("✓"), result.FilesChecked)
			return nil
		}

		for _, f := range result.Findings {
			fmt.Printf("%s %s: %s: %s\n",
				ui.Error.Sprint("✗"), ui.Path.Sprint(f.File), ui.Highlight.Sprint(f.Parameter), f.Problem)
		}
		return fmt.Errorf("%d problem(s) found in %d file(s)", len(result.Findings), result.FilesChecked)
	},
}

func init() {
	addKeyFlag(validateCmd.Flags(), &validateKeyPath)
}
