package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/workflows"
)

var encryptKeyPath string

var encryptCmd = &cobra.Command{
	Use:   "encrypt <file|dir|glob>...",
	Short: "Encrypts every plaintext parameter of the given confcrypt files",
	Long: `Encrypt bootstraps files that still hold plaintext values: every parameter
without ciphertext framing is encrypted with the public key and replaced in
place. Already-encrypted parameters and blank values are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting plaintext parameters...", verbose)
		defer cleanup()

		files, err := conffile.ResolveFiles(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve confcrypt files: %v", err)
		}
		Logger.Debugf("Encrypting %d files", len(files))

		if len(files) > 20 {
			Logger.WarnfAlways("Processing %d confcrypt files - this may take a moment", len(files))
		}

		key, err := loadKeyPair(encryptKeyPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load private key: %v", err)
		}

		result, err := workflows.EncryptWhole(cmd.Context(), workflows.EncryptWholeOptions{
			FilePaths: files,
			Key:       key,
		})
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to encrypt files\n" +
				color.RedString("Error: ") + err.Error()
			return nil
		}

		total := 0
		for _, n := range result.Encrypted {
			total += n
		}
		Logger.Infof("Encrypt command completed successfully. Encrypted %d parameters", total)

		spinner.FinalMSG = color.GreenString("✓") + " Encrypted " +
			color.CyanString("%d", total) + " parameter(s) across " +
			color.CyanString("%d", len(files)) + " file(s)\n" +
			color.CyanString("→") + " You can now safely commit the " + color.YellowString(".econf") + " files to version control"
		return nil
	},
}

func init() {
	addKeyFlag(encryptCmd.Flags(), &encryptKeyPath)
}
