package cmd

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/confcrypt/confcrypt/internal/configs"
	"github.com/confcrypt/confcrypt/internal/workflows"
)

var (
	keygenName       string
	keygenSetDefault bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generates an RSA key pair for encrypting confcrypt files",
	Long: `Keygen creates a 2048-bit RSA key pair in your confcrypt data directory:
the private half in OpenSSH format, the public half as a PEM block. Pass
--default to record the private key as the default for future commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")
		spinner, cleanup := startSpinner("Generating RSA key pair...", verbose)
		defer cleanup()

		keysDir := configs.UserConfcryptSettings.UserKeysPath
		privatePath := filepath.Join(keysDir, keygenName)
		Logger.Debugf("Writing key pair to %s", privatePath)

		result, err := workflows.Keygen(cmd.Context(), workflows.KeygenOptions{
			PrivatePath: privatePath,
			SetDefault:  keygenSetDefault,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate key pair: %v", err)
		}

		finalMessage := color.GreenString("✓") + " Key pair created\n" +
			"  private: " + color.YellowString(result.PrivatePath) + "\n" +
			"  public:  " + color.YellowString(result.PublicPath)
		if keygenSetDefault {
			finalMessage += "\n" + color.CyanString("→") + " Saved as the default key for confcrypt commands"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenName, "name", "n", "confcrypt", "base name for the key files")
	keygenCmd.Flags().BoolVar(&keygenSetDefault, "default", false, "record the new private key as the default key")
}
