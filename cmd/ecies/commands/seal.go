package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecies256k1/internal/app"
	"ecies256k1/internal/crypto"
)

// sealCmd encrypts a payload to a contact name or a hex public key.
func sealCmd(v *viper.Viper) *cobra.Command {
	var in, out, macData string
	cmd := &cobra.Command{
		Use:   "seal <recipient>",
		Short: "Encrypt stdin (or --in) to a recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := readInput(cmd.InOrStdin(), in)
			if err != nil {
				return err
			}
			sealed, err := appCtx.Messages.Seal(args[0], plaintext, []byte(macData))
			if err != nil {
				return err
			}
			if appCtx.Config.Armor {
				sealed = []byte(crypto.B64(sealed) + "\n")
			}
			return writeOutput(cmd.OutOrStdout(), out, sealed, 0o644)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "read plaintext from file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "write message to file (default stdout)")
	cmd.Flags().StringVar(&macData, "mac-data", "", "context authenticated with the message; the recipient must pass the same value")
	cmd.Flags().BoolP(app.KeyArmor, "a", false, "base64-armor the output")
	_ = v.BindPFlag(app.KeyArmor, cmd.Flags().Lookup(app.KeyArmor))
	return cmd
}
