package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/util/memzero"
)

// openCmd decrypts a message sealed to the local identity. Armored input is
// detected automatically: a binary message always starts with 0x04.
func openCmd() *cobra.Command {
	var in, out, macData string
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt a message from stdin (or --in)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readInput(cmd.InOrStdin(), in)
			if err != nil {
				return err
			}
			if len(msg) > 0 && msg[0] != 0x04 {
				if msg, err = crypto.DecodeArmor(bytes.TrimSpace(msg)); err != nil {
					return err
				}
			}
			pass, err := passphrase("Passphrase: ", false)
			if err != nil {
				return err
			}
			plaintext, err := appCtx.Messages.Open(pass, msg, []byte(macData))
			if err != nil {
				return err
			}
			defer memzero.Zero(plaintext)
			return writeOutput(cmd.OutOrStdout(), out, plaintext, 0o600)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "read message from file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "write plaintext to file (default stdout)")
	cmd.Flags().StringVar(&macData, "mac-data", "", "context the sender authenticated with the message")
	return cmd
}
