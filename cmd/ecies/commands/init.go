package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a secp256k1 identity and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := appCtx.Identity.PublicKey(); err == nil && !force {
				return fmt.Errorf("identity already exists in %s (use --force to replace it)", appCtx.Config.Home)
			}
			pass, err := passphrase("New passphrase: ", true)
			if err != nil {
				return err
			}
			id, fp, err := appCtx.Identity.GenerateIdentity(pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Identity created.\nPublic key: %s\nFingerprint: %s\n", id.Public, fp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing identity")
	return cmd
}
