package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage recipient public keys",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <pubkey-hex>",
			Short: "Store a recipient public key under a name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := appCtx.Contacts.AddContact(domain.ContactName(args[0]), args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", c.Name, crypto.Fingerprint(c.PublicKey))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Remove a stored contact",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return appCtx.Contacts.RemoveContact(domain.ContactName(args[0]))
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List stored contacts",
			RunE: func(cmd *cobra.Command, args []string) error {
				contacts, err := appCtx.Contacts.ListContacts()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tFINGERPRINT\tADDED")
				for _, c := range contacts {
					added := time.Unix(c.AddedUTC, 0).UTC().Format(time.DateOnly)
					fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, crypto.Fingerprint(c.PublicKey), added)
				}
				return tw.Flush()
			},
		},
	)
	return cmd
}
