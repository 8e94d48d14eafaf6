package commands

import (
	"os"

	"github.com/spf13/cobra"

	"ecies256k1/internal/app"
)

var appCtx *app.Wire

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := app.NewViper()

	root := &cobra.Command{
		Use:          "ecies",
		Short:        "ECIES (secp256k1) encryption CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String(app.KeyHome, "", "state dir (default ~/.ecies256k1)")
	flags.StringP(app.KeyPassphrase, "p", "", "passphrase protecting the identity (or "+app.EnvPrefix+"_PASSPHRASE)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	_ = v.BindPFlag(app.KeyHome, flags.Lookup(app.KeyHome))
	_ = v.BindPFlag(app.KeyPassphrase, flags.Lookup(app.KeyPassphrase))
	_ = v.BindPFlag(app.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		initCmd(),
		pubkeyCmd(),
		fingerprintCmd(),
		contactCmd(),
		sealCmd(v),
		openCmd(),
	)
	root.SetErr(os.Stderr)
	return root
}
