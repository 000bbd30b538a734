package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moments/pkg/commands/options"
	"tableflip.dev/moments/pkg/runner/ui"
	"tableflip.dev/moments/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	to := &options.TokenOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the dashboard",
		Example: `
moments ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadDeps()
			if err != nil {
				return err
			}
			snapshot, err := store.Load(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{
				Token:    to.Resolve(cfg.Token()),
				Client:   client,
				Snapshot: snapshot,
			}
			return i.Do(context.Background())
		},
	}

	options.AddTokenArg(cmd, to)

	topLevel.AddCommand(cmd)
}
