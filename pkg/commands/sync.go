package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moments/pkg/commands/options"
	runnersync "tableflip.dev/moments/pkg/runner/sync"
	"tableflip.dev/moments/pkg/store"
)

func addSync(topLevel *cobra.Command) {
	to := &options.TokenOptions{}
	out := ""

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "snapshot open reminders locally",
		Long:  "Fetch open dated reminders and replace the local snapshot with them.",
		Example: `
moments sync
moments sync --out reminders.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadDeps()
			if err != nil {
				return err
			}
			snapshot, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := runnersync.Sync{
				Out:      out,
				Token:    to.Resolve(cfg.Token()),
				Client:   client,
				Snapshot: snapshot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTokenArg(cmd, to)
	base.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&out, "out", "", "Also write a JSON events file to this path.")

	topLevel.AddCommand(cmd)
}
