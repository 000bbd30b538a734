package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moments/pkg/commands/options"
	"tableflip.dev/moments/pkg/runner/get"
	"tableflip.dev/moments/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	to := &options.TokenOptions{}
	showID := false
	all := false
	cached := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "list reminders",
		Long:  "Get the authenticated user's reminders, split into to do and completed.",
		Example: `
moments get
moments get --all --show-id
moments get --cached
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadDeps()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID: showID,
				All:    all,
				Cached: cached,
				Token:  to.Resolve(cfg.Token()),
				Client: client,
			}
			if cached {
				s.Snapshot, err = store.Load(cfg)
				if err != nil {
					return err
				}
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTokenArg(cmd, to)
	base.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&showID, "show-id", false, "Show reminder ids.")
	cmd.Flags().BoolVar(&all, "all", false, "Include completed reminders.")
	cmd.Flags().BoolVar(&cached, "cached", false, "Read the local snapshot instead of calling Slack.")

	topLevel.AddCommand(cmd)
}
