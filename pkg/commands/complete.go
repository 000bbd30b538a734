package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moments/pkg/commands/options"
	"tableflip.dev/moments/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	to := &options.TokenOptions{}

	cmd := &cobra.Command{
		Use:   "complete <id>...",
		Short: "mark reminders complete",
		Long:  "Mark one or more reminders complete. Needs the reminders:write scope.",
		Example: `
moments complete Rm024BE7CQ63
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadDeps()
			if err != nil {
				return err
			}
			s := complete.Complete{
				IDs:    args,
				Token:  to.Resolve(cfg.Token()),
				Client: client,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTokenArg(cmd, to)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
