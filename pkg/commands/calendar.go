package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moments/pkg/calendar"
	"tableflip.dev/moments/pkg/commands/options"
	"tableflip.dev/moments/pkg/printers"
	"tableflip.dev/moments/pkg/reminder"
)

func addCalendar(topLevel *cobra.Command) {
	to := &options.TokenOptions{}
	vo := &options.ViewOptions{}
	showID := false

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "print the reminders calendar",
		Example: `
moments calendar
moments calendar -g week --on 2024-06-05
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, anchor, err := vo.Window()
			if err != nil {
				return oo.HandleError(err)
			}

			cfg, client, err := loadDeps()
			if err != nil {
				return err
			}
			items, err := client.ListReminders(context.Background(), to.Resolve(cfg.Token()))
			if err != nil {
				return oo.HandleError(err)
			}

			open := make([]*reminder.Reminder, 0, len(items))
			for _, r := range items {
				if !r.Complete {
					open = append(open, r)
				}
			}

			v, err := calendar.BuildView(open, g, anchor, nil)
			if err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{ShowID: showID}
			pp.NewLine()
			if g == calendar.Month {
				pp.Calendar(anchor, open...)
			}
			pp.View(v)
			return nil
		},
	}

	options.AddTokenArg(cmd, to)
	options.AddViewArgs(cmd, vo)
	base.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&showID, "show-id", false, "Show reminder ids.")

	topLevel.AddCommand(cmd)
}
