package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moments/pkg/calendar"
)

// ViewOptions captures calendar window selection flags.
type ViewOptions struct {
	Granularity string
	On          string
}

// AddViewArgs wires the granularity and anchor date flags.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Granularity, "granularity", "g", string(calendar.DefaultGranularity),
		"Calendar view mode. One of 'day', 'week' or 'month'.")
	cmd.Flags().StringVar(&o.On, "on", "",
		"Anchor date as YYYY-MM-DD. Defaults to today.")
}

// Window parses the flags into a granularity and anchor date.
func (o *ViewOptions) Window() (calendar.Granularity, time.Time, error) {
	g, err := calendar.ParseGranularity(o.Granularity)
	if err != nil {
		return "", time.Time{}, err
	}
	if o.On == "" {
		return g, time.Now(), nil
	}
	anchor, err := time.ParseInLocation("2006-01-02", o.On, time.Local)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: anchor date %q", calendar.ErrInvalidArgument, o.On)
	}
	return g, anchor, nil
}
