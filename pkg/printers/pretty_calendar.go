package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moments/pkg/calendar"
	"tableflip.dev/moments/pkg/reminder"
)

// Calendar prints the month grid containing `on`, highlighting days with
// reminders due.
func (pp *PrettyPrint) Calendar(on time.Time, items ...*reminder.Reminder) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, items...)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonth(then time.Time, items ...*reminder.Reminder) {
	days := DaysIn(then)

	count := make([]int, days)

	for _, r := range items {
		if !r.Dated() {
			continue
		}
		due := r.DueAt.Local()
		if due.Month() == then.Month() && due.Year() == then.Year() {
			count[due.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// View prints every date in the visible range with its bucketed reminders,
// one section per day.
func (pp *PrettyPrint) View(v *calendar.View) {
	if v == nil {
		return
	}
	for _, d := range v.Dates() {
		pp.TitleWithCount(d.String(), len(v.Buckets[d]))
		pp.Reminders(v.Buckets[d]...)
	}
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
