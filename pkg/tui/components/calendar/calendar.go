// Package calendar renders a bucketed reminder view as a month grid or a
// per-day agenda.
package calendar

import (
	"fmt"
	"strings"
	"time"

	view "tableflip.dev/moments/pkg/calendar"
	"tableflip.dev/moments/pkg/reminder"
	"tableflip.dev/moments/pkg/tui/theme"
)

const weekdayHeader = "Mo Tu We Th Fr Sa Su"

// Render draws the view for its granularity. Month mode produces the grid;
// week and day modes produce an agenda listing each visible date.
func Render(v *view.View, th theme.CalendarTheme, now time.Time) string {
	if v == nil {
		return th.Empty.Render("no calendar data")
	}
	switch v.Granularity {
	case view.Month:
		return renderMonth(v, th, now)
	default:
		return renderAgenda(v, th, now)
	}
}

// Title renders the window label shown above the grid.
func Title(v *view.View) string {
	if v == nil {
		return ""
	}
	anchor := v.Anchor.Time(time.Local)
	switch v.Granularity {
	case view.Month:
		return anchor.Format("January 2006")
	case view.Week:
		return fmt.Sprintf("%s – %s", v.Start, v.End)
	default:
		return anchor.Format("Monday, January 2, 2006")
	}
}

func renderMonth(v *view.View, th theme.CalendarTheme, now time.Time) string {
	lines := []string{th.Header.Render(weekdayHeader)}

	today := view.DateOf(now)
	dates := v.Dates()
	for row := 0; row*7 < len(dates); row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(dates) {
				break
			}
			cells = append(cells, renderDay(v, dates[idx], th, today))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(v *view.View, d view.Date, th theme.CalendarTheme, today view.Date) string {
	text := fmt.Sprintf("%2d", d.Day)

	style := th.Day
	if d.Month != v.Anchor.Month {
		style = th.Outside
	}
	if len(v.Buckets[d]) > 0 {
		style = th.HasItems
	}
	if d == today {
		style = style.Inherit(th.Today)
	}
	return style.Render(text)
}

func renderAgenda(v *view.View, th theme.CalendarTheme, now time.Time) string {
	today := view.DateOf(now)

	var lines []string
	for _, d := range v.Dates() {
		header := d.Time(time.Local).Format("Mon Jan 2")
		style := th.Header
		if d == today {
			style = style.Inherit(th.Today)
		}
		lines = append(lines, style.Render(header))

		bucket := v.Buckets[d]
		if len(bucket) == 0 {
			lines = append(lines, th.Empty.Render("  none"))
			continue
		}
		for _, r := range bucket {
			lines = append(lines, renderItem(r, th))
		}
	}
	return strings.Join(lines, "\n")
}

func renderItem(r *reminder.Reminder, th theme.CalendarTheme) string {
	when := th.Time.Render(r.DueAt.Local().Format("15:04"))
	return fmt.Sprintf("  %s %s %s", when, r.Mark(), th.Text.Render(r.Text))
}
