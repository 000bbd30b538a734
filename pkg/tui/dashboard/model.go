// Package dashboard implements the MoMents terminal dashboard: Summarise and
// Notifications placeholders plus the reminders calendar.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	view "tableflip.dev/moments/pkg/calendar"
	"tableflip.dev/moments/pkg/reminder"
	"tableflip.dev/moments/pkg/slack"
	"tableflip.dev/moments/pkg/store"
	calgrid "tableflip.dev/moments/pkg/tui/components/calendar"
	"tableflip.dev/moments/pkg/tui/components/panel"
	"tableflip.dev/moments/pkg/tui/theme"
)

type panelID int

const (
	panelSummarise panelID = iota
	panelNotifications
	panelCalendar
)

// Model contains the dashboard state. Each refresh performs one fetch and
// recomputes the calendar view from the fresh snapshot; nothing is cached
// between renders.
type Model struct {
	client   *slack.Client
	snapshot store.Snapshot
	ctx      context.Context

	token         string
	enteringToken bool
	tokenInput    textinput.Model

	granularity view.Granularity
	anchor      time.Time
	loc         *time.Location
	reminders   []*reminder.Reminder
	view        *view.View

	focus    panelID
	status   string
	fetchErr string

	termWidth int

	theme         theme.Theme
	summarise     panel.Model
	notifications panel.Model
	calPanel      panel.Model

	events <-chan store.Event

	now func() time.Time
}

// New creates the dashboard. An empty token puts the model into token entry
// mode, mirroring the token field of the original page.
func New(client *slack.Client, snapshot store.Snapshot, token string, loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}

	th := theme.Default()

	ti := textinput.New()
	ti.Placeholder = "xoxp-..."
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 256
	ti.Prompt = "Slack user token: "
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		client:        client,
		snapshot:      snapshot,
		ctx:           context.Background(),
		token:         token,
		tokenInput:    ti,
		granularity:   view.DefaultGranularity,
		loc:           loc,
		focus:         panelCalendar,
		status:        "m/w/d view · h/l navigate · t today · r refresh · tab focus · q quit",
		theme:         th,
		summarise:     panel.New(th.Panel),
		notifications: panel.New(th.Panel),
		calPanel:      panel.New(th.Panel),
		now:           time.Now,
	}
	m.anchor = m.now().In(loc)
	m.enteringToken = token == ""
	m.rebuild()
	return m
}

// messages
type errMsg struct{ err error }
type remindersLoadedMsg struct{ items []*reminder.Reminder }
type watchStartedMsg struct{ ch <-chan store.Event }
type snapshotChangedMsg struct{}
type watchClosedMsg struct{}

// Init triggers the first fetch, or focuses the token prompt when no
// credential resolved.
func (m Model) Init() tea.Cmd {
	if m.enteringToken {
		return tea.Batch(m.tokenInput.Focus(), textinput.Blink)
	}
	return tea.Batch(m.fetch(), m.startWatch())
}

// fetch performs the one synchronous network call of a render cycle.
func (m *Model) fetch() tea.Cmd {
	client := m.client
	token := m.token
	ctx := m.ctx
	return func() tea.Msg {
		items, err := client.ListReminders(ctx, token)
		if err != nil {
			return errMsg{err}
		}
		return remindersLoadedMsg{items}
	}
}

// startWatch subscribes to snapshot changes so a concurrent `moments sync`
// refreshes the grid.
func (m *Model) startWatch() tea.Cmd {
	snapshot := m.snapshot
	ctx := m.ctx
	if snapshot == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := snapshot.Watch(ctx)
		if err != nil {
			return watchClosedMsg{}
		}
		return watchStartedMsg{ch}
	}
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return snapshotChangedMsg{}
	}
}

// rebuild recomputes the calendar view from current reminders. Invalid
// control state is clamped back to defaults rather than surfaced; the keymap
// should make it unreachable.
func (m *Model) rebuild() {
	g := m.granularity
	if _, err := view.ParseGranularity(string(g)); err != nil {
		g = view.DefaultGranularity
		m.granularity = g
	}
	anchor := m.anchor
	if anchor.IsZero() {
		anchor = m.now().In(m.loc)
		m.anchor = anchor
	}

	open := make([]*reminder.Reminder, 0, len(m.reminders))
	for _, r := range m.reminders {
		if r.Complete {
			continue
		}
		open = append(open, r)
	}

	v, err := view.BuildView(open, g, anchor, m.loc)
	if err != nil {
		// Unreachable after clamping; keep the previous view on a bug.
		return
	}
	m.view = v
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
	case errMsg:
		m.fetchErr = msg.err.Error()
		m.reminders = nil
		m.rebuild()
	case remindersLoadedMsg:
		m.fetchErr = ""
		m.reminders = msg.items
		m.status = fmt.Sprintf("loaded %d reminder(s)", len(msg.items))
		m.rebuild()
	case watchStartedMsg:
		m.events = msg.ch
		cmds = append(cmds, waitForChange(m.events))
	case snapshotChangedMsg:
		// A sync rewrote the snapshot; refresh from the service.
		cmds = append(cmds, m.fetch(), waitForChange(m.events))
	case watchClosedMsg:
		m.events = nil
	case tea.KeyPressMsg:
		if m.enteringToken {
			return m.updateTokenEntry(msg)
		}
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateTokenEntry(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		token := strings.TrimSpace(m.tokenInput.Value())
		if token == "" {
			m.status = "set SLACK_USER_TOKEN or paste a token to load reminders"
			return m, nil
		}
		m.token = token
		m.enteringToken = false
		m.tokenInput.Blur()
		m.status = "fetching reminders"
		return m, tea.Batch(m.fetch(), m.startWatch())
	case "esc", "ctrl+c":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)

	// panel focus
	case "tab":
		m.focus = (m.focus + 1) % 3
	case "1":
		m.focus = panelSummarise
	case "2":
		m.focus = panelNotifications
	case "3":
		m.focus = panelCalendar

	// granularity
	case "m":
		m.setGranularity(view.Month)
	case "w":
		m.setGranularity(view.Week)
	case "d":
		m.setGranularity(view.Day)

	// anchor navigation
	case "h", "left":
		m.step(-1)
	case "l", "right":
		m.step(1)
	case "t":
		m.anchor = m.now().In(m.loc)
		m.rebuild()

	case "r":
		m.status = "refreshing"
		cmds = append(cmds, m.fetch())
	}

	return cmds
}

func (m *Model) setGranularity(g view.Granularity) {
	m.granularity = g
	m.rebuild()
}

// step moves the anchor one window forward or backward.
func (m *Model) step(dir int) {
	switch m.granularity {
	case view.Day:
		m.anchor = m.anchor.AddDate(0, 0, dir)
	case view.Week:
		m.anchor = m.anchor.AddDate(0, 0, 7*dir)
	default:
		// Normalize to the first of the month so stepping never skips a
		// short month.
		first := time.Date(m.anchor.Year(), m.anchor.Month(), 1, 0, 0, 0, 0, m.loc)
		m.anchor = first.AddDate(0, dir, 0)
	}
	m.rebuild()
}

// View renders the three panels and the status footer.
func (m Model) View() string {
	if m.enteringToken {
		prompt := m.theme.Panel.Title.Render("MoMents") + "\n\n" +
			"Reminders are fetched via reminders.list and need a user token\n" +
			"with the reminders:read scope.\n\n" +
			m.tokenInput.View() + "\n\n" +
			m.theme.Footer.Help.Render("enter to continue · esc to quit")
		return m.theme.Panel.Frame.Render(prompt)
	}

	sum := m.summarise
	sum.SetFocus(m.focus == panelSummarise)
	sum.SetContent("📝 Summarise", []string{m.theme.Panel.Placeholder.Render("Summarisation will be added later.")})

	not := m.notifications
	not.SetFocus(m.focus == panelNotifications)
	not.SetContent("🔔 Notifications", []string{m.theme.Panel.Placeholder.Render("Notification logic will be added later.")})

	cal := m.calPanel
	cal.SetFocus(m.focus == panelCalendar)
	cal.SetContent("📅 "+calgrid.Title(m.view), []string{
		calgrid.Render(m.view, m.theme.Calendar, m.now().In(m.loc)),
	})

	if m.termWidth > 0 {
		half := (m.termWidth - 1) / 2
		sum.SetSize(half, 0)
		not.SetSize(m.termWidth-1-half, 0)
		cal.SetSize(m.termWidth, 0)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, sum.View(), " ", not.View())
	body := lipgloss.JoinVertical(lipgloss.Left, top, cal.View())

	footer := m.theme.Footer.Status.Render(m.status)
	if m.fetchErr != "" {
		footer = m.theme.Footer.Error.Render("ERR: "+m.fetchErr) + "  " + footer
	}

	return body + "\n" + footer
}

// Run launches the dashboard.
func Run(client *slack.Client, snapshot store.Snapshot, token string, loc *time.Location) error {
	p := tea.NewProgram(New(client, snapshot, token, loc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
