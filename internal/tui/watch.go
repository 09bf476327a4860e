// Package tui provides a Bubble Tea live view of the timesheet.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/matkov/wtt/internal/timefmt"
	"github.com/matkov/wtt/internal/timesheet"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	trackingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// Key=value label
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// Section heading above the period list
	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ── Messages ────────────

type tickMsg time.Time

type fileChangedMsg struct{}

// ── Model ────────────

// Model is the root Bubble Tea model for the live view.
type Model struct {
	store   timesheet.Store
	ts      *timesheet.Timesheet
	loadErr error
	changes <-chan struct{}

	now    time.Time
	width  int
	height int
	vp     viewport.Model
	ready  bool
}

// New creates a live-view model. changes delivers a value whenever the
// timesheet file is rewritten by another invocation.
func New(store timesheet.Store, changes <-chan struct{}) Model {
	m := Model{store: store, changes: changes, now: time.Now()}
	m.reload()
	return m
}

func (m *Model) reload() {
	ts, err := m.store.Load()
	if err != nil {
		m.loadErr = err
		return
	}
	m.ts = ts
	m.loadErr = nil
}

// ── Bubble Tea interface ────────────

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitForChange(m.changes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tickMsg:
		m.now = time.Time(msg)
		if m.ready {
			m.vp.SetContent(m.renderPeriods())
		}
		return m, tick()

	case fileChangedMsg:
		m.reload()
		if m.ready {
			m.vp.SetContent(m.renderPeriods())
		}
		return m, waitForChange(m.changes)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// title(1) + summary(6) + statusBar(1) = 8 fixed rows
		vpHeight := m.height - 8
		if vpHeight < 1 {
			vpHeight = 1
		}
		m.vp = viewport.New(m.width, vpHeight)
		m.vp.SetContent(m.renderPeriods())
		m.ready = true
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  wtt  " + filepath.Base(m.store.Path()))

	summary := m.renderSummary()
	content := m.vp.View()

	hint := "  ↑/↓ scroll  q quit"
	statusBar := statusBarStyle.Width(m.width).Render(hint)

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, content, statusBar)
}

// ── Renderers ────────────

func (m *Model) renderSummary() string {
	var sb strings.Builder
	sb.WriteString("\n")

	if m.loadErr != nil {
		sb.WriteString(errStyle.Render("  "+m.loadErr.Error()) + "\n")
		sb.WriteString(strings.Repeat("\n", 4))
		return sb.String()
	}

	if m.ts.Tracking() {
		elapsed := timefmt.HHMMSS(m.now.Sub(*m.ts.ActiveStart))
		sb.WriteString("  " + trackingStyle.Render("● TRACKING") +
			dimStyle.Render("  since "+m.ts.ActiveStart.Local().Format("15:04:05")) +
			"  " + timeStyle.Render(elapsed) + "\n")
	} else {
		sb.WriteString("  " + idleStyle.Render("○ not tracking") + "\n")
	}
	sb.WriteString("\n")

	row := func(label string, w timesheet.Period) {
		total := m.ts.TrackedIn(w, m.now)
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-8s", label)) + "  " + timefmt.HHMMSS(total) + "\n")
	}
	row("Today:", timesheet.DayWindow(m.now))
	row("Week:", timesheet.WeekWindow(m.now))
	row("Month:", timesheet.MonthWindow(m.now))

	return sb.String()
}

func (m *Model) renderPeriods() string {
	var sb strings.Builder
	if m.loadErr != nil {
		return ""
	}
	sb.WriteString(sectionHeader.Render(fmt.Sprintf("  Periods (%d)", len(m.ts.Periods))) + "\n\n")
	if len(m.ts.Periods) == 0 {
		sb.WriteString(dimStyle.Render("  (none)") + "\n")
		return sb.String()
	}
	// Latest first.
	for i := len(m.ts.Periods) - 1; i >= 0; i-- {
		p := m.ts.Periods[i]
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			timeStyle.Render(p.Start.Local().Format("2006-01-02 15:04:05")),
			dimStyle.Render("→ "+p.End.Local().Format("15:04:05")),
			timefmt.HHMMSS(p.Duration())))
	}
	return sb.String()
}

// ── Program entry ────────────

// Run starts the live view, watching the timesheet file for rewrites
// from other invocations until the user quits.
func Run(store timesheet.Store) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: Save replaces the file via rename, so a
	// watch on the file itself would go stale after the first write.
	path := store.Path()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					select {
					case changes <- struct{}{}:
					default:
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watcher errors are non-fatal; keep watching.
			}
		}
	}()

	p := tea.NewProgram(New(store, changes), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
