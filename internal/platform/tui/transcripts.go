package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-parley/internal/storage"
)

// Transcript browser layout constants
const (
	maxSessions   = 100 // Max sessions to load
	shortIDLen    = 8   // Session ID prefix shown in tables
	browserChrome = 8   // Rows used by title, borders and help
)

// BrowserKeyMap defines the key bindings for the transcript browser.
type BrowserKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open session"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for browsing recorded transcripts.
// It shows the session list, and the lines of one session when opened.
type BrowserModel struct {
	store    *storage.Store
	sessions []storage.SessionEntry
	lines    []storage.LineEntry
	tally    map[string]int
	open     *storage.SessionEntry // Session whose lines are shown, nil for the list
	err      error
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	quitting bool
}

// NewBrowserModel creates a transcript browser and loads the session list.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.loadSessions()
	return m
}

// sessionColumns returns the session list columns.
func (m BrowserModel) sessionColumns() []table.Column {
	return []table.Column{
		{Title: "Session", Width: shortIDLen},
		{Title: "Scene", Width: 10},
		{Title: "User", Width: 12},
		{Title: "Started", Width: 14},
		{Title: "Lines", Width: 6},
		{Title: "Mood", Width: 8},
	}
}

// lineColumns returns the transcript columns. The reply column takes the rest of the width.
func (m BrowserModel) lineColumns() []table.Column {
	reply := m.width - 4 - 5 - 20 - 8 - 8
	if reply < 20 {
		reply = 20
	}
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Line", Width: 20},
		{Title: "Mood", Width: 8},
		{Title: "Reply", Width: reply},
	}
}

// createTable creates a table with the given columns and rows.
func (m BrowserModel) createTable(columns []table.Column, rows []table.Row) table.Model {
	height := m.height - browserChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the session list and shows it.
func (m *BrowserModel) loadSessions() {
	m.open = nil
	m.lines = nil
	m.tally = nil
	if m.store != nil {
		m.sessions, m.err = m.store.Sessions(maxSessions)
	}
	m.table = m.createTable(m.sessionColumns(), m.sessionRows())
}

// openSession loads the lines of the selected session and shows them.
func (m *BrowserModel) openSession(i int) {
	if m.store == nil || i < 0 || i >= len(m.sessions) {
		return
	}

	session := m.sessions[i]
	lines, err := m.store.Lines(session.ID)
	if err != nil {
		m.err = err
		return
	}
	tally, err := m.store.MoodTally(session.ID)
	if err != nil {
		m.err = err
		return
	}

	m.open = &session
	m.lines = lines
	m.tally = tally
	m.table = m.createTable(m.lineColumns(), m.lineRows())
}

func (m BrowserModel) sessionRows() []table.Row {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			shortID(s.ID),
			s.SceneID,
			s.User,
			s.StartedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", s.Lines),
			s.LastMood,
		}
	}
	return rows
}

func (m BrowserModel) lineRows() []table.Row {
	rows := make([]table.Row, len(m.lines))
	for i, l := range m.lines {
		rows[i] = table.Row{
			fmt.Sprintf("%d", l.Seq),
			l.Line,
			l.Mood,
			l.Reply,
		}
	}
	return rows
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.open == nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.loadSessions()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.open == nil {
				m.openSession(m.table.Cursor())
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.open == nil {
			m.table = m.createTable(m.sessionColumns(), m.sessionRows())
		} else {
			m.table = m.createTable(m.lineColumns(), m.lineRows())
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "TRANSCRIPTS"
	if m.open != nil {
		title = fmt.Sprintf("TRANSCRIPT %s - %s", shortID(m.open.ID), FormatTally(m.tally))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder message.
func (m BrowserModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read transcripts:\n" + m.err.Error())
	case m.open == nil && len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nRun 'parley play' and say something!")
	case m.open != nil && len(m.lines) == 0:
		return emptyStyle.Render("Nothing was said in this session.")
	}
	return m.table.View()
}

// shortID returns the displayed prefix of a session ID.
func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// FormatTally renders a mood tally as "angry 1, happy 2".
func FormatTally(tally map[string]int) string {
	if len(tally) == 0 {
		return "no lines"
	}
	moods := make([]string, 0, len(tally))
	for mood := range tally {
		moods = append(moods, mood)
	}
	sort.Strings(moods)

	parts := make([]string, len(moods))
	for i, mood := range moods {
		parts[i] = fmt.Sprintf("%s %d", mood, tally[mood])
	}
	return strings.Join(parts, ", ")
}

// RunBrowser runs the transcript browser.
func RunBrowser(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewBrowserModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
