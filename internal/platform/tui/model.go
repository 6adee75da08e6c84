package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-parley/internal/config"
	"github.com/vovakirdan/tui-parley/internal/core"
	"github.com/vovakirdan/tui-parley/internal/registry"
	"github.com/vovakirdan/tui-parley/internal/storage"
)

// Options are the platform-side settings of a play session.
type Options struct {
	Store *storage.Store     // Transcript store, nil to disable persistence
	User  string             // Recorded with the transcript session
	Input config.InputConfig // Key bindings and hold release window
}

// Model is the Bubble Tea model running one scene.
type Model struct {
	scene     registry.Scene
	screen    *core.Screen
	store     *storage.Store
	sessionID string
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	holds     *HoldTracker
	frame     core.Frame
	state     core.SceneState
	quitting  bool
}

// NewModel creates a Bubble Tea model for a scene that has already been Reset.
// When a store is given a transcript session is started; if that fails the
// model runs without persistence.
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, opts Options) Model {
	m := Model{
		scene:  scene,
		screen: core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		config: cfg,
		keys:   NewKeyMap(opts.Input.Keys),
		help:   help.New(),
		holds:  NewHoldTracker(time.Duration(opts.Input.HoldReleaseMS) * time.Millisecond),
		frame:  core.NewFrame(),
		state:  scene.State(),
	}
	m.help.Width = cfg.ScreenW

	if opts.Store != nil {
		id, err := opts.Store.StartSession(scene.ID(), opts.User)
		if err != nil {
			log.Warn("transcripts disabled", "error", err)
		} else {
			m.store = opts.Store
			m.sessionID = id
			log.Info("session started", "scene", scene.ID(), "session", id, "user", opts.User)
		}
	}
	return m
}

// sceneHeight leaves the last terminal row for the help line.
func sceneHeight(h int) int {
	return core.Max(h-1, 1)
}

// SessionID returns the transcript session ID, empty without a store.
func (m Model) SessionID() string {
	return m.sessionID
}

// State returns the scene state after the last frame.
func (m Model) State() core.SceneState {
	return m.state
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the events for a key until the next frame.
func (m Model) handleKey(msg tea.KeyMsg) Model {
	for _, ev := range m.keys.Events(msg) {
		if ev.Kind == core.EventKeyDown && m.holds.Tracks(ev.Action) {
			for _, up := range m.holds.Press(ev.Action, time.Now()) {
				m.frame.Push(up)
			}
		}
		m.frame.Push(ev)
	}
	return m
}

// handleResize resizes the screen. The scene keeps its state and projects
// onto the new size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width
	return m
}

// handleTick runs one scene frame with the queued events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, up := range m.holds.Expire(now) {
		m.frame.Push(up)
	}

	result := m.scene.Update(m.frame)
	m.state = result.State
	m.keys.SetTalking(m.state.Talking)
	m.frame.Clear()

	for _, ex := range result.Exchanges {
		m.saveExchange(ex)
	}

	if m.state.Quit {
		m.quitting = true
		log.Info("session ended", "scene", m.scene.ID(), "session", m.sessionID, "lines", m.state.Lines)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveExchange persists one committed line. Failures are logged and play continues.
func (m Model) saveExchange(ex core.Exchange) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveLine(m.sessionID, ex); err != nil {
		log.Warn("could not save line", "session", m.sessionID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run resets the scene and runs it in a full-screen Bubble Tea program.
// Returns the transcript session ID, empty when nothing was recorded.
func Run(scene registry.Scene, cfg core.RuntimeConfig, opts Options) (string, error) {
	if err := scene.Reset(cfg); err != nil {
		return "", fmt.Errorf("tui: %w", err)
	}

	model := NewModel(scene, cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return model.SessionID(), fmt.Errorf("tui: %w", err)
	}
	return model.SessionID(), nil
}
