// Package meadow implements the default scene: a hero who can walk and jump,
// and a Mage who answers typed lines according to their mood.
package meadow

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-parley/internal/config"
	"github.com/vovakirdan/tui-parley/internal/core"
	"github.com/vovakirdan/tui-parley/internal/dialogue"
	"github.com/vovakirdan/tui-parley/internal/registry"
)

// ID is the registry identifier of this scene.
const ID = "meadow"

// Scene implements the meadow scene logic.
type Scene struct {
	cfg     config.SceneConfig
	runtime core.RuntimeConfig
	hero    *Player
	mage    *Entity
	chat    *dialogue.State
	diag    io.Writer
	quit    bool
	frames  int
}

// New creates a new meadow scene. Call Reset before use.
func New() *Scene {
	return &Scene{chat: dialogue.NewState()}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return ID
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Meadow Mage"
}

// Reset loads the scene config and spawns both entities.
func (s *Scene) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadScene(runtime.ConfigPath)
	if err != nil {
		return fmt.Errorf("meadow: %w", err)
	}
	s.ResetWith(runtime, cfg)
	return nil
}

// ResetWith initializes the scene from an already loaded config.
func (s *Scene) ResetWith(runtime core.RuntimeConfig, cfg config.SceneConfig) {
	s.runtime = runtime
	s.cfg = cfg
	s.diag = runtime.Diag
	if s.diag == nil {
		s.diag = io.Discard
	}

	s.hero = &Player{Entity: *newEntity(cfg.Hero, cfg.Physics, '@')}
	s.mage = newEntity(cfg.NPC, cfg.Physics, 'M')
	s.chat = dialogue.NewState()
	s.quit = false
	s.frames = 0
}

// Update runs one frame: every event in order, then mood, movement and gravity.
func (s *Scene) Update(frame core.Frame) core.StepResult {
	var exchanges []core.Exchange
	for _, ev := range frame.Events {
		if ex, ok := s.dispatch(ev); ok {
			exchanges = append(exchanges, core.Exchange{
				Line:  ex.Line,
				Mood:  ex.Mood.String(),
				Reply: ex.Reply,
			})
		}
	}

	s.chat.RecomputeMood()
	s.hero.Walk()

	floorY := s.cfg.World.FloorY
	for _, e := range []*Entity{&s.hero.Entity, s.mage} {
		if e.Body.Step(floorY) {
			log.Debug("contact changed", "entity", e.Name, "contact", e.Body.Contact(), "x", e.Body.X, "frame", s.frames)
		}
	}

	s.frames++
	return core.StepResult{State: s.State(), Exchanges: exchanges}
}

// dispatch routes one input event. Returns the exchange when the event
// committed a dialogue line.
func (s *Scene) dispatch(ev core.Event) (dialogue.Exchange, bool) {
	switch ev.Kind {
	case core.EventQuit:
		s.quit = true
		return dialogue.Exchange{}, false
	case core.EventKeyDown:
		switch ev.Action {
		case core.ActionTalk:
			if !s.chat.Active() {
				s.chat.SetActive(true)
				s.hero.Release()
				log.Debug("dialogue on")
			}
		case core.ActionLeave:
			if s.chat.Active() {
				s.chat.SetActive(false)
				log.Debug("dialogue off")
			}
		}
	}

	if s.chat.Active() {
		return s.handleDialogue(ev)
	}
	s.handleMovement(ev)
	return dialogue.Exchange{}, false
}

// handleDialogue applies an event while text capture is on.
func (s *Scene) handleDialogue(ev core.Event) (dialogue.Exchange, bool) {
	switch ev.Kind {
	case core.EventText:
		s.chat.SubmitText(ev.Text)
	case core.EventKeyDown:
		switch ev.Action {
		case core.ActionErase:
			s.chat.Backspace()
		case core.ActionCommit:
			ex := s.chat.Converse()
			fmt.Fprintf(s.diag, "%s: %s\n", dialogue.PlayerLabel, ex.Line)
			fmt.Fprintf(s.diag, "%s: %s\n", s.mage.Name, ex.Reply)
			log.Debug("line committed", "line", ex.Line, "mood", ex.Mood,
				"hello", s.chat.Count(dialogue.KeywordHello),
				"bye", s.chat.Count(dialogue.KeywordBye),
				"sorry", s.chat.Count(dialogue.KeywordSorry))
			return ex, true
		}
	}
	return dialogue.Exchange{}, false
}

// handleMovement applies an event while the hero is controllable.
func (s *Scene) handleMovement(ev core.Event) {
	switch ev.Kind {
	case core.EventKeyDown:
		switch ev.Action {
		case core.ActionLeft, core.ActionRight:
			s.hero.Hold(ev.Action, true)
		case core.ActionJump:
			if s.hero.Body.OnGround(s.cfg.World.FloorY) {
				s.hero.Body.Jump(s.cfg.Physics.JumpPower)
			}
		case core.ActionHistory:
			s.printHistory()
		case core.ActionQuit:
			s.quit = true
		}
	case core.EventKeyUp:
		s.hero.Hold(ev.Action, false)
	}
}

// printHistory writes every committed line, oldest first, to the diagnostic stream.
func (s *Scene) printHistory() {
	fmt.Fprintln(s.diag, "---History---")
	for _, line := range s.chat.History() {
		fmt.Fprintf(s.diag, "- %s\n", line)
	}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{
		Mood:    s.chat.Mood().String(),
		Talking: s.chat.Active(),
		Lines:   len(s.chat.History()),
		Quit:    s.quit,
	}
}

// Register the scene with the registry
func init() {
	registry.Register(ID, func() registry.Scene {
		return New()
	})
}
