package meadow

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-parley/internal/config"
	"github.com/vovakirdan/tui-parley/internal/core"
	"github.com/vovakirdan/tui-parley/internal/physics"
)

// Entity is a physics body with a name and a sprite glyph.
type Entity struct {
	Name  string
	Glyph rune
	Body  *physics.Body
}

// newEntity spawns an entity from config at rest.
func newEntity(ec config.EntityConfig, pc config.PhysicsConfig, fallback rune) *Entity {
	glyph, _ := utf8.DecodeRuneInString(ec.Glyph)
	if glyph == utf8.RuneError {
		glyph = fallback
	}
	return &Entity{
		Name:  ec.Name,
		Glyph: glyph,
		Body:  physics.NewBody(ec.SpawnX, ec.SpawnY, ec.Width, ec.Height, pc.MoveSpeed, pc.Gravity),
	}
}

// Player is the controllable entity. It remembers which movement keys are held.
type Player struct {
	Entity
	heldLeft  bool
	heldRight bool
}

// Hold records a key-down (down=true) or key-up for a movement action.
// Other actions are ignored.
func (p *Player) Hold(a core.Action, down bool) {
	switch a {
	case core.ActionLeft:
		p.heldLeft = down
	case core.ActionRight:
		p.heldRight = down
	}
}

// Release clears both movement flags.
func (p *Player) Release() {
	p.heldLeft = false
	p.heldRight = false
}

// Held reports the movement flags.
func (p *Player) Held() (left, right bool) {
	return p.heldLeft, p.heldRight
}

// Walk applies the held flags to the body for one frame.
func (p *Player) Walk() {
	p.Body.Move(p.heldLeft, p.heldRight)
}
