package meadow

import (
	"fmt"

	"github.com/vovakirdan/tui-parley/internal/core"
	"github.com/vovakirdan/tui-parley/internal/dialogue"
)

// Visual characters for rendering
const (
	FloorChar   = '▓'
	FloorTop    = '▀'
	BodyChar    = '█'
	CursorChar  = '_'
	bubbleWidth = 28 // Max columns of an NPC speech line
)

const hint = "Say hello, bye or sorry to the Mage"

// moodColors tints the Mage by mood.
var moodColors = map[dialogue.Mood]core.Color{
	dialogue.MoodAngry:   core.ColorRed,
	dialogue.MoodHappy:   core.ColorGreen,
	dialogue.MoodNeutral: core.ColorMagenta,
}

// Render draws the current scene state to the screen.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	proj := core.Projection{
		WorldW:  s.cfg.World.Width,
		WorldH:  s.cfg.World.Height,
		ScreenW: dst.Width(),
		ScreenH: dst.Height(),
	}

	// Floor band
	floorRow := proj.Y(s.cfg.World.FloorY)
	dst.DrawHLine(0, floorRow, dst.Width(), FloorTop, core.ColorBrown)
	dst.DrawRect(core.NewRect(0, floorRow+1, dst.Width(), dst.Height()-floorRow-1), FloorChar, core.ColorBrown)

	heroRect := proj.Rect(s.hero.Body.Rect())
	mageRect := proj.Rect(s.mage.Body.Rect())

	heroColor := core.ColorBrightCyan
	mageColor, ok := moodColors[s.chat.Mood()]
	if !ok {
		mageColor = core.ColorMagenta
	}
	drawSprite(dst, heroRect, s.hero.Glyph, heroColor)
	drawSprite(dst, mageRect, s.mage.Glyph, mageColor)

	// Typed line above the hero
	if s.chat.Active() || s.chat.Buffer() != "" {
		text := s.chat.Buffer()
		if s.chat.Active() {
			text += string(CursorChar)
		}
		drawCenteredAbove(dst, heroRect, []string{text}, core.ColorWhite)
	}

	// Reply to the last line above the Mage
	if reply, ok := s.chat.Reply(); ok {
		drawBubble(dst, mageRect, reply, mageColor)
	} else if !s.chat.Active() {
		dst.DrawTextCentered(2, hint)
	}

	s.drawHUD(dst)
}

// drawSprite fills the sprite box and stamps its glyph near the top.
func drawSprite(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	dst.DrawRect(r, BodyChar, c)
	cx, _ := r.Center()
	dst.SetCell(cx, r.Y, glyph, c)
}

// drawCenteredAbove stacks lines so the last one sits just above r.
func drawCenteredAbove(dst *core.Screen, r core.Rect, lines []string, c core.Color) {
	cx, _ := r.Center()
	top := r.Y - len(lines)
	for i, line := range lines {
		w := core.TextWidth(line)
		x := core.Clamp(cx-w/2, 0, core.Max(dst.Width()-w, 0))
		dst.DrawTextColored(x, top+i, line, c)
	}
}

// drawBubble boxes the word-wrapped reply just above r.
func drawBubble(dst *core.Screen, r core.Rect, text string, c core.Color) {
	lines := core.WrapText(text, bubbleWidth)
	inner := 0
	for _, line := range lines {
		inner = core.Max(inner, core.TextWidth(line))
	}

	box := core.NewRect(0, r.Y-len(lines)-2, inner+4, len(lines)+2)
	cx, _ := r.Center()
	box.X = core.Clamp(cx-box.W/2, 0, core.Max(dst.Width()-box.W, 0))

	dst.DrawBox(box, c)
	dst.DrawWrapped(box.X+2, box.Y+1, bubbleWidth, text, c)
}

// drawHUD draws the mode and mood line at the top of the screen.
func (s *Scene) drawHUD(dst *core.Screen) {
	mode := "WALK"
	if s.chat.Active() {
		mode = "TALK"
	}
	hud := fmt.Sprintf(" %s | %s is %s | lines: %d ", mode, s.mage.Name, s.chat.Mood(), len(s.chat.History()))
	dst.DrawTextColored(1, 0, hud, core.ColorYellow)
}
