package turtle

import (
	"fmt"

	"github.com/vovakirdan/turtle-adventure/internal/core"
)

const hudHeight = 1

// Render draws the HUD and the playfield into dst.
// On a pixel canvas the scene fills the whole screen and there is no HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderOverlay(dst, "Cannot start game", g.err.Error())
		return
	}
	if g.scene == nil {
		return
	}

	if g.runtime.Pixels {
		g.view = core.NewViewport(g.width, g.height, core.NewRect(0, 0, dst.Width(), dst.Height()))
		g.view.Draw(dst, g.scene)
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	dst.DrawBoxColored(field, core.ColorGray)
	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)
	g.view = core.NewViewport(g.width, g.height, inner)
	g.view.Draw(dst, g.scene)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws level, tick and enemy count on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Level: %d", g.level))

	var status string
	switch {
	case g.over:
		status = "R restart  Q quit"
	case g.generator != nil && g.generator.Waves() > 0:
		status = fmt.Sprintf("Wave %d  Enemies: %d", g.generator.Waves(), len(g.enemies))
	default:
		status = "Click to move"
	}
	dst.DrawTextCentered(0, status)

	seconds := float64(g.tick) * g.tickDur.Seconds()
	timeText := fmt.Sprintf("Time: %.1fs", seconds)
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
