package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/shooter"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// viewport maps arena coordinates onto the screen cells inside the border.
type viewport struct {
	area core.Rect
}

func newViewport(s *core.Screen) viewport {
	return viewport{area: core.NewRect(1, hudRows+1, max(1, s.Width()-2), max(1, s.Height()-hudRows-2))}
}

// project scales an arena box to cells. Every visible box covers at least one cell.
func (v viewport) project(r core.Rect) core.Rect {
	x0 := v.area.X + r.X*v.area.W/shooter.ArenaWidth
	y0 := v.area.Y + r.Y*v.area.H/shooter.ArenaHeight
	x1 := v.area.X + r.Right()*v.area.W/shooter.ArenaWidth
	y1 := v.area.Y + r.Bottom()*v.area.H/shooter.ArenaHeight
	out := core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))

	// Keep the drawing inside the border.
	if out.Right() > v.area.Right() {
		out.W = max(0, v.area.Right()-out.X)
	}
	if out.Bottom() > v.area.Bottom() {
		out.H = max(0, v.area.Bottom()-out.Y)
	}
	return out
}

// Draw renders the engine's current state into dst. It only reads the engine.
func Draw(dst *core.Screen, e *shooter.Engine) {
	dst.Clear()
	v := newViewport(dst)
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))

	drawHUD(dst, e)

	for _, en := range e.Enemies() {
		color := core.ColorRed
		if en.Health < shooter.MaxHealth {
			color = core.ColorMagenta
		}
		dst.FillRect(v.project(en.Bounds()), 'W', color)
	}

	for _, p := range e.Projectiles() {
		r := v.project(core.NewRect(p.X, p.Y, p.W, p.H))
		if !v.area.Contains(r.X, r.Y) {
			continue
		}
		glyph, color := projectileGlyph(p)
		dst.FillRect(r, glyph, color)
	}

	player := e.Player()
	dst.FillRect(v.project(player.Bounds()), 'A', core.ColorGreen)

	if e.DebugMode() {
		drawDebug(dst, e, v)
	}
	if e.GameOver() {
		drawGameOver(dst, e)
	}
}

func projectileGlyph(p shooter.ProjectileView) (rune, core.Color) {
	switch {
	case !p.PlayerOwned:
		return 'v', core.ColorRed
	case p.Kind == shooter.KindHoming:
		return '*', core.ColorMagenta
	case p.Kind == shooter.KindBeam:
		return '!', core.ColorCyan
	default:
		return '|', core.ColorYellow
	}
}

func drawHUD(dst *core.Screen, e *shooter.Engine) {
	player := e.Player()
	parts := []string{
		fmt.Sprintf("Score: %d", e.Score()),
		fmt.Sprintf("HP: %d", player.Health),
		fmt.Sprintf("Weapon: %s", e.ActiveFamily()),
	}
	for _, f := range shooter.Families() {
		a := e.Ammo(f)
		if a.Limited() {
			parts = append(parts, fmt.Sprintf("%s %d/%d", f, a.Live, a.Remaining))
		}
	}
	dst.DrawTextColored(0, 0, strings.Join(parts, "  "), core.ColorWhite)

	if e.GodMode() {
		dst.DrawTextColored(dst.Width()-5, 0, "[GOD]", core.ColorYellow)
	}
}

func drawDebug(dst *core.Screen, e *shooter.Engine, v viewport) {
	s := e.Swarm()
	p := e.Player()
	lines := []string{
		fmt.Sprintf("tick %d", e.Tick()),
		fmt.Sprintf("swarm x %d..%d dir %+d drops %d", s.Leftmost, s.Rightmost, s.Direction, s.Drops),
		fmt.Sprintf("player (%d,%d)", p.X, p.Y),
		fmt.Sprintf("enemies %d projectiles %d", len(e.Enemies()), len(e.Projectiles())),
	}
	for _, f := range shooter.Families() {
		lines = append(lines, fmt.Sprintf("%s live %d", f, e.Ammo(f).Live))
	}
	for i, line := range lines {
		dst.DrawTextColored(v.area.X, v.area.Y+i, line, core.ColorGray)
	}
}

func drawGameOver(dst *core.Screen, e *shooter.Engine) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "GAME OVER")
	dst.DrawTextCentered(mid, fmt.Sprintf("Final score: %d", e.Score()))
	dst.DrawTextCentered(mid+1, "press r to restart")
}
