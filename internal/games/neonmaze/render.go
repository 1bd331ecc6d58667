package neonmaze

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/neon-maze/internal/core"
	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

// Visual characters for rendering
const (
	WallChar        = '█'
	PelletChar      = '·'
	PowerPelletChar = '●'
	HomeChar        = '─'
	PlayerChar      = '◉'
	PursuerChar     = 'ᗣ'
	LifeChar        = '♥'
)

const (
	cellW     = 2 // terminal columns per tile
	hudHeight = 2
	footerH   = 1
	blinkRate = 15 // frames per power pellet blink phase
)

// itemChars maps item kinds to their glyphs.
var itemChars = map[core.EffectKind]rune{
	core.EffectFreeze: '*',
	core.EffectDash:   '»',
	core.EffectCombo:  '×',
}

// effectLabels maps effect kinds to their HUD labels.
var effectLabels = map[core.EffectKind]string{
	core.EffectFreeze: "FREEZE",
	core.EffectDash:   "DASH",
	core.EffectCombo:  "COMBO",
}

// MinScreenSize returns the smallest screen the game can be drawn on.
func MinScreenSize() (w, h int) {
	g := core.NewGrid()
	return g.W * cellW, g.H + hudHeight + footerH
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	s := g.engine.State()

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	offsetX := (dst.Width() - s.Grid.W*cellW) / 2
	offsetY := hudHeight

	g.renderHUD(dst, s)
	g.renderMaze(dst, s, offsetX, offsetY)
	g.renderItems(dst, s, offsetX, offsetY)
	g.renderPursuers(dst, s, offsetX, offsetY)
	g.renderPlayer(dst, s, offsetX, offsetY)
	g.renderFooter(dst, offsetY+s.Grid.H)

	switch s.Status {
	case core.StatusMenu:
		g.renderOverlay(dst, "N E O N   M A Z E", "Press Enter to start")
	case core.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case core.StatusRoundClear:
		g.renderOverlay(dst, fmt.Sprintf("Round %d clear!", s.Round), fmt.Sprintf("Enter for round %d", s.Round+1))
	case core.StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - Enter to restart", s.Score))
	}
}

// renderHUD draws the score line and the active effects line.
func (g *Game) renderHUD(dst *platformcore.Screen, s *core.State) {
	hud := fmt.Sprintf(" %s  Score: %d  High: %d  Round: %d  ", Title, s.Score, s.HighScore, s.Round)
	dst.DrawText(0, 0, hud, platformcore.ColorHUD)
	x := len([]rune(hud))
	for i := 0; i < s.Lives; i++ {
		dst.SetCell(x+i, 0, LifeChar, platformcore.ColorAlert)
	}

	var parts []string
	for _, e := range s.Effects {
		parts = append(parts, fmt.Sprintf("%s %.1fs", effectLabels[e.Kind], e.RemainingMs/1000))
	}
	if s.Combo > 1 {
		parts = append(parts, fmt.Sprintf("x%.1f", s.Combo))
	}
	switch {
	case s.Player.Dashing:
	case s.Player.DashCooldownMs > 0:
		parts = append(parts, fmt.Sprintf("dash in %.0fs", s.Player.DashCooldownMs/1000))
	default:
		parts = append(parts, "dash ready")
	}

	color := platformcore.ColorHUDDim
	if len(s.Effects) > 0 {
		color = platformcore.ColorItem
	}
	dst.DrawText(1, 1, strings.Join(parts, "  "), color)
}

// renderMaze draws the tiles.
func (g *Game) renderMaze(dst *platformcore.Screen, s *core.State, ox, oy int) {
	blinkOn := (g.frame/blinkRate)%2 == 0
	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			sx, sy := ox+x*cellW, oy+y
			switch s.Grid.At(core.P(x, y)) {
			case core.TileWall:
				color := platformcore.ColorWall
				if g.isWallEdge(s.Grid, x, y) {
					color = platformcore.ColorWallEdge
				}
				dst.SetCell(sx, sy, WallChar, color)
				dst.SetCell(sx+1, sy, WallChar, color)
			case core.TilePellet:
				dst.SetCell(sx, sy, PelletChar, platformcore.ColorPellet)
			case core.TilePowerPellet:
				if blinkOn {
					dst.SetCell(sx, sy, PowerPelletChar, platformcore.ColorPowerPellet)
				}
			case core.TileHome:
				dst.SetCell(sx, sy, HomeChar, platformcore.ColorHUDDim)
				dst.SetCell(sx+1, sy, HomeChar, platformcore.ColorHUDDim)
			}
		}
	}
}

// isWallEdge reports whether a wall tile borders a walkable tile.
func (g *Game) isWallEdge(grid *core.Grid, x, y int) bool {
	for _, d := range core.Directions {
		n := core.P(x, y).Step(d)
		if grid.InBounds(n) && grid.At(n) != core.TileWall {
			return true
		}
	}
	return false
}

func (g *Game) renderItems(dst *platformcore.Screen, s *core.State, ox, oy int) {
	for _, it := range s.Items {
		dst.SetCell(ox+it.Pos.X*cellW, oy+it.Pos.Y, itemChars[it.Kind], platformcore.ColorItem)
	}
}

func (g *Game) renderPursuers(dst *platformcore.Screen, s *core.State, ox, oy int) {
	for _, p := range s.Pursuers {
		color := platformcore.ColorPursuer
		switch {
		case p.Frozen:
			color = platformcore.ColorFrozen
		case p.Behavior == core.BehaviorPatrol:
			color = platformcore.ColorPursuerAlt
		}
		dst.SetCell(ox+p.Pos.X*cellW, oy+p.Pos.Y, PursuerChar, color)
	}
}

func (g *Game) renderPlayer(dst *platformcore.Screen, s *core.State, ox, oy int) {
	p := s.Player
	color := platformcore.ColorPlayer
	if p.Dashing || (p.InvulnerableMs > 0 && (g.frame/4)%2 == 0) {
		color = platformcore.ColorPlayerBlink
	}
	dst.SetCell(ox+p.Pos.X*cellW, oy+p.Pos.Y, PlayerChar, color)
}

func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	dst.DrawTextCentered(y, "arrows/WASD move  Q/E/Space dash  P pause  Ctrl+C quit", platformcore.ColorHUDDim)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, platformcore.ColorHUD)
	dst.DrawTextCentered(boxY+1, line1, platformcore.ColorAlert)
	dst.DrawTextCentered(boxY+3, line2, platformcore.ColorHUD)
}
