// Package core provides the simulation engine for Neon Maze.
// This package is UI-agnostic: it never draws, reads keys or blocks, and
// given the same seed and the same sequence of calls it produces the same
// states.
package core

import "fmt"

// Direction is one of the four cardinal facings. DirNone marks an empty
// input buffer.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the cardinal directions in tie-break order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name used by the text dump.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts a lowercase direction name.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirNone, false
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Position is a tile coordinate.
// X increases to the right, Y increases downward.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbouring position in direction d. No wrapping is applied.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Status is the engine state machine position.
type Status string

const (
	StatusMenu       Status = "menu"
	StatusPlaying    Status = "playing"
	StatusPaused     Status = "paused"
	StatusRoundClear Status = "roundClear"
	StatusGameOver   Status = "gameOver"
)

// Skill is a player ability requested through UseSkill.
type Skill uint8

const (
	SkillDash Skill = iota
)

// Player is the player-controlled entity.
type Player struct {
	Pos            Position
	Facing         Direction
	Next           Direction // buffered turn, DirNone when empty
	Speed          float64   // tiles per second
	Progress       float64   // sub-tile progress in [0, 1)
	InvulnerableMs float64
	Dashing        bool
	DashCooldownMs float64
}
