package core

import (
	"fmt"
	"strings"
)

// RenderText renders the game state as deterministic plain text: a status
// line, a player line, a counts line, then one line per grid row.
//
// Map legend, highest priority first: P player, G pursuer, I item,
// '#' wall, '.' pellet, 'O' power pellet, 'H' pursuer home, ' ' anything else.
func RenderText(s *State) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "status:%s round:%d score:%d lives:%d\n", s.Status, s.Round, s.Score, s.Lives)
	fmt.Fprintf(&sb, "player:%s dir:%s\n", s.Player.Pos, s.Player.Facing)

	effects := "none"
	if len(s.Effects) > 0 {
		names := make([]string, len(s.Effects))
		for i, e := range s.Effects {
			names[i] = e.Kind.String()
		}
		effects = strings.Join(names, ",")
	}
	fmt.Fprintf(&sb, "pursuers:%d pellets:%d effects:%s", len(s.Pursuers), s.PelletsRemaining, effects)

	if s.Grid == nil {
		return sb.String()
	}

	pursuers := make(map[Position]bool, len(s.Pursuers))
	for _, p := range s.Pursuers {
		pursuers[p.Pos] = true
	}
	items := make(map[Position]bool, len(s.Items))
	for _, it := range s.Items {
		items[it.Pos] = true
	}

	for y := 0; y < s.Grid.H; y++ {
		sb.WriteByte('\n')
		for x := 0; x < s.Grid.W; x++ {
			p := Position{X: x, Y: y}
			switch {
			case p == s.Player.Pos:
				sb.WriteByte('P')
			case pursuers[p]:
				sb.WriteByte('G')
			case items[p]:
				sb.WriteByte('I')
			default:
				sb.WriteByte(dumpByte(s.Grid.At(p)))
			}
		}
	}
	return sb.String()
}

func dumpByte(t Tile) byte {
	switch t {
	case TileWall:
		return '#'
	case TilePellet:
		return '.'
	case TilePowerPellet:
		return 'O'
	case TileHome:
		return 'H'
	default:
		return ' '
	}
}
