package core

import "strings"

// Tile is the kind of a single maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePowerPellet
	TileHome  // pursuer home, entered by pursuers only when spawning
	TileSpawn // player spawn, cleared to empty when a round starts
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TilePellet:
		return "Pellet"
	case TilePowerPellet:
		return "PowerPellet"
	case TileHome:
		return "Home"
	case TileSpawn:
		return "Spawn"
	default:
		return "Unknown"
	}
}

// IsPellet reports whether the tile awards points when collected.
func (t Tile) IsPellet() bool {
	return t == TilePellet || t == TilePowerPellet
}

const (
	// TunnelRow is the only row whose edges wrap horizontally.
	TunnelRow = 10
)

// FallbackSpawn is used when a grid has no spawn tile.
var FallbackSpawn = Position{X: 10, Y: 16}

// mazeRows is the fixed maze layout.
// '#' wall, '.' pellet, 'o' power pellet, 'H' pursuer home, 'S' player spawn.
var mazeRows = []string{
	"#####################",
	"#.........#.........#",
	"#.##.###.###.###.##.#",
	"#o##.###.###.###.##o#",
	"#...................#",
	"#.##.#.#######.#.##.#",
	"#....#....#....#....#",
	"####.### ### ###.####",
	"####.#         #.####",
	"####.# ##HHH## #.####",
	"    .  #HHHHH#  .    ",
	"####.# ####### #.####",
	"####.#         #.####",
	"####.# ####### #.####",
	"#.........#.........#",
	"#.##.###.###.###.##.#",
	"#o.#......S......#.o#",
	"##.#.#.#######.#.#.##",
	"#....#....#....#....#",
	"#.######.###.######.#",
	"#####################",
}

// template is parsed once and only ever cloned.
var template = ParseGrid(mazeRows)

// Grid is the maze as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Tiles []Tile
}

// NewGrid returns a fresh mutable copy of the maze.
func NewGrid() *Grid {
	return template.Clone()
}

// ParseGrid builds a grid from text rows using the maze legend.
// Unknown characters become empty tiles; short rows are padded with walls.
func ParseGrid(rows []string) *Grid {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	g := &Grid{W: w, H: len(rows), Tiles: make([]Tile, w*len(rows))}
	for y, r := range rows {
		for x := 0; x < w; x++ {
			if x >= len(r) {
				g.Tiles[y*w+x] = TileWall
				continue
			}
			g.Tiles[y*w+x] = tileFromByte(r[x])
		}
	}
	return g
}

func tileFromByte(b byte) Tile {
	switch b {
	case '#':
		return TileWall
	case '.':
		return TilePellet
	case 'o', 'O':
		return TilePowerPellet
	case 'H':
		return TileHome
	case 'S':
		return TileSpawn
	default:
		return TileEmpty
	}
}

// InBounds returns true if the position lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the tile at p. Out-of-bounds positions read as walls.
func (g *Grid) At(p Position) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.Tiles[p.Y*g.W+p.X]
}

// Set replaces the tile at p. Out-of-bounds positions are ignored.
func (g *Grid) Set(p Position, t Tile) {
	if g.InBounds(p) {
		g.Tiles[p.Y*g.W+p.X] = t
	}
}

// IsWalkable reports whether (x, y) may be entered. Walls and cells outside
// the grid are blocked, except the two cells just past the ends of the
// tunnel row, which are the wrap entry points.
func (g *Grid) IsWalkable(x, y int) bool {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return y == TunnelRow && (x == -1 || x == g.W)
	}
	return g.Tiles[y*g.W+x] != TileWall
}

// Wrap applies horizontal tunnel wrap to p.
func (g *Grid) Wrap(p Position) Position {
	if p.X < 0 {
		p.X = g.W - 1
	}
	if p.X >= g.W {
		p.X = 0
	}
	return p
}

// FindSpawn returns the player spawn tile, or FallbackSpawn when the grid has none.
func (g *Grid) FindSpawn() Position {
	for i, t := range g.Tiles {
		if t == TileSpawn {
			return Position{X: i % g.W, Y: i / g.W}
		}
	}
	return FallbackSpawn
}

// FindPursuerHomes returns all pursuer home tiles in row-major order.
func (g *Grid) FindPursuerHomes() []Position {
	var homes []Position
	for i, t := range g.Tiles {
		if t == TileHome {
			homes = append(homes, Position{X: i % g.W, Y: i / g.W})
		}
	}
	return homes
}

// CountPellets returns the number of pellet and power pellet tiles.
func (g *Grid) CountPellets() int {
	n := 0
	for _, t := range g.Tiles {
		if t.IsPellet() {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Tiles: make([]Tile, len(g.Tiles))}
	copy(c.Tiles, g.Tiles)
	return c
}

// String renders the tiles with the parse legend, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteByte(tileByte(g.Tiles[y*g.W+x]))
		}
	}
	return sb.String()
}

func tileByte(t Tile) byte {
	switch t {
	case TileWall:
		return '#'
	case TilePellet:
		return '.'
	case TilePowerPellet:
		return 'o'
	case TileHome:
		return 'H'
	case TileSpawn:
		return 'S'
	default:
		return ' '
	}
}
