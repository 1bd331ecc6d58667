// Package core provides platform-level types shared by the game and the
// terminal frontend. It has no Bubble Tea dependency so game code stays
// pure and testable.
package core

import (
	"strings"
)

// Cell is one character position of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D buffer of colored cells. Games draw into it and the
// platform turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the game
// redraws everything every frame anyway.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipping at the edges.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, c)
}

// DrawBox draws a filled box with a single-line border.
func (s *Screen) DrawBox(x, y, w, h int, c Color) {
	if w < 2 || h < 2 {
		return
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			top, bottom := row == y, row == y+h-1
			left, right := col == x, col == x+w-1
			switch {
			case top && left:
				s.SetCell(col, row, '┌', c)
			case top && right:
				s.SetCell(col, row, '┐', c)
			case bottom && left:
				s.SetCell(col, row, '└', c)
			case bottom && right:
				s.SetCell(col, row, '┘', c)
			case top || bottom:
				s.SetCell(col, row, '─', c)
			case left || right:
				s.SetCell(col, row, '│', c)
			default:
				s.SetCell(col, row, ' ', ColorDefault)
			}
		}
	}
}

// String converts the screen to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
