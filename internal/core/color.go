package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorWallEdge
	ColorPellet
	ColorPowerPellet
	ColorPlayer
	ColorPlayerBlink // Player while invulnerable or dashing
	ColorPursuer
	ColorPursuerAlt
	ColorFrozen
	ColorItem
	ColorHUD
	ColorHUDDim
	ColorAlert
)
