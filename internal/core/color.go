package core

// Color represents a foreground color for a screen cell.
// Front-ends map it to ANSI 256-color codes.
type Color uint8

// Colors used when drawing the creek.
const (
	ColorDefault Color = iota
	ColorWater         // open water
	ColorDryLand       // land beyond the banks
	ColorBank          // bank edges
	ColorRock          // rocks in the water
	ColorMine          // mines in the water
	ColorRaft          // the player's raft
	ColorHUD           // score line and messages
	ColorAlert         // game-over box
)
