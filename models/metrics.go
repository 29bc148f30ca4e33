package models

import "fmt"

// Reading holds the values sampled for one indicator in one tick
type Reading struct {
	// Value is what the urgency band is applied to. For rate kinds it is
	// the larger of Primary and Secondary.
	Value float64
	// Primary and Secondary are rx/tx or read/write rates in bytes per second
	Primary   float64
	Secondary float64
	// Count is used by the containers kind
	Count int
}

// RGB is a label background color
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Label is what gets drawn for one indicator
type Label struct {
	Name       string
	Text       string
	Background RGB
	// Stale is set when this tick's read failed and the previous label was kept
	Stale bool
}
