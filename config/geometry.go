package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// Geometry is an X11-style "WxH+X+Y" placement, measured in terminal cells
type Geometry struct {
	Width, Height int
	X, Y          int
}

var geometryRe = regexp.MustCompile(`^(?:(\d+)x(\d+))?(?:\+(\d+)\+(\d+))?$`)

// ParseGeometry accepts "", "WxH", "+X+Y" and "WxH+X+Y"
func ParseGeometry(s string) (Geometry, error) {
	m := geometryRe.FindStringSubmatch(s)
	if m == nil {
		return Geometry{}, fmt.Errorf("geometry %q: expected [WxH][+X+Y]", s)
	}

	var g Geometry
	fields := []*int{&g.Width, &g.Height, &g.X, &g.Y}
	for i, dst := range fields {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Geometry{}, fmt.Errorf("geometry %q: %w", s, err)
		}
		*dst = v
	}
	return g, nil
}
