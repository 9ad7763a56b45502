package systems

import (
	"math"

	"github.com/automoto/typefall/components"
	dmath "github.com/yohamta/donburi/features/math"
)

// InBounds reports whether p lies inside the viewport rectangle centered at
// the origin. Edges count as inside.
func InBounds(vp components.ViewportData, p dmath.Vec2) bool {
	return math.Abs(p.X) <= vp.Width/2 && math.Abs(p.Y) <= vp.Height/2
}
