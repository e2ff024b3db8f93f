package viewer

import (
	"github.com/drewbus/cabview/internal/cabinet"
	"github.com/drewbus/cabview/pkg/math"
)

// ExplodeUnit is the base displacement distance in design-space units.
const ExplodeUnit = 3.0

// Offset returns the exploded-view displacement for a panel role. It
// is a pure function: when exploded is false every role maps to the
// zero vector, otherwise each role gets a fixed direction scaled by
// ExplodeUnit. Face-frame parts travel further so they clear the
// carcase front.
func Offset(role cabinet.Role, exploded bool) math.Vec3 {
	if !exploded {
		return math.Vec3{}
	}

	const k = ExplodeUnit
	switch role {
	case cabinet.RoleStileRail:
		return math.Vec3{Z: 1.5 * k}
	case cabinet.RoleLeft:
		return math.Vec3{X: -k}
	case cabinet.RoleRight:
		return math.Vec3{X: k}
	case cabinet.RoleTop:
		return math.Vec3{Y: k}
	case cabinet.RoleBottom:
		return math.Vec3{Y: -k}
	case cabinet.RoleBack:
		return math.Vec3{Z: -k}
	case cabinet.RoleShelf:
		return math.Vec3{Z: k}
	case cabinet.RoleDivider:
		return math.Vec3{X: 0.5 * k}
	case cabinet.RoleStretcher:
		return math.Vec3{Z: k}
	case cabinet.RoleToe:
		return math.Vec3{Y: -k}
	default:
		return math.Vec3{}
	}
}
