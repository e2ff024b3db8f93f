// Package cabinet defines the panel data model and the part generator
// that produces panel lists for cabinet styles.
package cabinet

import "strings"

// Role identifies a panel's structural function within a cabinet.
// It drives exploded-view displacement and is assigned at generation
// time; free-text label classification exists only as a compatibility
// shim for panels arriving from outside the generator.
type Role int

const (
	RoleUnknown Role = iota // not classified yet
	RoleLeft
	RoleRight
	RoleTop
	RoleBottom
	RoleBack
	RoleShelf
	RoleDivider
	RoleStretcher
	RoleToe
	RoleStileRail
	RoleOther // classified, no structural match
)

var roleNames = map[Role]string{
	RoleUnknown:   "unknown",
	RoleLeft:      "left",
	RoleRight:     "right",
	RoleTop:       "top",
	RoleBottom:    "bottom",
	RoleBack:      "back",
	RoleShelf:     "shelf",
	RoleDivider:   "divider",
	RoleStretcher: "stretcher",
	RoleToe:       "toe",
	RoleStileRail: "stile-rail",
	RoleOther:     "other",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Panel is one rectangular cabinet part. X, Y, Z is the panel's center
// in a shared design space; Width, Height, Depth are full extents.
type Panel struct {
	Label  string
	Role   Role
	Width  float32
	Height float32
	Depth  float32
	X      float32
	Y      float32
	Z      float32
	Color  string // hex color, e.g. "#8B5A2B"
}

// EffectiveRole returns the panel's assigned role, falling back to
// label classification for panels that arrive untagged.
func (p Panel) EffectiveRole() Role {
	if p.Role != RoleUnknown {
		return p.Role
	}
	return ClassifyLabel(p.Label)
}

// ClassifyLabel maps a free-text panel label to a Role using
// case-insensitive substring matching, first match wins. "top",
// "bottom" and "back" must match the whole label so that e.g.
// "Top Rail" classifies by its rail substring instead.
func ClassifyLabel(label string) Role {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "stile") || strings.Contains(l, "rail"):
		return RoleStileRail
	case strings.Contains(l, "left"):
		return RoleLeft
	case strings.Contains(l, "right"):
		return RoleRight
	case l == "top":
		return RoleTop
	case l == "bottom":
		return RoleBottom
	case l == "back":
		return RoleBack
	case strings.Contains(l, "shelf"):
		return RoleShelf
	case strings.Contains(l, "divider"):
		return RoleDivider
	case strings.Contains(l, "stretcher"):
		return RoleStretcher
	case strings.Contains(l, "toe"):
		return RoleToe
	default:
		return RoleOther
	}
}
