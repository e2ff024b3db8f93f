package cabinet

import "testing"

func TestClassifyLabel(t *testing.T) {
	cases := []struct {
		label string
		want  Role
	}{
		{"Left Side", RoleLeft},
		{"Right Side", RoleRight},
		{"Top", RoleTop},
		{"top", RoleTop},
		{"Bottom", RoleBottom},
		{"Back", RoleBack},
		{"Adjustable Shelf", RoleShelf},
		{"Adjustable Shelf 2", RoleShelf},
		{"Center Divider", RoleDivider},
		{"Front Stretcher", RoleStretcher},
		{"Toe Kick", RoleToe},
		{"Left Stile", RoleStileRail},  // stile/rail wins over left
		{"Top Rail", RoleStileRail},    // not an exact "top" match
		{"Bottom Rail", RoleStileRail}, // not an exact "bottom" match
		{"Countertop", RoleOther},      // "top" only matches whole labels
		{"Drawer Front", RoleOther},
		{"", RoleOther},
	}

	for _, tc := range cases {
		if got := ClassifyLabel(tc.label); got != tc.want {
			t.Errorf("ClassifyLabel(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestEffectiveRole(t *testing.T) {
	tagged := Panel{Label: "Left Side", Role: RoleShelf}
	if got := tagged.EffectiveRole(); got != RoleShelf {
		t.Errorf("tagged panel EffectiveRole() = %v, want %v", got, RoleShelf)
	}

	untagged := Panel{Label: "Left Side"}
	if got := untagged.EffectiveRole(); got != RoleLeft {
		t.Errorf("untagged panel EffectiveRole() = %v, want %v", got, RoleLeft)
	}
}

func TestRoleString(t *testing.T) {
	if got := RoleStileRail.String(); got != "stile-rail" {
		t.Errorf("RoleStileRail.String() = %q, want %q", got, "stile-rail")
	}
	if got := Role(999).String(); got != "unknown" {
		t.Errorf("Role(999).String() = %q, want %q", got, "unknown")
	}
}
