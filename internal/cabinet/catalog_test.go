package cabinet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogStyles(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for i, s := range c.Styles {
		if err := s.validate(); err != nil {
			t.Errorf("style %d (%s) fails validation: %v", i, s.Name, err)
		}
	}
}

func TestGenerateOutOfRange(t *testing.T) {
	c := DefaultCatalog()
	if _, err := c.Generate(-1); err == nil {
		t.Error("Generate(-1) succeeded, want error")
	}
	if _, err := c.Generate(c.Len()); err == nil {
		t.Errorf("Generate(%d) succeeded, want error", c.Len())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c := DefaultCatalog()
	a, err := c.Generate(0)
	if err != nil {
		t.Fatalf("Generate(0) failed: %v", err)
	}
	b, err := c.Generate(0)
	if err != nil {
		t.Fatalf("Generate(0) failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("repeated Generate produced %d then %d panels", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("panel %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratePanelsAreConsistent(t *testing.T) {
	c := DefaultCatalog()
	for idx := 0; idx < c.Len(); idx++ {
		panels, err := c.Generate(idx)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", idx, err)
		}
		if len(panels) == 0 {
			t.Fatalf("Generate(%d) produced no panels", idx)
		}

		seen := map[string]bool{}
		for _, p := range panels {
			if p.Label == "" {
				t.Errorf("cabinet %d has a panel with an empty label", idx)
			}
			if seen[p.Label] {
				t.Errorf("cabinet %d has duplicate label %q", idx, p.Label)
			}
			seen[p.Label] = true

			if p.Width <= 0 || p.Height <= 0 || p.Depth <= 0 {
				t.Errorf("cabinet %d panel %q has non-positive extents %gx%gx%g",
					idx, p.Label, p.Width, p.Height, p.Depth)
			}
			if p.Role == RoleUnknown {
				t.Errorf("cabinet %d panel %q generated without a role", idx, p.Label)
			}
			if p.Color == "" {
				t.Errorf("cabinet %d panel %q has no color", idx, p.Label)
			}

			// The label shim must agree with the generated tag, so
			// downstream consumers can rely on either.
			if got := ClassifyLabel(p.Label); got != p.Role {
				t.Errorf("cabinet %d panel %q tagged %v but classifies as %v",
					idx, p.Label, p.Role, got)
			}
		}
	}
}

func TestBaseCabinetParts(t *testing.T) {
	c := DefaultCatalog()
	panels, err := c.Generate(0) // Base Cabinet 24
	if err != nil {
		t.Fatalf("Generate(0) failed: %v", err)
	}

	byLabel := map[string]Panel{}
	for _, p := range panels {
		byLabel[p.Label] = p
	}

	for _, label := range []string{
		"Left Side", "Right Side", "Bottom", "Back",
		"Front Stretcher", "Back Stretcher",
		"Adjustable Shelf", "Toe Kick",
		"Left Stile", "Right Stile", "Top Rail", "Bottom Rail",
	} {
		if _, ok := byLabel[label]; !ok {
			t.Errorf("base cabinet is missing %q", label)
		}
	}
	if _, ok := byLabel["Top"]; ok {
		t.Error("base cabinet should have stretchers, not a top panel")
	}

	left := byLabel["Left Side"]
	right := byLabel["Right Side"]
	if left.X >= right.X {
		t.Errorf("left side at x=%g is not left of right side at x=%g", left.X, right.X)
	}
	if left.Height != 34.5 {
		t.Errorf("side height = %g, want 34.5", left.Height)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cabinets.yaml")

	content := []byte(`
cabinets:
  - name: Test Wall
    kind: wall
    width: 30
    height: 30
    depth: 12
    thickness: 0.75
    back_thickness: 0.25
    shelves: 1
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 style, got %d", c.Len())
	}
	if c.Name(0) != "Test Wall" {
		t.Errorf("Name(0) = %q, want %q", c.Name(0), "Test Wall")
	}

	panels, err := c.Generate(0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	found := false
	for _, p := range panels {
		if p.Label == "Top" {
			found = true
		}
	}
	if !found {
		t.Error("wall cabinet should include a top panel")
	}
}

func TestLoadCatalogRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	content := []byte(`
cabinets:
  - name: Bad
    kind: wall
    width: 0
    height: 30
    depth: 12
    thickness: 0.75
    back_thickness: 0.25
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog accepted a zero-width cabinet")
	}
}
