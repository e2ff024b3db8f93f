package cabinet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style describes one cabinet variant the generator can produce parts
// for. Dimensions are in design-space units (inches).
type Style struct {
	Name          string  `yaml:"name"`
	Kind          string  `yaml:"kind"` // "base", "wall" or "tall"
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	Depth         float32 `yaml:"depth"`
	Thickness     float32 `yaml:"thickness"`
	BackThickness float32 `yaml:"back_thickness"`
	Shelves       int     `yaml:"shelves"`
	Divider       bool    `yaml:"divider"`
	FaceFrame     bool    `yaml:"face_frame"`
	ToeKick       float32 `yaml:"toe_kick"` // height, 0 = none
}

// Catalog is an ordered set of cabinet styles addressed by index.
type Catalog struct {
	Styles []Style `yaml:"cabinets"`
}

// Per-role panel colors, wood tones.
var roleColors = map[Role]string{
	RoleLeft:      "#8B5A2B",
	RoleRight:     "#8B5A2B",
	RoleTop:       "#A0522D",
	RoleBottom:    "#A0522D",
	RoleBack:      "#DEB887",
	RoleShelf:     "#CD853F",
	RoleDivider:   "#B8860B",
	RoleStretcher: "#996633",
	RoleToe:       "#5C4033",
	RoleStileRail: "#C19A6B",
}

// DefaultCatalog returns the built-in cabinet styles.
func DefaultCatalog() *Catalog {
	return &Catalog{Styles: []Style{
		{
			Name: "Base Cabinet 24", Kind: "base",
			Width: 24, Height: 34.5, Depth: 24,
			Thickness: 0.75, BackThickness: 0.25,
			Shelves: 1, FaceFrame: true, ToeKick: 4,
		},
		{
			Name: "Wall Cabinet 30", Kind: "wall",
			Width: 30, Height: 30, Depth: 12,
			Thickness: 0.75, BackThickness: 0.25,
			Shelves: 2,
		},
		{
			Name: "Base Cabinet 36 Divided", Kind: "base",
			Width: 36, Height: 34.5, Depth: 24,
			Thickness: 0.75, BackThickness: 0.25,
			Shelves: 1, Divider: true, ToeKick: 4,
		},
		{
			Name: "Tall Pantry", Kind: "tall",
			Width: 24, Height: 84, Depth: 24,
			Thickness: 0.75, BackThickness: 0.25,
			Shelves: 4, FaceFrame: true, ToeKick: 4,
		},
	}}
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(c.Styles) == 0 {
		return nil, fmt.Errorf("catalog %s contains no cabinets", path)
	}
	for i, s := range c.Styles {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("catalog %s, cabinet %d (%s): %w", path, i, s.Name, err)
		}
	}
	return &c, nil
}

func (s Style) validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
		return fmt.Errorf("dimensions must be positive, got %gx%gx%g", s.Width, s.Height, s.Depth)
	}
	if s.Thickness <= 0 || s.Thickness*2 >= s.Width {
		return fmt.Errorf("invalid stock thickness %g for width %g", s.Thickness, s.Width)
	}
	if s.BackThickness <= 0 {
		return fmt.Errorf("back thickness must be positive, got %g", s.BackThickness)
	}
	if s.Shelves < 0 {
		return fmt.Errorf("shelf count must not be negative, got %d", s.Shelves)
	}
	if s.ToeKick < 0 || s.ToeKick >= s.Height/2 {
		return fmt.Errorf("invalid toe kick height %g for height %g", s.ToeKick, s.Height)
	}
	return nil
}

// Len reports the number of styles in the catalog.
func (c *Catalog) Len() int {
	return len(c.Styles)
}

// Name returns the display name of the style at index.
func (c *Catalog) Name(index int) string {
	if index < 0 || index >= len(c.Styles) {
		return ""
	}
	return c.Styles[index].Name
}

// Generate produces the panel list for the style at the given catalog
// index. Output is deterministic: the same index always yields the same
// panels in the same order.
func (c *Catalog) Generate(index int) ([]Panel, error) {
	if index < 0 || index >= len(c.Styles) {
		return nil, fmt.Errorf("cabinet index %d out of range [0,%d)", index, len(c.Styles))
	}
	return c.Styles[index].panels(), nil
}

// panels lays out the style's parts in a shared design space:
// X runs left to right, Y bottom to top, Z back (0) to front (Depth).
func (s Style) panels() []Panel {
	w, h, d := s.Width, s.Height, s.Depth
	t := s.Thickness
	bt := s.BackThickness
	toe := s.ToeKick

	var parts []Panel
	add := func(label string, role Role, size [3]float32, center [3]float32) {
		parts = append(parts, Panel{
			Label: label,
			Role:  role,
			Width: size[0], Height: size[1], Depth: size[2],
			X: center[0], Y: center[1], Z: center[2],
			Color: roleColors[role],
		})
	}

	add("Left Side", RoleLeft, [3]float32{t, h, d}, [3]float32{t / 2, h / 2, d / 2})
	add("Right Side", RoleRight, [3]float32{t, h, d}, [3]float32{w - t/2, h / 2, d / 2})
	add("Bottom", RoleBottom, [3]float32{w - 2*t, t, d}, [3]float32{w / 2, toe + t/2, d / 2})

	if s.Kind == "base" {
		// Base cabinets take a countertop, so the top is two flat
		// stretchers instead of a full panel.
		const stretcherDepth = 4
		add("Front Stretcher", RoleStretcher,
			[3]float32{w - 2*t, t, stretcherDepth},
			[3]float32{w / 2, h - t/2, d - stretcherDepth/2})
		add("Back Stretcher", RoleStretcher,
			[3]float32{w - 2*t, t, stretcherDepth},
			[3]float32{w / 2, h - t/2, bt + stretcherDepth/2})
	} else {
		add("Top", RoleTop, [3]float32{w - 2*t, t, d}, [3]float32{w / 2, h - t/2, d / 2})
	}

	add("Back", RoleBack,
		[3]float32{w - 2*t, h - toe, bt},
		[3]float32{w / 2, toe + (h-toe)/2, bt / 2})

	// Shelves sit evenly spaced in the interior, slightly short of the
	// carcase depth for clearance.
	lowY := toe + t
	highY := h - t
	for i := 1; i <= s.Shelves; i++ {
		label := "Adjustable Shelf"
		if s.Shelves > 1 {
			label = fmt.Sprintf("Adjustable Shelf %d", i)
		}
		y := lowY + (highY-lowY)*float32(i)/float32(s.Shelves+1)
		add(label, RoleShelf,
			[3]float32{w - 2*t - 0.25, t, d - bt - 1},
			[3]float32{w / 2, y, bt + (d-bt)/2})
	}

	if s.Divider {
		add("Center Divider", RoleDivider,
			[3]float32{t, h - toe - 2*t, d - bt},
			[3]float32{w / 2, toe + t + (h-toe-2*t)/2, bt + (d-bt)/2})
	}

	if toe > 0 {
		// Toe kick board is recessed behind the cabinet front.
		add("Toe Kick", RoleToe,
			[3]float32{w - 2*t, toe, t},
			[3]float32{w / 2, toe / 2, d - 3 - t/2})
	}

	if s.FaceFrame {
		const (
			stileWidth = 2
			railHeight = 2
			frameDepth = 0.75
		)
		frameZ := d + frameDepth/2
		frameH := h - toe
		frameY := toe + frameH/2
		add("Left Stile", RoleStileRail,
			[3]float32{stileWidth, frameH, frameDepth},
			[3]float32{stileWidth / 2, frameY, frameZ})
		add("Right Stile", RoleStileRail,
			[3]float32{stileWidth, frameH, frameDepth},
			[3]float32{w - stileWidth/2, frameY, frameZ})
		add("Top Rail", RoleStileRail,
			[3]float32{w - 2*stileWidth, railHeight, frameDepth},
			[3]float32{w / 2, h - railHeight/2, frameZ})
		add("Bottom Rail", RoleStileRail,
			[3]float32{w - 2*stileWidth, railHeight, frameDepth},
			[3]float32{w / 2, toe + railHeight/2, frameZ})
	}

	return parts
}
