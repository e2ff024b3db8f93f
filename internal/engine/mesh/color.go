package mesh

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexColor converts a "#RRGGBB" hex string to normalized RGB
// components. The leading '#' is optional.
func ParseHexColor(s string) ([3]float32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return [3]float32{}, fmt.Errorf("invalid hex color %q", s)
	}

	var rgb [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]float32{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		rgb[i] = float32(v) / 255.0
	}
	return rgb, nil
}
