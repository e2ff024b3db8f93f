package mesh

import "testing"

func TestParseHexColor(t *testing.T) {
	rgb, err := ParseHexColor("#FF8000")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if rgb[0] != 1.0 {
		t.Errorf("red = %v, want 1.0", rgb[0])
	}
	if rgb[1] < 0.50 || rgb[1] > 0.51 {
		t.Errorf("green = %v, want ~0.502", rgb[1])
	}
	if rgb[2] != 0.0 {
		t.Errorf("blue = %v, want 0.0", rgb[2])
	}
}

func TestParseHexColorNoHash(t *testing.T) {
	rgb, err := ParseHexColor("000000")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if rgb != [3]float32{} {
		t.Errorf("black = %v, want zeros", rgb)
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, s := range []string{"", "#fff", "#GGGGGG", "#12345", "not a color"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", s)
		}
	}
}
