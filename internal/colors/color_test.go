// SPDX-License-Identifier: MIT
package colors

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
	}{
		{"#FF0000", RGB{255, 0, 0}},
		{"00ff00", RGB{0, 255, 0}},
		{"  #0000Ff ", RGB{0, 0, 255}},
		{"ff69b4", RGB{255, 105, 180}},
	}

	for _, tt := range tests {
		c, err := ParseHex(tt.input)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", tt.input, err)
		}
		if c.RGB() != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, c.RGB(), tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	inputs := []string{"", "#fff", "ff000", "ff00000", "gg0000", "#12345z", "##ff0000", "+12345"}

	for _, input := range inputs {
		if _, err := ParseHex(input); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColorFormat", input, err)
		}
		if _, err := HexToRGB(input); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("HexToRGB(%q) error = %v, want ErrInvalidColorFormat", input, err)
		}
	}
}

func TestHexRoundTripIsLowercase(t *testing.T) {
	inputs := map[string]string{
		"#FFFFFF": "ffffff",
		"AbCdEf":  "abcdef",
		"#0a0B0c": "0a0b0c",
	}

	for input, want := range inputs {
		rgb, err := HexToRGB(input)
		if err != nil {
			t.Fatalf("HexToRGB(%q) failed: %v", input, err)
		}
		if got := RGBToHex(rgb); got != want {
			t.Errorf("RGBToHex(HexToRGB(%q)) = %q, want %q", input, got, want)
		}
	}
}

func TestRGBToHexClamps(t *testing.T) {
	if got := RGBToHex(RGB{300, -20, 128}); got != "ff0080" {
		t.Errorf("Expected clamped hex ff0080, got %s", got)
	}
}

func TestColorString(t *testing.T) {
	c := MustParseHex("FF1100")
	if c.Hex() != "ff1100" {
		t.Errorf("Expected canonical hex ff1100, got %s", c.Hex())
	}
	if c.String() != "#ff1100" {
		t.Errorf("Expected #ff1100, got %s", c.String())
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want HSV
	}{
		{RGB{255, 0, 0}, HSV{0, 100, 100}},
		{RGB{0, 255, 255}, HSV{180, 100, 100}},
		{RGB{0, 0, 0}, HSV{0, 0, 0}},
		{RGB{255, 255, 255}, HSV{0, 0, 100}},
		{RGB{0, 0, 255}, HSV{240, 100, 100}},
	}

	for _, tt := range tests {
		got := RGBToHSV(tt.rgb)
		if !near(got.H, tt.want.H, 1e-6) || !near(got.S, tt.want.S, 1e-6) || !near(got.V, tt.want.V, 1e-6) {
			t.Errorf("RGBToHSV(%+v) = %+v, want %+v", tt.rgb, got, tt.want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 51 {
				in := RGB{r, g, b}
				out := HSVToRGB(RGBToHSV(in))
				if absInt(out.R-in.R) > 1 || absInt(out.G-in.G) > 1 || absInt(out.B-in.B) > 1 {
					t.Fatalf("round trip of %+v produced %+v", in, out)
				}
			}
		}
	}
}

func TestHSVToRGBNormalizesHue(t *testing.T) {
	if got := HSVToRGB(HSV{360, 100, 100}); got != (RGB{255, 0, 0}) {
		t.Errorf("Expected hue 360 to wrap to red, got %+v", got)
	}
	if got := HSVToRGB(HSV{-120, 100, 100}); got != (RGB{0, 0, 255}) {
		t.Errorf("Expected hue -120 to wrap to blue, got %+v", got)
	}
}

func TestColorJSON(t *testing.T) {
	payload := struct {
		Body Color `json:"body"`
	}{Body: MustParseHex("#123ABC")}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"body":"#123abc"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded struct {
		Body Color `json:"body"`
	}
	if err := json.Unmarshal([]byte(`{"body":"FF0000"}`), &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Body != MustParseHex("ff0000") {
		t.Errorf("Expected red, got %s", decoded.Body)
	}

	if err := json.Unmarshal([]byte(`{"body":"red"}`), &decoded); err == nil {
		t.Error("Expected error for non-hex color")
	}
}

func near(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
