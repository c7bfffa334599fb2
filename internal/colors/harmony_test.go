// SPDX-License-Identifier: MIT
package colors

import "testing"

func TestParseScheme(t *testing.T) {
	tests := map[string]Scheme{
		"":               Harmonic,
		"complementary":  Complementary,
		"Complementario": Complementary,
		" analogo ":      Analogous,
		"análogo":        Analogous,
		"armonico":       Harmonic,
		"HARMONIC":       Harmonic,
		"triadic":        Scheme("triadic"),
	}

	for input, want := range tests {
		if got := ParseScheme(input); got != want {
			t.Errorf("ParseScheme(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestComplementaryOf(t *testing.T) {
	red := MustParseHex("#FF0000")
	if got := ComplementaryOf(red); got != MustParseHex("#00FFFF") {
		t.Errorf("Expected cyan, got %s", got)
	}
}

func TestComplementaryTwiceIsIdentity(t *testing.T) {
	inputs := []string{"#FF0000", "#3366CC", "#FF69B4", "#808080", "#0F172A", "#F59E0B"}

	for _, input := range inputs {
		c := MustParseHex(input)
		back := ComplementaryOf(ComplementaryOf(c)).RGB()
		orig := c.RGB()
		if absInt(back.R-orig.R) > 1 || absInt(back.G-orig.G) > 1 || absInt(back.B-orig.B) > 1 {
			t.Errorf("complementary twice of %s = %+v", input, back)
		}
	}
}

func TestAnalogousOf(t *testing.T) {
	red := MustParseHex("#FF0000")
	pair := AnalogousOf(red, DefaultAnalogousAngle)

	// channels truncate: 0.5 * 255 becomes 127
	if pair[0] != MustParseHex("#ff007f") {
		t.Errorf("Expected #ff007f at -30, got %s", pair[0])
	}
	if pair[1] != MustParseHex("#ff7f00") {
		t.Errorf("Expected #ff7f00 at +30, got %s", pair[1])
	}
}

func TestTriadicOf(t *testing.T) {
	red := MustParseHex("#FF0000")
	pair := TriadicOf(red)

	if pair[0] != MustParseHex("#00FF00") {
		t.Errorf("Expected green at +120, got %s", pair[0])
	}
	if pair[1] != MustParseHex("#0000FF") {
		t.Errorf("Expected blue at +240, got %s", pair[1])
	}
}

func TestHueDistanceShortestArc(t *testing.T) {
	a := FromHSV(HSV{350, 100, 100})
	b := FromHSV(HSV{10, 100, 100})

	if d := HueDistance(a, b); d > 21 || d < 19 {
		t.Errorf("Expected ~20 degrees across 0, got %f", d)
	}
}

func TestValidateHarmony(t *testing.T) {
	red := MustParseHex("#FF0000")
	cyan := MustParseHex("#00FFFF")
	nearRed := MustParseHex("#FF1100")
	orange := MustParseHex("#FF8000")
	yellow := MustParseHex("#FFFF00")
	blue := MustParseHex("#0000FF")
	chartreuse := MustParseHex("#80FF00")

	tests := []struct {
		name   string
		colors []Color
		scheme Scheme
		want   bool
	}{
		{"empty", nil, Complementary, true},
		{"single complementary", []Color{red}, Complementary, true},
		{"single analogous", []Color{red}, Analogous, true},
		{"single harmonic", []Color{red}, Harmonic, true},
		{"red cyan complementary", []Color{red, cyan}, Complementary, true},
		{"red orange complementary", []Color{red, orange}, Complementary, false},
		{"complementary ignores third", []Color{red, cyan, nearRed}, Complementary, true},
		{"red orange yellow analogous", []Color{red, orange, yellow}, Analogous, true},
		{"red blue analogous", []Color{red, blue}, Analogous, false},
		{"analogous fails on a later pair", []Color{red, orange, yellow, blue}, Analogous, false},
		{"analogous checks consecutive pairs only", []Color{red, orange, yellow, chartreuse}, Analogous, true},
		{"near duplicate harmonic", []Color{red, nearRed}, Harmonic, false},
		{"red blue harmonic", []Color{red, blue}, Harmonic, true},
		{"spanish tag", []Color{red, cyan}, Scheme("complementario"), true},
		{"unknown scheme", []Color{red, nearRed}, Scheme("triadic"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateHarmony(tt.colors, tt.scheme); got != tt.want {
				t.Errorf("ValidateHarmony = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	red := MustParseHex("#FF0000")
	blue := MustParseHex("#0000FF")

	got := Suggest([]Color{red, blue}, Complementary)
	if len(got) != 1 || got[0] != MustParseHex("#00FFFF") {
		t.Errorf("Expected cyan suggestion, got %v", got)
	}

	got = Suggest([]Color{red, blue}, Analogous)
	if len(got) != 2 {
		t.Fatalf("Expected 2 analogous suggestions, got %d", len(got))
	}

	if got := Suggest([]Color{red, MustParseHex("#00FFFF")}, Complementary); got != nil {
		t.Errorf("Expected no suggestion for a valid pair, got %v", got)
	}

	if got := Suggest([]Color{red, MustParseHex("#FF1100")}, Harmonic); got != nil {
		t.Errorf("Expected no derivation for harmonic, got %v", got)
	}
}
