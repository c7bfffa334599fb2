// SPDX-License-Identifier: MIT
package colors

import "testing"

func TestContrastRatioBlackWhite(t *testing.T) {
	got := ContrastRatio(Black, White)
	if !near(got, 21, 1e-9) {
		t.Errorf("Expected 21:1 for black on white, got %f", got)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	samples := []string{"#FF0000", "#00FFFF", "#64748B", "#0F172A", "#F59E0B", "#FFFFFF", "#000000"}

	for _, a := range samples {
		for _, b := range samples {
			ca, cb := MustParseHex(a), MustParseHex(b)
			if ContrastRatio(ca, cb) != ContrastRatio(cb, ca) {
				t.Errorf("ContrastRatio(%s, %s) is not symmetric", a, b)
			}
			if ContrastRatio(ca, cb) < 1 {
				t.Errorf("ContrastRatio(%s, %s) below 1", a, b)
			}
		}
	}
}

func TestContrastRatioSelf(t *testing.T) {
	for _, hex := range []string{"#FF0000", "#123456", "#FFFFFF", "#000000"} {
		c := MustParseHex(hex)
		if got := ContrastRatio(c, c); got != 1.0 {
			t.Errorf("ContrastRatio(%s, %s) = %f, want 1", hex, hex, got)
		}
	}
}

func TestSuggestHandleColor(t *testing.T) {
	tests := []struct {
		name string
		body []string
		want Color
	}{
		{"black body", []string{"#000000"}, White},
		{"white body", []string{"#FFFFFF"}, Black},
		{"yellow body", []string{"#FFFF00"}, Black},
		{"navy body", []string{"#000080"}, White},
		{"navy and black", []string{"#000080", "#000000"}, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []Color
			for _, hex := range tt.body {
				body = append(body, MustParseHex(hex))
			}
			if got := SuggestHandleColor(body); got != tt.want {
				t.Errorf("SuggestHandleColor(%v) = %s, want %s", tt.body, got, tt.want)
			}
		})
	}
}

func TestSuggestHandleColorEmpty(t *testing.T) {
	if got := SuggestHandleColor(nil); got != Black {
		t.Errorf("Expected black for an empty body, got %s", got)
	}
}

func TestIsNeutral(t *testing.T) {
	if !IsNeutral(MustParseHex("#ffffff")) || !IsNeutral(MustParseHex("#000000")) {
		t.Error("white and black should be neutral")
	}
	if IsNeutral(MustParseHex("#010101")) {
		t.Error("near black should not be neutral")
	}
}
