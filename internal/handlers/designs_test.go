// SPDX-License-Identifier: MIT
package handlers

import (
	"strings"
	"testing"

	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/models"
)

func TestListModelsHandler(t *testing.T) {
	w := call(t, ListModelsHandler, "GET", "/api/models", nil)
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	list := decode(t, w)["models"].([]interface{})
	if len(list) != 3 {
		t.Fatalf("Expected 3 models, got %d", len(list))
	}
	first := list[0].(map[string]interface{})
	if first["archetype"] != "single" || first["unit_price"] != 120.0 {
		t.Errorf("Unexpected first model: %v", first)
	}

	schemes := decode(t, w)["schemes"].([]interface{})
	if len(schemes) != 3 || schemes[0] != "harmonic" {
		t.Errorf("Unexpected schemes: %v", schemes)
	}
}

func TestCreateDesignSingle(t *testing.T) {
	w := call(t, CreateDesignHandler, "POST", "/api/designs", map[string]interface{}{
		"archetype": "simple",
		"colors":    []string{"#FF0000"},
	})
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if body["success"] != true {
		t.Errorf("Expected success, got %s", w.Body.String())
	}
	svg, _ := body["svg"].(string)
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, "<path") {
		t.Errorf("Unexpected svg: %s", svg)
	}
	design := body["design"].(map[string]interface{})
	if design["archetype"] != "single" {
		t.Errorf("Expected archetype single, got %v", design["archetype"])
	}
}

func TestCreateDesignWarning(t *testing.T) {
	w := call(t, CreateDesignHandler, "POST", "/api/designs", map[string]interface{}{
		"archetype": "two_tone",
		"colors":    []string{"#FF0000", "#FF8000"},
		"scheme":    "complementary",
	})
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if _, ok := body["warning"]; !ok {
		t.Fatalf("Expected warning, got %s", w.Body.String())
	}
	if _, ok := body["success"]; ok {
		t.Error("Warning responses should not claim success")
	}
	if body["svg"] == "" {
		t.Error("Warning responses still carry the drawing")
	}
	suggestions := body["suggestions"].([]interface{})
	if len(suggestions) != 1 || suggestions[0] != "#00ffff" {
		t.Errorf("Expected [#00ffff], got %v", suggestions)
	}
}

func TestCreateDesignFreeform(t *testing.T) {
	w := call(t, CreateDesignHandler, "POST", "/api/designs", map[string]interface{}{
		"archetype": "especial",
		"elements": []map[string]interface{}{
			{"type": "panel", "width": 300, "height": 400, "color": "#000080"},
			{"type": "handle", "x1": 75, "x2": 105, "y2": -30, "stroke_width": 10, "color": "#ffffff"},
		},
	})
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(decode(t, w)["svg"].(string), `M 75,0 Q 90,-30 105,0`) {
		t.Errorf("Unexpected svg: %s", w.Body.String())
	}
}

func TestCreateDesignErrors(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"unknown archetype", map[string]interface{}{"archetype": "backpack", "colors": []string{"#FF0000"}}},
		{"missing colors", map[string]interface{}{"archetype": "two_tone", "colors": []string{"#FF0000"}}},
		{"bad color", map[string]interface{}{"archetype": "single", "colors": []string{"#GG0000"}}},
		{"bad handle", map[string]interface{}{"archetype": "single", "colors": []string{"#FF0000"}, "handle": "white"}},
		{"out of bounds", map[string]interface{}{
			"archetype": "freeform",
			"elements":  []map[string]interface{}{{"type": "panel", "x": 290, "width": 50, "height": 10, "color": "#ff0000"}},
		}},
		{"elements on single", map[string]interface{}{
			"archetype": "single",
			"colors":    []string{"#FF0000"},
			"elements":  []map[string]interface{}{{"type": "panel", "width": 10, "height": 10, "color": "#ff0000"}},
		}},
		{"malformed", "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(t, CreateDesignHandler, "POST", "/api/designs", tt.body)
			if w.Code != 400 {
				t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			if _, ok := decode(t, w)["error"]; !ok {
				t.Error("Expected error field")
			}
		})
	}
}

func TestCreateDesignUsesBagModelCanvas(t *testing.T) {
	database := setupHandlerTestDB(t)
	t.Cleanup(func() { db.SetDB(nil) })
	database.Model(&models.BagModel{}).Where("archetype = ?", "single").Updates(map[string]interface{}{"width": 200, "height": 260})

	w := call(t, CreateDesignHandler, "POST", "/api/designs", map[string]interface{}{
		"archetype": "single",
		"colors":    []string{"#FF0000"},
	})
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	design := decode(t, w)["design"].(map[string]interface{})
	if design["width"] != 200.0 || design["height"] != 260.0 {
		t.Errorf("Expected the bag model canvas, got %vx%v", design["width"], design["height"])
	}

	w = call(t, CreateDesignHandler, "POST", "/api/designs", map[string]interface{}{
		"archetype": "single",
		"width":     120,
		"colors":    []string{"#FF0000"},
	})
	design = decode(t, w)["design"].(map[string]interface{})
	if design["width"] != 120.0 || design["height"] != 260.0 {
		t.Errorf("Expected an explicit width to win, got %vx%v", design["width"], design["height"])
	}
}
