package main

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestWriteDesignToStdoutKeepsSVGClean(t *testing.T) {
	d := designer.DefaultGenerator().TwoTone(colors.MustParseHex("#000080"), colors.MustParseHex("#00FFFF"), nil)

	var stdout, stderr bytes.Buffer
	report, err := writeDesign(&stdout, &stderr, d, colors.Complementary, "")
	if err != nil {
		t.Fatalf("writeDesign failed: %v", err)
	}
	if report != &stderr {
		t.Error("Report should go to stderr when the SVG is on stdout")
	}

	out := strings.TrimSpace(stdout.String())
	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Errorf("stdout should hold only the SVG, got %q", out)
	}
	if err := xml.Unmarshal([]byte(out), new(struct{})); err != nil {
		t.Errorf("stdout is not valid XML: %v", err)
	}
	if !strings.Contains(stderr.String(), "Harmony:") || !strings.Contains(stderr.String(), "Colors:") {
		t.Errorf("stderr should hold the report, got %q", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if _, err := writeDesign(&stdout, &stderr, d, colors.Complementary, "-"); err != nil {
		t.Fatalf("writeDesign failed: %v", err)
	}
	if strings.Contains(stdout.String(), "Harmony:") {
		t.Error("\"-\" should behave like stdout output")
	}
}

func TestWriteDesignToFile(t *testing.T) {
	d := designer.DefaultGenerator().Single(colors.MustParseHex("#FF0000"), nil)
	path := filepath.Join(t.TempDir(), "bag.svg")

	var stdout, stderr bytes.Buffer
	if _, err := writeDesign(&stdout, &stderr, d, colors.Harmonic, path); err != nil {
		t.Fatalf("writeDesign failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("SVG not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("Unexpected file content: %q", data)
	}
	if !strings.Contains(stdout.String(), "Written:") || stderr.Len() != 0 {
		t.Errorf("Report should go to stdout with a file, got stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

func TestBuildDesignFromFlagsCanvas(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := db.Seed(testDB); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	testDB.Model(&models.BagModel{}).Where("archetype = ?", "single").Updates(map[string]interface{}{"width": 200, "height": 250})

	designArchetype, designColors, designHandle, designFile = "single", []string{"#FF0000"}, "", ""
	designWidth, designHeight = 0, 0
	t.Cleanup(func() { designColors = nil })

	d, err := buildDesignFromFlags(testDB)
	if err != nil {
		t.Fatalf("buildDesignFromFlags failed: %v", err)
	}
	if d.Width != 200 || d.Height != 250 {
		t.Errorf("Expected the stored 200x250 canvas, got %gx%g", d.Width, d.Height)
	}

	designWidth = 150
	t.Cleanup(func() { designWidth = 0 })
	d, err = buildDesignFromFlags(testDB)
	if err != nil {
		t.Fatalf("buildDesignFromFlags failed: %v", err)
	}
	if d.Width != 150 || d.Height != 250 {
		t.Errorf("Expected the width flag to win, got %gx%g", d.Width, d.Height)
	}

	designWidth = 0
	d, err = buildDesignFromFlags(nil)
	if err != nil {
		t.Fatalf("buildDesignFromFlags failed: %v", err)
	}
	if d.Width != designer.DefaultWidth || d.Height != designer.DefaultHeight {
		t.Errorf("Expected the default canvas without a catalog, got %gx%g", d.Width, d.Height)
	}
}
