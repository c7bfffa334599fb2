package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/quotes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestParseLineArg(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	combo, err := catalog.SaveDesign(testDB, catalog.SaveRequest{
		Name:   "Rojo: edicion feria",
		Design: designer.DefaultGenerator().Single(colors.MustParseHex("#FF0000"), nil),
	})
	if err != nil {
		t.Fatalf("SaveDesign failed: %v", err)
	}

	l, err := parseLineArg(testDB, "Rojo: edicion feria:12")
	if err != nil {
		t.Fatalf("parseLineArg by name failed: %v", err)
	}
	if l.CombinationID != combo.ID || l.Quantity != 12 {
		t.Errorf("Unexpected line %+v", l)
	}

	l, err = parseLineArg(testDB, "7:3")
	if err != nil {
		t.Fatalf("parseLineArg by id failed: %v", err)
	}
	if l.CombinationID != 7 || l.Quantity != 3 {
		t.Errorf("Unexpected line %+v", l)
	}

	for _, bad := range []string{"Rojo", ":4", "Rojo: edicion feria:x"} {
		if _, err := parseLineArg(testDB, bad); err == nil {
			t.Errorf("parseLineArg(%q) should fail", bad)
		}
	}
	if _, err := parseLineArg(testDB, "Azul:2"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unknown combination, got %v", err)
	}
}

func TestReadQuotationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.yaml")
	yamlData := `client_id: 3
notes: feria de mayo
lines:
  - combination_id: 4
    quantity: 2
    unit_price: 140
  - combination_id: 5
    quantity: 10
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write quotation file: %v", err)
	}

	req, err := readQuotationFile(path)
	if err != nil {
		t.Fatalf("readQuotationFile failed: %v", err)
	}
	want := quotes.QuotationRequest{
		ClientID: 3,
		Notes:    "feria de mayo",
		Lines: []quotes.LineRequest{
			{CombinationID: 4, Quantity: 2, UnitPrice: 140},
			{CombinationID: 5, Quantity: 10},
		},
	}
	if req.ClientID != want.ClientID || req.Notes != want.Notes || len(req.Lines) != 2 ||
		req.Lines[0] != want.Lines[0] || req.Lines[1] != want.Lines[1] {
		t.Errorf("Expected %+v, got %+v", want, req)
	}

	if _, err := readQuotationFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("A missing file should fail")
	}
}

func TestParseUseArg(t *testing.T) {
	u, err := parseUseArg("2:1.5")
	if err != nil {
		t.Fatalf("parseUseArg failed: %v", err)
	}
	if u != (quotes.MaterialUse{MaterialID: 2, Quantity: 1.5}) {
		t.Errorf("Unexpected use %+v", u)
	}

	for _, bad := range []string{"2", "tela:1", "2:mucho"} {
		if _, err := parseUseArg(bad); err == nil {
			t.Errorf("parseUseArg(%q) should fail", bad)
		}
	}
}

func TestQuoteCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"client", "add"}, {"quote", "create"}, {"quote", "status"},
		{"order", "board"}, {"material", "cost"}, {"material", "low"},
	} {
		cmd, _, err := rootCmd.Find(path)
		if err != nil || cmd.Name() != path[1] {
			t.Errorf("Command %v not registered: %v", path, err)
		}
	}
}
