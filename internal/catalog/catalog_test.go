package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	red  = colors.MustParseHex("#FF0000")
	cyan = colors.MustParseHex("#00FFFF")
	navy = colors.MustParseHex("#000080")
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return testDB
}

func TestColorIDGetOrCreate(t *testing.T) {
	testDB := setupTestDB(t)

	first, err := ColorID(testDB, "#AB12CD")
	if err != nil {
		t.Fatalf("ColorID failed: %v", err)
	}
	second, err := ColorID(testDB, "ab12cd")
	if err != nil {
		t.Fatalf("ColorID failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected same id for both spellings, got %d and %d", first, second)
	}

	var stored models.Color
	testDB.First(&stored, first)
	if stored.Name != "Color_ab12cd" {
		t.Errorf("Expected generated name Color_ab12cd, got %s", stored.Name)
	}

	// seeded colors keep their palette name
	redID, _ := ColorID(testDB, "#FF0000")
	c, err := ColorByID(testDB, redID)
	if err != nil || c != red {
		t.Errorf("ColorByID = %s, %v; want red", c, err)
	}

	if _, err := ColorID(testDB, "red"); !errors.Is(err, colors.ErrInvalidColorFormat) {
		t.Errorf("Expected ErrInvalidColorFormat, got %v", err)
	}
}

func TestSaveDesign(t *testing.T) {
	testDB := setupTestDB(t)

	d := designer.DefaultGenerator().TwoTone(navy, cyan, nil)
	combo, err := SaveDesign(testDB, SaveRequest{Name: "Marino y cian", Scheme: colors.Complementary, Design: d})
	if err != nil {
		t.Fatalf("SaveDesign failed: %v", err)
	}

	if combo.BagModel.Archetype != "two_tone" {
		t.Errorf("Expected two_tone bag model, got %s", combo.BagModel.Archetype)
	}
	if combo.PrincipalColorID == nil || combo.SecondaryColorID == nil || combo.HandleColorID == nil {
		t.Fatal("Expected all three role colors to be recorded")
	}

	loaded, err := GetCombination(testDB, combo.ID)
	if err != nil {
		t.Fatalf("GetCombination failed: %v", err)
	}
	if loaded.PrincipalColor.Hex != "000080" || loaded.SecondaryColor.Hex != "00ffff" {
		t.Errorf("Unexpected role colors: %+v %+v", loaded.PrincipalColor, loaded.SecondaryColor)
	}
	if loaded.Scheme != "complementary" {
		t.Errorf("Expected scheme complementary, got %s", loaded.Scheme)
	}

	decoded, err := LoadDesign(testDB, "Marino y cian")
	if err != nil {
		t.Fatalf("LoadDesign failed: %v", err)
	}
	if designer.RenderSVG(decoded) != designer.RenderSVG(d) {
		t.Error("Loaded design should render like the saved one")
	}
}

func TestSaveDesignDuplicateName(t *testing.T) {
	testDB := setupTestDB(t)

	d := designer.DefaultGenerator().Single(red, nil)
	if _, err := SaveDesign(testDB, SaveRequest{Name: "Rojo", Design: d}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	_, err := SaveDesign(testDB, SaveRequest{Name: " Rojo ", Design: d})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestSaveDesignBlankName(t *testing.T) {
	testDB := setupTestDB(t)

	d := designer.DefaultGenerator().Single(red, nil)
	for _, name := range []string{"", "   ", "\t"} {
		if _, err := SaveDesign(testDB, SaveRequest{Name: name, Design: d}); !errors.Is(err, ErrNameRequired) {
			t.Errorf("name %q: expected ErrNameRequired, got %v", name, err)
		}
	}
}

func TestSaveDesignBagModelMismatch(t *testing.T) {
	testDB := setupTestDB(t)

	single, err := GetBagModelByArchetype(testDB, designer.Single)
	if err != nil {
		t.Fatalf("GetBagModelByArchetype failed: %v", err)
	}

	d := designer.DefaultGenerator().TwoTone(red, cyan, nil)
	_, err = SaveDesign(testDB, SaveRequest{Name: "Mal modelo", BagModelID: single.ID, Design: d})
	if !errors.Is(err, designer.ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation, got %v", err)
	}

	_, err = SaveDesign(testDB, SaveRequest{Name: "Sin modelo", BagModelID: 999, Design: d})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	var count int64
	testDB.Model(&models.Combination{}).Count(&count)
	if count != 0 {
		t.Errorf("Failed saves should not leave rows, got %d", count)
	}
}

func TestSaveFreeformDesign(t *testing.T) {
	testDB := setupTestDB(t)

	d := designer.DefaultGenerator().Freeform()
	_ = d.AddElement(designer.Panel{Width: 300, Height: 400, Fill: navy})
	_ = d.AddElement(designer.Panel{X: 50, Y: 50, Width: 100, Height: 100, Fill: cyan})
	_ = d.AddElement(designer.Handle{X1: 75, X2: 105, Y2: -30, StrokeWidth: 10, Stroke: colors.White})

	combo, err := SaveDesign(testDB, SaveRequest{Name: "Bolsillo", Design: d})
	if err != nil {
		t.Fatalf("SaveDesign failed: %v", err)
	}

	principal, _ := ColorByID(testDB, *combo.PrincipalColorID)
	handle, _ := ColorByID(testDB, *combo.HandleColorID)
	if principal != navy || handle != colors.White {
		t.Errorf("Unexpected freeform role colors: %s %s", principal, handle)
	}
}

func TestListCombinationsNewestFirst(t *testing.T) {
	testDB := setupTestDB(t)

	g := designer.DefaultGenerator()
	older, _ := SaveDesign(testDB, SaveRequest{Name: "Primera", Design: g.Single(red, nil)})
	newer, _ := SaveDesign(testDB, SaveRequest{Name: "Segunda", Design: g.Single(cyan, nil)})
	testDB.Model(older).Update("created_at", time.Now().Add(-time.Hour))

	combos, err := ListCombinations(testDB)
	if err != nil {
		t.Fatalf("ListCombinations failed: %v", err)
	}
	if len(combos) != 2 {
		t.Fatalf("Expected 2 combinations, got %d", len(combos))
	}
	if combos[0].ID != newer.ID {
		t.Errorf("Expected newest combination first, got %s", combos[0].Name)
	}
}

func TestDeleteCombination(t *testing.T) {
	testDB := setupTestDB(t)

	combo, _ := SaveDesign(testDB, SaveRequest{Name: "Borrar", Design: designer.DefaultGenerator().Single(red, nil)})
	if _, err := CreateProduct(testDB, combo.ID, "", 0, 5); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if err := DeleteCombination(testDB, combo.ID); err != nil {
		t.Fatalf("DeleteCombination failed: %v", err)
	}
	if _, err := GetCombination(testDB, combo.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	products, _ := ListProducts(testDB, combo.ID)
	if len(products) != 0 {
		t.Errorf("Expected products to be deleted, got %d", len(products))
	}

	if err := DeleteCombination(testDB, combo.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for second delete, got %v", err)
	}
}

func TestCreateProductPricing(t *testing.T) {
	testDB := setupTestDB(t)

	combo, _ := SaveDesign(testDB, SaveRequest{Name: "Combinado azul", Design: designer.DefaultGenerator().TwoTone(navy, cyan, nil)})

	product, err := CreateProduct(testDB, combo.ID, "", 0, 3)
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if product.SuggestedPrice != 150 {
		t.Errorf("Expected two-tone price 150, got %v", product.SuggestedPrice)
	}
	if product.Name != "Combinado azul" {
		t.Errorf("Expected product named after combination, got %s", product.Name)
	}

	custom, _ := CreateProduct(testDB, combo.ID, "Edicion limitada", 180, 1)
	if custom.SuggestedPrice != 180 {
		t.Errorf("Expected explicit price to be kept, got %v", custom.SuggestedPrice)
	}

	if _, err := CreateProduct(testDB, 999, "", 0, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := CreateProduct(testDB, combo.ID, "", -1, 1); err == nil {
		t.Error("Expected error for negative price")
	}
}

func TestPalettes(t *testing.T) {
	testDB := setupTestDB(t)

	palettes, err := ListPalettes(testDB)
	if err != nil {
		t.Fatalf("ListPalettes failed: %v", err)
	}
	if len(palettes) != 4 || palettes[0].Name != "basica" {
		t.Fatalf("Unexpected palettes: %+v", palettes)
	}

	list, err := PaletteColors(testDB, palettes[0].ID)
	if err != nil {
		t.Fatalf("PaletteColors failed: %v", err)
	}
	if len(list) != 7 || list[0].Hex != "ff0000" {
		t.Errorf("Unexpected basica colors: %+v", list)
	}

	// contraste only holds colors basica already seeded
	contraste := palettes[3]
	if len(contraste.Colors) != 4 {
		t.Errorf("Expected contraste to preload 4 colors, got %d", len(contraste.Colors))
	}
	list, err = PaletteColors(testDB, contraste.ID)
	if err != nil {
		t.Fatalf("PaletteColors failed: %v", err)
	}
	if len(list) != 4 || list[0].Hex != "0000ff" || list[3].Hex != "000000" {
		t.Errorf("Unexpected contraste colors: %+v", list)
	}

	if _, err := PaletteColors(testDB, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestBagModels(t *testing.T) {
	testDB := setupTestDB(t)

	bagModels, err := ListBagModels(testDB)
	if err != nil || len(bagModels) != 3 {
		t.Fatalf("ListBagModels = %d, %v", len(bagModels), err)
	}

	m, err := GetBagModel(testDB, bagModels[2].ID)
	if err != nil || m.Archetype != "freeform" {
		t.Errorf("GetBagModel = %+v, %v", m, err)
	}

	if _, err := GetBagModelByArchetype(testDB, "backpack"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCanvas(t *testing.T) {
	testDB := setupTestDB(t)
	testDB.Model(&models.BagModel{}).Where("archetype = ?", "two_tone").Updates(map[string]interface{}{"width": 280, "height": 360})

	w, h, err := Canvas(testDB, designer.TwoTone, 0, 0)
	if err != nil || w != 280 || h != 360 {
		t.Errorf("Canvas from bag model = %gx%g, %v", w, h, err)
	}

	w, h, _ = Canvas(testDB, designer.TwoTone, 100, 0)
	if w != 100 || h != 360 {
		t.Errorf("Canvas with explicit width = %gx%g", w, h)
	}

	// negative sizes are left for the generator to reject
	w, _, _ = Canvas(testDB, designer.TwoTone, -5, 0)
	if w != -5 {
		t.Errorf("Expected -5 to be kept, got %g", w)
	}

	w, h, _ = Canvas(nil, designer.Single, 0, 0)
	if w != designer.DefaultWidth || h != designer.DefaultHeight {
		t.Errorf("Canvas without catalog = %gx%g", w, h)
	}

	// archetypes without a stored model fall back to the defaults
	testDB.Where("archetype = ?", "freeform").Delete(&models.BagModel{})
	w, h, err = Canvas(testDB, designer.Freeform, 0, 0)
	if err != nil || w != designer.DefaultWidth || h != designer.DefaultHeight {
		t.Errorf("Canvas for deleted model = %gx%g, %v", w, h, err)
	}
}
