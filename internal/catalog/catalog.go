// SPDX-License-Identifier: MIT

// Package catalog stores bag designs, their colors and the products made from them.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/pricing"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("name already in use")
	ErrNameRequired  = errors.New("name is required")
)

func notFound(err error, what string, key interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %v", ErrNotFound, what, key)
	}
	return fmt.Errorf("failed to load %s %v: %w", what, key, err)
}

// ColorID returns the id of the catalog color with the given hex, creating it if needed.
// "#FF0000" and "ff0000" resolve to the same row.
func ColorID(db *gorm.DB, hex string) (uint, error) {
	c, err := colors.ParseHex(hex)
	if err != nil {
		return 0, err
	}

	color := models.Color{Hex: c.Hex(), Name: "Color_" + c.Hex()}
	if err := db.Where(models.Color{Hex: c.Hex()}).FirstOrCreate(&color).Error; err != nil {
		return 0, fmt.Errorf("failed to store color %s: %w", c, err)
	}
	return color.ID, nil
}

// ColorByID loads a catalog color
func ColorByID(db *gorm.DB, id uint) (colors.Color, error) {
	var color models.Color
	if err := db.First(&color, id).Error; err != nil {
		return colors.Color{}, notFound(err, "color", id)
	}
	return colors.ParseHex(color.Hex)
}

// SaveRequest describes a design to be stored as a named combination
type SaveRequest struct {
	Name       string
	BagModelID uint // zero picks the bag model matching the design archetype
	Scheme     colors.Scheme
	Design     *designer.Design
}

// SaveDesign stores a design under a unique name
func SaveDesign(db *gorm.DB, req SaveRequest) (*models.Combination, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: combination", ErrNameRequired)
	}
	if req.Design == nil {
		return nil, fmt.Errorf("%w: no design to save", designer.ErrInvalidOperation)
	}
	scheme := req.Scheme
	if scheme == "" {
		scheme = colors.Harmonic
	}

	payload, err := json.Marshal(req.Design)
	if err != nil {
		return nil, fmt.Errorf("failed to encode design: %w", err)
	}

	var combo *models.Combination
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Combination
		if err := tx.Where("name = ?", name).First(&existing).Error; err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check combination name: %w", err)
		}

		model, err := resolveBagModel(tx, req.BagModelID, req.Design.Archetype)
		if err != nil {
			return err
		}

		combo = &models.Combination{
			Name:       name,
			BagModelID: model.ID,
			Scheme:     string(scheme),
			DesignJSON: string(payload),
		}

		principal, secondary, handle := roleColors(req.Design)
		for _, slot := range []struct {
			color *colors.Color
			id    **uint
		}{
			{principal, &combo.PrincipalColorID},
			{secondary, &combo.SecondaryColorID},
			{handle, &combo.HandleColorID},
		} {
			if slot.color == nil {
				continue
			}
			id, err := ColorID(tx, slot.color.Hex())
			if err != nil {
				return err
			}
			*slot.id = &id
		}

		if err := tx.Create(combo).Error; err != nil {
			return fmt.Errorf("failed to create combination: %w", err)
		}
		combo.BagModel = *model
		return nil
	})
	if err != nil {
		return nil, err
	}
	return combo, nil
}

func resolveBagModel(db *gorm.DB, id uint, archetype designer.Archetype) (*models.BagModel, error) {
	if id == 0 {
		return GetBagModelByArchetype(db, archetype)
	}
	model, err := GetBagModel(db, id)
	if err != nil {
		return nil, err
	}
	if model.Archetype != string(archetype) {
		return nil, fmt.Errorf("%w: bag model %s is %s, design is %s",
			designer.ErrInvalidOperation, model.Name, model.Archetype, archetype)
	}
	return model, nil
}

// roleColors picks the colors recorded on the combination row. Freeform designs
// have no fixed roles, so their first two colors and first handle stand in.
func roleColors(d *designer.Design) (principal, secondary, handle *colors.Color) {
	get := func(role string) *colors.Color {
		if c, ok := d.ColorsUsed.Get(role); ok {
			return &c
		}
		return nil
	}

	if d.Archetype != designer.Freeform {
		return get(designer.RolePrincipal), get(designer.RoleSecondary), get(designer.RoleHandle)
	}

	used := d.ColorsUsed.Colors()
	if len(used) > 0 {
		principal = &used[0]
	}
	if len(used) > 1 {
		secondary = &used[1]
	}
	for _, e := range d.Elements {
		if h, ok := e.(designer.Handle); ok {
			c := h.Stroke
			handle = &c
			break
		}
	}
	return principal, secondary, handle
}

func preloadCombination(db *gorm.DB) *gorm.DB {
	return db.Preload("BagModel").
		Preload("PrincipalColor").
		Preload("SecondaryColor").
		Preload("HandleColor")
}

// GetCombination retrieves a combination by ID
func GetCombination(db *gorm.DB, id uint) (*models.Combination, error) {
	var combo models.Combination
	if err := preloadCombination(db).First(&combo, id).Error; err != nil {
		return nil, notFound(err, "combination", id)
	}
	return &combo, nil
}

// GetCombinationByName retrieves a combination by its unique name
func GetCombinationByName(db *gorm.DB, name string) (*models.Combination, error) {
	var combo models.Combination
	if err := preloadCombination(db).Where("name = ?", strings.TrimSpace(name)).First(&combo).Error; err != nil {
		return nil, notFound(err, "combination", name)
	}
	return &combo, nil
}

// Design decodes the design stored on a combination
func Design(combo *models.Combination) (*designer.Design, error) {
	var d designer.Design
	if err := json.Unmarshal([]byte(combo.DesignJSON), &d); err != nil {
		return nil, fmt.Errorf("failed to decode design %q: %w", combo.Name, err)
	}
	return &d, nil
}

// LoadDesign loads and decodes the design saved under name
func LoadDesign(db *gorm.DB, name string) (*designer.Design, error) {
	combo, err := GetCombinationByName(db, name)
	if err != nil {
		return nil, err
	}
	return Design(combo)
}

// ListCombinations returns all combinations, newest first
func ListCombinations(db *gorm.DB) ([]models.Combination, error) {
	var combos []models.Combination
	if err := preloadCombination(db).Order("created_at desc, id desc").Find(&combos).Error; err != nil {
		return nil, fmt.Errorf("failed to list combinations: %w", err)
	}
	return combos, nil
}

// DeleteCombination removes a combination and its products
func DeleteCombination(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combination_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete products: %w", err)
		}
		result := tx.Delete(&models.Combination{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete combination: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: combination %d", ErrNotFound, id)
		}
		return nil
	})
}

// ListBagModels returns the bag models in catalog order
func ListBagModels(db *gorm.DB) ([]models.BagModel, error) {
	var bagModels []models.BagModel
	if err := db.Order("id").Find(&bagModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list bag models: %w", err)
	}
	return bagModels, nil
}

// GetBagModel retrieves a bag model by ID
func GetBagModel(db *gorm.DB, id uint) (*models.BagModel, error) {
	var model models.BagModel
	if err := db.First(&model, id).Error; err != nil {
		return nil, notFound(err, "bag model", id)
	}
	return &model, nil
}

// GetBagModelByArchetype retrieves the bag model for an archetype
func GetBagModelByArchetype(db *gorm.DB, archetype designer.Archetype) (*models.BagModel, error) {
	var model models.BagModel
	if err := db.Where("archetype = ?", string(archetype)).First(&model).Error; err != nil {
		return nil, notFound(err, "bag model", archetype)
	}
	return &model, nil
}

// Canvas resolves the canvas size of a design. A non-zero width or height is
// kept as given, a zero one comes from the stored bag model for archetype, then
// from the design.width and design.height settings. db may be nil.
func Canvas(db *gorm.DB, archetype designer.Archetype, width, height float64) (float64, float64, error) {
	if width != 0 && height != 0 {
		return width, height, nil
	}

	if db != nil {
		model, err := GetBagModelByArchetype(db, archetype)
		switch {
		case err == nil:
			if width == 0 {
				width = model.Width
			}
			if height == 0 {
				height = model.Height
			}
		case !errors.Is(err, ErrNotFound):
			return 0, 0, err
		}
	}

	if width == 0 {
		width = config.GetFloat64("design.width")
	}
	if height == 0 {
		height = config.GetFloat64("design.height")
	}
	// unset config
	if width == 0 {
		width = designer.DefaultWidth
	}
	if height == 0 {
		height = designer.DefaultHeight
	}
	return width, height, nil
}

// ListPalettes returns all palettes with their colors
func ListPalettes(db *gorm.DB) ([]models.Palette, error) {
	var palettes []models.Palette
	if err := db.Preload("Colors", func(db *gorm.DB) *gorm.DB {
		return db.Order("colors.id")
	}).Order("id").Find(&palettes).Error; err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	return palettes, nil
}

// PaletteColors returns the colors of one palette
func PaletteColors(db *gorm.DB, paletteID uint) ([]models.Color, error) {
	var palette models.Palette
	if err := db.First(&palette, paletteID).Error; err != nil {
		return nil, notFound(err, "palette", paletteID)
	}

	var list []models.Color
	if err := db.Model(&palette).Order("colors.id").Association("Colors").Find(&list); err != nil {
		return nil, fmt.Errorf("failed to list palette colors: %w", err)
	}
	return list, nil
}

// CreateProduct registers a product made from a combination. A zero price is
// filled in from the price list for the combination's bag model.
func CreateProduct(db *gorm.DB, combinationID uint, name string, price float64, stock int) (*models.Product, error) {
	if price < 0 || stock < 0 {
		return nil, fmt.Errorf("price and stock must not be negative")
	}

	combo, err := GetCombination(db, combinationID)
	if err != nil {
		return nil, err
	}

	if price == 0 {
		price, err = pricing.UnitPrice(designer.Archetype(combo.BagModel.Archetype))
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(name) == "" {
		name = combo.Name
	}

	product := &models.Product{
		CombinationID:  combo.ID,
		Name:           name,
		SuggestedPrice: price,
		Stock:          stock,
	}
	if err := db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// ListProducts returns the products of one combination
func ListProducts(db *gorm.DB, combinationID uint) ([]models.Product, error) {
	var products []models.Product
	if err := db.Where("combination_id = ?", combinationID).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
