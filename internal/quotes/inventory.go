// SPDX-License-Identifier: MIT
package quotes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/models"
	"gorm.io/gorm"
)

const defaultLowStockThreshold = 100

// LowStockThreshold returns the configured stock level below which a material is reported
func LowStockThreshold() float64 {
	if config.IsSet("inventory.low_stock_threshold") {
		return config.GetFloat64("inventory.low_stock_threshold")
	}
	return defaultLowStockThreshold
}

// AddMaterial registers a material with no stock
func AddMaterial(db *gorm.DB, m models.Material) (*models.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, fmt.Errorf("%w: material", catalog.ErrNameRequired)
	}
	if m.UnitCost < 0 {
		return nil, fmt.Errorf("%w: unit cost %g", ErrNegativeAmount, m.UnitCost)
	}

	var existing models.Material
	if err := db.Where("name = ?", m.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrDuplicateName, m.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check material name: %w", err)
	}

	m.ID = 0
	m.Stock = 0
	if err := db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to add material: %w", err)
	}
	return &m, nil
}

// GetMaterial retrieves a material by ID
func GetMaterial(db *gorm.DB, id uint) (*models.Material, error) {
	var m models.Material
	if err := db.First(&m, id).Error; err != nil {
		return nil, notFound(err, "material", id)
	}
	return &m, nil
}

// AdjustStock adds delta to a material's stock; a negative delta takes stock
// out. Stock never drops below zero.
func AdjustStock(db *gorm.DB, id uint, delta float64) (*models.Material, error) {
	var m models.Material
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return notFound(err, "material", id)
		}
		stock := m.Stock + delta
		if stock < 0 {
			return fmt.Errorf("%w: %s has %g %s, %g requested", ErrInsufficientStock, m.Name, m.Stock, m.Unit, -delta)
		}
		if err := tx.Model(&m).Update("stock", stock).Error; err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		m.Stock = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InventoryItem is a material with the value of its stock
type InventoryItem struct {
	models.Material
	Value float64
}

// ListInventory returns every material by name with its stock value
func ListInventory(db *gorm.DB) ([]InventoryItem, error) {
	var list []models.Material
	if err := db.Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	items := make([]InventoryItem, 0, len(list))
	for _, m := range list {
		items = append(items, InventoryItem{Material: m, Value: round2(m.Stock * m.UnitCost)})
	}
	return items, nil
}

// CheckAvailability reports whether qty of a material is in stock
func CheckAvailability(db *gorm.DB, id uint, qty float64) (bool, error) {
	m, err := GetMaterial(db, id)
	if err != nil {
		return false, err
	}
	return m.Stock >= qty, nil
}

// LowStock lists materials below threshold, scarcest first. A threshold of
// zero or less uses LowStockThreshold.
func LowStock(db *gorm.DB, threshold float64) ([]models.Material, error) {
	if threshold <= 0 {
		threshold = LowStockThreshold()
	}

	var list []models.Material
	if err := db.Where("stock < ?", threshold).Order("stock").Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list low stock: %w", err)
	}
	return list, nil
}

// MaterialUse is an amount of one material consumed by a job
type MaterialUse struct {
	MaterialID uint    `json:"material_id" yaml:"material_id"`
	Quantity   float64 `json:"quantity" yaml:"quantity"`
}

// ProductionCost prices the materials a job consumes, rounded to cents
func ProductionCost(db *gorm.DB, uses []MaterialUse) (float64, error) {
	var total float64
	for i, u := range uses {
		if u.Quantity <= 0 {
			return 0, fmt.Errorf("material %d: %w: got %g", i+1, ErrInvalidQuantity, u.Quantity)
		}
		m, err := GetMaterial(db, u.MaterialID)
		if err != nil {
			return 0, err
		}
		total += m.UnitCost * u.Quantity
	}
	return round2(total), nil
}

// DeleteMaterial removes a material
func DeleteMaterial(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Material{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: material %d", catalog.ErrNotFound, id)
	}
	return nil
}
