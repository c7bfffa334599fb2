// SPDX-License-Identifier: MIT
package db

import (
	"fmt"
	"strings"

	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/themes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection. SQL logging is off unless logSQL is set.
func InitDB(dbType, dbPath string, logSQL bool) error {
	var err error
	var dialector gorm.Dialector

	switch dbType {
	case "sqlite":
		dialector = sqlite.Open(dbPath)
	case "mysql", "mariadb":
		dialector = mysql.Open(dbPath) // dbPath is DSN for MySQL
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	level := logger.Silent
	if logSQL {
		level = logger.Info
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	return nil
}

// Migrate creates or updates every catalog table
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database connection (used for testing)
func SetDB(database *gorm.DB) {
	DB = database
}

// Close releases the underlying connection pool
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed inserts the bag models and workshop palettes if they are missing.
// Running it twice leaves the catalog unchanged.
func Seed(database *gorm.DB) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, m := range designer.AvailableModels() {
			model := models.BagModel{
				Name:        m.Name,
				Archetype:   string(m.Archetype),
				Description: m.Description,
				Width:       designer.DefaultWidth,
				Height:      designer.DefaultHeight,
			}
			if err := tx.Where(models.BagModel{Archetype: model.Archetype}).FirstOrCreate(&model).Error; err != nil {
				return fmt.Errorf("failed to seed bag model %s: %w", m.Name, err)
			}
		}

		for _, p := range themes.ListPalettes() {
			palette := models.Palette{
				Name:        p.Name,
				Scheme:      string(p.Scheme),
				Description: p.Description,
			}
			if err := tx.Where(models.Palette{Name: p.Name}).FirstOrCreate(&palette).Error; err != nil {
				return fmt.Errorf("failed to seed palette %s: %w", p.Name, err)
			}

			list := make([]models.Color, 0, len(p.Swatches))
			for i, c := range p.Colors() {
				color := models.Color{Hex: c.Hex()}
				if err := tx.Where(models.Color{Hex: c.Hex()}).
					Attrs(models.Color{Name: p.Swatches[i].Name}).
					FirstOrCreate(&color).Error; err != nil {
					return fmt.Errorf("failed to seed color %s: %w", c, err)
				}
				// colors first stored by a saved design get the swatch name
				if strings.HasPrefix(color.Name, "Color_") {
					if err := tx.Model(&color).Update("name", p.Swatches[i].Name).Error; err != nil {
						return fmt.Errorf("failed to name color %s: %w", c, err)
					}
				}
				list = append(list, color)
			}

			if err := tx.Model(&palette).Association("Colors").Append(&list); err != nil {
				return fmt.Errorf("failed to link colors of palette %s: %w", p.Name, err)
			}
		}

		return nil
	})
}
