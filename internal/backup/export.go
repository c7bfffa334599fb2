// SPDX-License-Identifier: MIT
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/designer"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

const exportVersion = 1

// ErrInvalidExport is returned when an import document cannot be read
var ErrInvalidExport = errors.New("invalid catalog export")

// CatalogExport is the YAML document written by CatalogExporter
type CatalogExport struct {
	Version      int                   `yaml:"version"`
	ExportedAt   time.Time             `yaml:"exported_at"`
	Combinations []ExportedCombination `yaml:"combinations"`
}

// ExportedCombination is one saved design with the products made from it
type ExportedCombination struct {
	Name     string            `yaml:"name"`
	BagModel string            `yaml:"bag_model"`
	Scheme   string            `yaml:"scheme"`
	Design   *designer.Design  `yaml:"design"`
	Products []ExportedProduct `yaml:"products,omitempty"`
}

type ExportedProduct struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Stock int     `yaml:"stock"`
}

// ImportResult reports what an import did
type ImportResult struct {
	Imported int
	Skipped  []string // names already in the catalog
}

// CatalogExporter writes and reads portable catalog exports
type CatalogExporter struct {
	BackupPath string
	DB         *gorm.DB
}

// NewCatalogExporter creates a new catalog exporter
func NewCatalogExporter(backupPath string, database *gorm.DB) *CatalogExporter {
	return &CatalogExporter{
		BackupPath: backupPath,
		DB:         database,
	}
}

// Export writes every combination, oldest first, as YAML
func (e *CatalogExporter) Export(w io.Writer) error {
	combos, err := catalog.ListCombinations(e.DB)
	if err != nil {
		return err
	}

	doc := CatalogExport{Version: exportVersion, ExportedAt: time.Now().UTC()}
	for i := len(combos) - 1; i >= 0; i-- {
		combo := combos[i]
		d, err := catalog.Design(&combo)
		if err != nil {
			return err
		}
		products, err := catalog.ListProducts(e.DB, combo.ID)
		if err != nil {
			return err
		}

		entry := ExportedCombination{
			Name:     combo.Name,
			BagModel: combo.BagModel.Name,
			Scheme:   combo.Scheme,
			Design:   d,
		}
		for _, p := range products {
			entry.Products = append(entry.Products, ExportedProduct{Name: p.Name, Price: p.SuggestedPrice, Stock: p.Stock})
		}
		doc.Combinations = append(doc.Combinations, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// CreateExport writes an export file under <BackupPath>/exports and returns its name
func (e *CatalogExporter) CreateExport() (string, error) {
	dir := filepath.Join(e.BackupPath, "exports")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("catalog-%s.yaml", time.Now().Format("2006-01-02-150405"))
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := e.Export(f); err != nil {
		return "", err
	}
	return filename, nil
}

// Import saves the combinations of an export. Names already in the catalog are skipped.
func (e *CatalogExporter) Import(r io.Reader) (*ImportResult, error) {
	var doc CatalogExport
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}
	if doc.Version != exportVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidExport, doc.Version)
	}

	result := &ImportResult{}
	for _, entry := range doc.Combinations {
		if entry.Design == nil {
			return result, fmt.Errorf("%w: combination %q has no design", ErrInvalidExport, entry.Name)
		}

		combo, err := catalog.SaveDesign(e.DB, catalog.SaveRequest{
			Name:   entry.Name,
			Scheme: colors.ParseScheme(entry.Scheme),
			Design: entry.Design,
		})
		if errors.Is(err, catalog.ErrDuplicateName) {
			result.Skipped = append(result.Skipped, entry.Name)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to import %q: %w", entry.Name, err)
		}

		for _, p := range entry.Products {
			if _, err := catalog.CreateProduct(e.DB, combo.ID, p.Name, p.Price, p.Stock); err != nil {
				return result, fmt.Errorf("failed to import product %q: %w", p.Name, err)
			}
		}
		result.Imported++
	}
	return result, nil
}
