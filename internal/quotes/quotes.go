// SPDX-License-Identifier: MIT

// Package quotes handles clients, quotations, the orders they turn into and
// the workshop's material stock.
package quotes

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/pricing"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrEmptyQuotation    = errors.New("quotation has no lines")
	ErrDuplicateOrder    = errors.New("an identical order already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Quotation statuses
const (
	QuotationPending   = "pending"
	QuotationApproved  = "approved"
	QuotationRejected  = "rejected"
	QuotationCompleted = "completed"
)

const (
	defaultTaxRate      = 0.16
	defaultDeliveryDays = 7
)

// now is replaced in tests
var now = time.Now

// ParseQuotationStatus accepts the status tags and their shop-floor names
// ("pendiente", "aprobada", "rechazada", "completada").
func ParseQuotationStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendiente":
		return QuotationPending, nil
	case "approved", "aprobada":
		return QuotationApproved, nil
	case "rejected", "rechazada":
		return QuotationRejected, nil
	case "completed", "completada":
		return QuotationCompleted, nil
	default:
		return "", fmt.Errorf("%w: quotation status %q", ErrInvalidStatus, s)
	}
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", catalog.ErrNotFound, what, id)
	}
	return fmt.Errorf("failed to load %s %d: %w", what, id, err)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TaxRate returns the configured sales tax rate
func TaxRate() float64 {
	if config.IsSet("quotes.tax_rate") {
		return config.GetFloat64("quotes.tax_rate")
	}
	return defaultTaxRate
}

func deliveryDays() int {
	if config.IsSet("orders.delivery_days") {
		return config.GetInt("orders.delivery_days")
	}
	return defaultDeliveryDays
}

// CreateClient stores a new client. Only the name is required.
func CreateClient(db *gorm.DB, client models.Client) (*models.Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return nil, fmt.Errorf("%w: client", catalog.ErrNameRequired)
	}
	client.ID = 0
	if err := db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// GetClient retrieves a client by ID
func GetClient(db *gorm.DB, id uint) (*models.Client, error) {
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		return nil, notFound(err, "client", id)
	}
	return &client, nil
}

// ListClients returns every client by name
func ListClients(db *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	if err := db.Order("name").Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// LineRequest asks for Quantity bags of one combination. A zero UnitPrice is
// taken from the price list for the combination's bag model.
type LineRequest struct {
	CombinationID uint    `json:"combination_id" yaml:"combination_id"`
	Quantity      int     `json:"quantity" yaml:"quantity"`
	UnitPrice     float64 `json:"unit_price,omitempty" yaml:"unit_price,omitempty"`
}

// QuotationRequest describes a new quotation
type QuotationRequest struct {
	ClientID uint          `json:"client_id" yaml:"client_id"`
	Notes    string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Lines    []LineRequest `json:"lines" yaml:"lines"`
}

// priceLine fills in the unit price and subtotal of one line
func priceLine(tx *gorm.DB, req LineRequest) (models.QuotationLine, error) {
	if req.Quantity <= 0 {
		return models.QuotationLine{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, req.Quantity)
	}
	if req.UnitPrice < 0 {
		return models.QuotationLine{}, fmt.Errorf("%w: unit price %g", ErrNegativeAmount, req.UnitPrice)
	}

	combo, err := catalog.GetCombination(tx, req.CombinationID)
	if err != nil {
		return models.QuotationLine{}, err
	}

	line := models.QuotationLine{
		CombinationID: combo.ID,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
	}
	if line.UnitPrice == 0 {
		archetype := designer.Archetype(combo.BagModel.Archetype)
		if line.UnitPrice, err = pricing.UnitPrice(archetype); err != nil {
			return models.QuotationLine{}, err
		}
		if line.Subtotal, err = pricing.Quote(archetype, req.Quantity); err != nil {
			return models.QuotationLine{}, err
		}
	} else {
		line.Subtotal = round2(line.UnitPrice * float64(req.Quantity))
	}
	return line, nil
}

// CreateQuotation prices the requested lines and stores a pending quotation.
// The total is the subtotal plus tax at TaxRate.
func CreateQuotation(db *gorm.DB, req QuotationRequest) (*models.Quotation, error) {
	var quotation models.Quotation
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetClient(tx, req.ClientID); err != nil {
			return err
		}

		quotation = models.Quotation{
			ClientID: req.ClientID,
			Status:   QuotationPending,
			Notes:    strings.TrimSpace(req.Notes),
		}
		for i, r := range req.Lines {
			line, err := priceLine(tx, r)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			quotation.Lines = append(quotation.Lines, line)
			quotation.Subtotal += line.Subtotal
		}

		quotation.Subtotal = round2(quotation.Subtotal)
		quotation.Tax = round2(quotation.Subtotal * TaxRate())
		quotation.Total = round2(quotation.Subtotal + quotation.Tax)

		if err := tx.Create(&quotation).Error; err != nil {
			return fmt.Errorf("failed to create quotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetQuotation(db, quotation.ID)
}

// GetQuotation retrieves a quotation with its client and lines
func GetQuotation(db *gorm.DB, id uint) (*models.Quotation, error) {
	var quotation models.Quotation
	err := db.Preload("Client").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Lines.Combination").
		First(&quotation, id).Error
	if err != nil {
		return nil, notFound(err, "quotation", id)
	}
	return &quotation, nil
}

// ListQuotations returns quotations newest first, optionally filtered by status
func ListQuotations(db *gorm.DB, status string) ([]models.Quotation, error) {
	query := db.Preload("Client").Preload("Lines")
	if status != "" {
		s, err := ParseQuotationStatus(status)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", s)
	}

	var list []models.Quotation
	if err := query.Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	return list, nil
}

// DeleteQuotation removes a quotation and its lines. Orders promoted from it are kept.
func DeleteQuotation(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&models.QuotationLine{}).Error; err != nil {
			return fmt.Errorf("failed to delete quotation lines: %w", err)
		}
		result := tx.Delete(&models.Quotation{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete quotation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: quotation %d", catalog.ErrNotFound, id)
		}
		return nil
	})
}

// DuplicateQuotation copies a quotation and its lines into a new pending one
func DuplicateQuotation(db *gorm.DB, id uint) (*models.Quotation, error) {
	src, err := GetQuotation(db, id)
	if err != nil {
		return nil, err
	}

	dup := models.Quotation{
		ClientID: src.ClientID,
		Status:   QuotationPending,
		Subtotal: src.Subtotal,
		Tax:      src.Tax,
		Total:    src.Total,
		Notes:    src.Notes,
	}
	for _, l := range src.Lines {
		dup.Lines = append(dup.Lines, models.QuotationLine{
			CombinationID: l.CombinationID,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Subtotal:      l.Subtotal,
		})
	}
	if err := db.Create(&dup).Error; err != nil {
		return nil, fmt.Errorf("failed to duplicate quotation: %w", err)
	}
	return GetQuotation(db, dup.ID)
}

// UpdateQuotationStatus sets the status of a quotation. Approving it creates a
// pending order with the same lines and total, delivered after the configured
// number of days, and returns it. Approval fails with ErrEmptyQuotation for a
// quotation without lines and with ErrDuplicateOrder when the client already
// has a live order with the same total and lines.
func UpdateQuotationStatus(db *gorm.DB, id uint, status string) (*models.Order, error) {
	s, err := ParseQuotationStatus(status)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var quotation models.Quotation
		if err := tx.Preload("Lines").First(&quotation, id).Error; err != nil {
			return notFound(err, "quotation", id)
		}

		if s == QuotationApproved {
			if len(quotation.Lines) == 0 {
				return fmt.Errorf("%w: quotation %d", ErrEmptyQuotation, id)
			}
			if dup, err := findIdenticalOrder(tx, &quotation); err != nil {
				return err
			} else if dup != nil {
				return fmt.Errorf("%w: order %d", ErrDuplicateOrder, dup.ID)
			}

			order = &models.Order{
				ClientID:     quotation.ClientID,
				QuotationID:  &quotation.ID,
				Status:       OrderPending,
				Total:        quotation.Total,
				DeliveryDate: now().AddDate(0, 0, deliveryDays()),
			}
			for _, l := range quotation.Lines {
				order.Lines = append(order.Lines, models.OrderLine{
					CombinationID: l.CombinationID,
					Quantity:      l.Quantity,
					UnitPrice:     l.UnitPrice,
					Subtotal:      l.Subtotal,
				})
			}
			if err := tx.Create(order).Error; err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
		}

		if err := tx.Model(&quotation).Update("status", s).Error; err != nil {
			return fmt.Errorf("failed to update quotation status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

type lineKey struct {
	combinationID uint
	quantity      int
}

func quotationKeys(lines []models.QuotationLine) []lineKey {
	keys := make([]lineKey, 0, len(lines))
	for _, l := range lines {
		keys = append(keys, lineKey{l.CombinationID, l.Quantity})
	}
	sortKeys(keys)
	return keys
}

func orderKeys(lines []models.OrderLine) []lineKey {
	keys := make([]lineKey, 0, len(lines))
	for _, l := range lines {
		keys = append(keys, lineKey{l.CombinationID, l.Quantity})
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []lineKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].combinationID != keys[j].combinationID {
			return keys[i].combinationID < keys[j].combinationID
		}
		return keys[i].quantity < keys[j].quantity
	})
}

// findIdenticalOrder looks for a non-cancelled order of the same client whose
// total is within a cent of the quotation's and whose lines match it
func findIdenticalOrder(tx *gorm.DB, quotation *models.Quotation) (*models.Order, error) {
	var candidates []models.Order
	err := tx.Preload("Lines").
		Where("client_id = ? AND status <> ?", quotation.ClientID, OrderCancelled).
		Where("total > ? AND total < ?", quotation.Total-0.01, quotation.Total+0.01).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look for identical orders: %w", err)
	}

	want := quotationKeys(quotation.Lines)
	for i := range candidates {
		have := orderKeys(candidates[i].Lines)
		if len(have) != len(want) {
			continue
		}
		same := true
		for j := range want {
			if have[j] != want[j] {
				same = false
				break
			}
		}
		if same {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
