// SPDX-License-Identifier: MIT
package models

import (
	"time"

	"gorm.io/gorm"
)

// Color is a catalog color, keyed by its canonical hex (six lowercase digits, no '#')
type Color struct {
	ID        uint   `gorm:"primaryKey"`
	Hex       string `gorm:"uniqueIndex;size:6;not null"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Palette is a named set of workshop colors
type Palette struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;not null"`
	Scheme      string         `gorm:"default:harmonic"` // "complementary", "analogous", "harmonic"
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relationships, a color may belong to several palettes
	Colors []Color `gorm:"many2many:palette_colors"`
}

// BagModel is one of the bag archetypes offered by the workshop
type BagModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;not null"`
	Archetype   string         `gorm:"uniqueIndex;not null"` // "single", "two_tone", "freeform"
	Description string
	Width       float64        `gorm:"default:300"`
	Height      float64        `gorm:"default:400"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// Combination is a saved design for a bag model
type Combination struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"uniqueIndex;not null"`
	BagModelID       uint   `gorm:"not null"`
	Scheme           string `gorm:"default:harmonic"`
	PrincipalColorID *uint
	SecondaryColorID *uint
	HandleColorID    *uint
	DesignJSON       string `gorm:"type:text;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Relationships
	BagModel       BagModel  `gorm:"foreignKey:BagModelID"`
	PrincipalColor *Color    `gorm:"foreignKey:PrincipalColorID"`
	SecondaryColor *Color    `gorm:"foreignKey:SecondaryColorID"`
	HandleColor    *Color    `gorm:"foreignKey:HandleColorID"`
	Products       []Product `gorm:"foreignKey:CombinationID;constraint:OnDelete:CASCADE"`
}

// Product is a sellable bag built from a combination
type Product struct {
	ID             uint    `gorm:"primaryKey"`
	CombinationID  uint    `gorm:"not null;index"`
	Name           string  `gorm:"not null"`
	SuggestedPrice float64 `gorm:"not null"`
	Stock          int     `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relationships
	Combination Combination `gorm:"foreignKey:CombinationID"`
}

// Client is a customer who receives quotations and orders
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quotation is a priced offer to a client. Approving it creates an Order.
type Quotation struct {
	ID        uint    `gorm:"primaryKey"`
	ClientID  uint    `gorm:"not null;index"`
	Status    string  `gorm:"default:pending;index"` // "pending", "approved", "rejected", "completed"
	Subtotal  float64 `gorm:"not null"`
	Tax       float64 `gorm:"not null"`
	Total     float64 `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Client Client          `gorm:"foreignKey:ClientID"`
	Lines  []QuotationLine `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
}

// QuotationLine is one combination and quantity on a quotation
type QuotationLine struct {
	ID            uint    `gorm:"primaryKey"`
	QuotationID   uint    `gorm:"not null;index"`
	CombinationID uint    `gorm:"not null;index"`
	Quantity      int     `gorm:"not null"`
	UnitPrice     float64 `gorm:"not null"`
	Subtotal      float64 `gorm:"not null"`

	// Relationships
	Combination Combination `gorm:"foreignKey:CombinationID"`
}

// Order is a confirmed job for a client, usually promoted from a quotation
type Order struct {
	ID           uint    `gorm:"primaryKey"`
	ClientID     uint    `gorm:"not null;index"`
	QuotationID  *uint   `gorm:"index"`
	Status       string  `gorm:"default:pending;index"` // "pending", "in_production", "delivered", "cancelled"
	Total        float64 `gorm:"not null"`
	DeliveryDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Client Client      `gorm:"foreignKey:ClientID"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderLine is one combination and quantity on an order
type OrderLine struct {
	ID            uint    `gorm:"primaryKey"`
	OrderID       uint    `gorm:"not null;index"`
	CombinationID uint    `gorm:"not null;index"`
	Quantity      int     `gorm:"not null"`
	UnitPrice     float64 `gorm:"not null"`
	Subtotal      float64 `gorm:"not null"`

	// Relationships
	Combination Combination `gorm:"foreignKey:CombinationID"`
}

// Material is a workshop supply tracked in stock, counted in Unit ("m", "pcs")
type Material struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;not null"`
	Kind        string  `gorm:"index"`
	Unit        string  `gorm:"not null"`
	UnitCost    float64 `gorm:"not null"`
	Stock       float64 `gorm:"default:0"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// All lists every model for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Palette{},
		&Color{},
		&BagModel{},
		&Combination{},
		&Product{},
		&Client{},
		&Quotation{},
		&QuotationLine{},
		&Order{},
		&OrderLine{},
		&Material{},
	}
}

// TableName overrides for consistent naming
func (Color) TableName() string {
	return "colors"
}

func (Palette) TableName() string {
	return "palettes"
}

func (BagModel) TableName() string {
	return "bag_models"
}

func (Combination) TableName() string {
	return "combinations"
}

func (Product) TableName() string {
	return "products"
}

func (Client) TableName() string {
	return "clients"
}

func (Quotation) TableName() string {
	return "quotations"
}

func (QuotationLine) TableName() string {
	return "quotation_lines"
}

func (Order) TableName() string {
	return "orders"
}

func (OrderLine) TableName() string {
	return "order_lines"
}

func (Material) TableName() string {
	return "materials"
}
