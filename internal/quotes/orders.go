// SPDX-License-Identifier: MIT
package quotes

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/models"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderPending      = "pending"
	OrderInProduction = "in_production"
	OrderDelivered    = "delivered"
	OrderCancelled    = "cancelled"
)

// ParseOrderStatus accepts the status tags and their shop-floor names
// ("pendiente", "en_produccion", "entregado", "cancelado").
func ParseOrderStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendiente":
		return OrderPending, nil
	case "in_production", "in-production", "en_produccion":
		return OrderInProduction, nil
	case "delivered", "entregado":
		return OrderDelivered, nil
	case "cancelled", "canceled", "cancelado":
		return OrderCancelled, nil
	default:
		return "", fmt.Errorf("%w: order status %q", ErrInvalidStatus, s)
	}
}

// OrderRequest asks for a direct order of one combination, without a quotation
type OrderRequest struct {
	ClientID      uint      `json:"client_id"`
	CombinationID uint      `json:"combination_id"`
	Quantity      int       `json:"quantity"`
	DeliveryDate  time.Time `json:"delivery_date"` // zero means the configured lead time
	Status        string    `json:"status"`        // empty means pending
}

// CreateOrder prices a single-line order from the price list and stores it.
// Direct orders carry no tax.
func CreateOrder(db *gorm.DB, req OrderRequest) (*models.Order, error) {
	status := OrderPending
	if req.Status != "" {
		s, err := ParseOrderStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetClient(tx, req.ClientID); err != nil {
			return err
		}
		line, err := priceLine(tx, LineRequest{CombinationID: req.CombinationID, Quantity: req.Quantity})
		if err != nil {
			return err
		}

		delivery := req.DeliveryDate
		if delivery.IsZero() {
			delivery = now().AddDate(0, 0, deliveryDays())
		}

		order = models.Order{
			ClientID:     req.ClientID,
			Status:       status,
			Total:        line.Subtotal,
			DeliveryDate: delivery,
			Lines: []models.OrderLine{{
				CombinationID: line.CombinationID,
				Quantity:      line.Quantity,
				UnitPrice:     line.UnitPrice,
				Subtotal:      line.Subtotal,
			}},
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetOrder(db, order.ID)
}

// GetOrder retrieves an order with its client and lines
func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Client").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Lines.Combination").
		First(&order, id).Error
	if err != nil {
		return nil, notFound(err, "order", id)
	}
	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by status
func ListOrders(db *gorm.DB, status string) ([]models.Order, error) {
	query := db.Preload("Client").Preload("Lines.Combination")
	if status != "" {
		s, err := ParseOrderStatus(status)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", s)
	}

	var list []models.Order
	if err := query.Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}

// OrderUpdate changes the status, the delivery date, or both
type OrderUpdate struct {
	Status       string     `json:"status"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

// UpdateOrder applies an OrderUpdate
func UpdateOrder(db *gorm.DB, id uint, upd OrderUpdate) (*models.Order, error) {
	changes := map[string]interface{}{}
	if upd.Status != "" {
		s, err := ParseOrderStatus(upd.Status)
		if err != nil {
			return nil, err
		}
		changes["status"] = s
	}
	if upd.DeliveryDate != nil {
		changes["delivery_date"] = *upd.DeliveryDate
	}

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return nil, notFound(err, "order", id)
	}
	if len(changes) > 0 {
		if err := db.Model(&order).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}
	return GetOrder(db, id)
}

// DeleteOrder removes an order and its lines
func DeleteOrder(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return fmt.Errorf("failed to delete order lines: %w", err)
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: order %d", catalog.ErrNotFound, id)
		}
		return nil
	})
}

// Board groups orders for the workshop. An order is overdue once its delivery
// date has passed without it being delivered.
type Board struct {
	ToDeliver []models.Order `json:"to_deliver"`
	Delivered []models.Order `json:"delivered"`
	Overdue   []models.Order `json:"overdue"`
	All       []models.Order `json:"all"`
}

// OrderBoard sorts every order into a Board. Lists are ordered by delivery date.
func OrderBoard(db *gorm.DB) (*Board, error) {
	var all []models.Order
	err := db.Preload("Client").Preload("Lines.Combination").
		Order("delivery_date").Order("id").
		Find(&all).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	board := &Board{
		ToDeliver: []models.Order{},
		Delivered: []models.Order{},
		Overdue:   []models.Order{},
		All:       all,
	}
	t := now()
	for _, o := range all {
		switch o.Status {
		case OrderPending, OrderInProduction:
			board.ToDeliver = append(board.ToDeliver, o)
		case OrderDelivered:
			board.Delivered = append(board.Delivered, o)
		}
		if o.Status != OrderDelivered && o.DeliveryDate.Before(t) {
			board.Overdue = append(board.Overdue, o)
		}
	}
	return board, nil
}

// StatusTotal counts the orders in one status and sums their totals
type StatusTotal struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// TopProduct is a combination ranked by bags ordered
type TopProduct struct {
	CombinationID uint   `json:"combination_id"`
	Name          string `json:"name"`
	Quantity      int64  `json:"quantity"`
}

// Stats summarizes the order book
type Stats struct {
	TotalOrders   int64                  `json:"total_orders"`
	ByStatus      map[string]StatusTotal `json:"by_status"`
	Revenue       float64                `json:"revenue"` // delivered orders only
	MonthOrders   int64                  `json:"month_orders"`
	MonthRevenue  float64                `json:"month_revenue"`
	ActiveClients int64                  `json:"active_clients"`
	TopProducts   []TopProduct           `json:"top_products"`
}

// topProductsLimit caps Stats.TopProducts
const topProductsLimit = 5

// OrderStats computes the figures behind the reports page
func OrderStats(db *gorm.DB) (*Stats, error) {
	stats := &Stats{ByStatus: map[string]StatusTotal{}, TopProducts: []TopProduct{}}

	var rows []struct {
		Status string
		Count  int64
		Amount float64
	}
	err := db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS amount").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = StatusTotal{Count: r.Count, Amount: round2(r.Amount)}
		stats.TotalOrders += r.Count
	}
	stats.Revenue = stats.ByStatus[OrderDelivered].Amount

	t := now()
	monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	var month StatusTotal
	err = db.Model(&models.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS amount").
		Where("created_at >= ?", monthStart).
		Scan(&month).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count this month's orders: %w", err)
	}
	stats.MonthOrders, stats.MonthRevenue = month.Count, round2(month.Amount)

	if err := db.Model(&models.Order{}).Distinct("client_id").Count(&stats.ActiveClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	err = db.Model(&models.OrderLine{}).
		Select("order_lines.combination_id AS combination_id, COALESCE(combinations.name, '') AS name, SUM(order_lines.quantity) AS quantity").
		Joins("LEFT JOIN combinations ON combinations.id = order_lines.combination_id").
		Group("order_lines.combination_id, combinations.name").
		Having("SUM(order_lines.quantity) > 0").
		Scan(&stats.TopProducts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	sort.SliceStable(stats.TopProducts, func(i, j int) bool {
		if stats.TopProducts[i].Quantity != stats.TopProducts[j].Quantity {
			return stats.TopProducts[i].Quantity > stats.TopProducts[j].Quantity
		}
		return stats.TopProducts[i].CombinationID < stats.TopProducts[j].CombinationID
	})
	if len(stats.TopProducts) > topProductsLimit {
		stats.TopProducts = stats.TopProducts[:topProductsLimit]
	}
	return stats, nil
}
