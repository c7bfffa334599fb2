// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"time"

	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/quotes"
	"github.com/gin-gonic/gin"
)

type orderView struct {
	ID           uint       `json:"id"`
	Client       clientView `json:"client"`
	QuotationID  *uint      `json:"quotation_id,omitempty"`
	Status       string     `json:"status"`
	Total        float64    `json:"total"`
	DeliveryDate time.Time  `json:"delivery_date"`
	Lines        []lineView `json:"lines"`
	CreatedAt    time.Time  `json:"created_at"`
}

func viewOrder(o models.Order) orderView {
	v := orderView{
		ID:           o.ID,
		Client:       viewClient(o.Client),
		QuotationID:  o.QuotationID,
		Status:       o.Status,
		Total:        o.Total,
		DeliveryDate: o.DeliveryDate,
		Lines:        make([]lineView, 0, len(o.Lines)),
		CreatedAt:    o.CreatedAt,
	}
	for _, l := range o.Lines {
		v.Lines = append(v.Lines, lineView{
			CombinationID: l.CombinationID,
			Combination:   l.Combination.Name,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Subtotal:      l.Subtotal,
		})
	}
	return v
}

func viewOrders(list []models.Order) []orderView {
	out := make([]orderView, 0, len(list))
	for _, o := range list {
		out = append(out, viewOrder(o))
	}
	return out
}

// ListOrdersHandler lists orders newest first, filtered by ?status=
func ListOrdersHandler(c *gin.Context) {
	list, err := quotes.ListOrders(db.GetDB(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": viewOrders(list)})
}

// CreateOrderHandler places a direct order for one combination
func CreateOrderHandler(c *gin.Context) {
	var req quotes.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	order, err := quotes.CreateOrder(db.GetDB(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": viewOrder(*order)})
}

// GetOrderHandler returns one order with its lines
func GetOrderHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	order, err := quotes.GetOrder(db.GetDB(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": viewOrder(*order)})
}

// UpdateOrderHandler changes an order's status or delivery date
func UpdateOrderHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req quotes.OrderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	order, err := quotes.UpdateOrder(db.GetDB(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": viewOrder(*order)})
}

// DeleteOrderHandler removes an order
func DeleteOrderHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := quotes.DeleteOrder(db.GetDB(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// OrderBoardHandler groups orders into to-deliver, delivered and overdue
func OrderBoardHandler(c *gin.Context) {
	board, err := quotes.OrderBoard(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"to_deliver": viewOrders(board.ToDeliver),
		"delivered":  viewOrders(board.Delivered),
		"overdue":    viewOrders(board.Overdue),
		"all":        viewOrders(board.All),
	})
}

// OrderStatsHandler returns the order book figures
func OrderStatsHandler(c *gin.Context) {
	stats, err := quotes.OrderStats(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
