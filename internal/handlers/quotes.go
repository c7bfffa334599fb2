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

type clientView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func viewClient(cl models.Client) clientView {
	return clientView{ID: cl.ID, Name: cl.Name, Email: cl.Email, Phone: cl.Phone, Address: cl.Address}
}

type lineView struct {
	CombinationID uint    `json:"combination_id"`
	Combination   string  `json:"combination,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
}

type quotationView struct {
	ID        uint       `json:"id"`
	Client    clientView `json:"client"`
	Status    string     `json:"status"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	Notes     string     `json:"notes,omitempty"`
	Quantity  int        `json:"quantity"`
	Lines     []lineView `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
}

func viewQuotation(q models.Quotation) quotationView {
	v := quotationView{
		ID:        q.ID,
		Client:    viewClient(q.Client),
		Status:    q.Status,
		Subtotal:  q.Subtotal,
		Tax:       q.Tax,
		Total:     q.Total,
		Notes:     q.Notes,
		Lines:     make([]lineView, 0, len(q.Lines)),
		CreatedAt: q.CreatedAt,
	}
	for _, l := range q.Lines {
		v.Quantity += l.Quantity
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

// ListClientsHandler lists clients by name
func ListClientsHandler(c *gin.Context) {
	clients, err := quotes.ListClients(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]clientView, 0, len(clients))
	for _, cl := range clients {
		out = append(out, viewClient(cl))
	}
	c.JSON(http.StatusOK, gin.H{"clients": out})
}

// CreateClientHandler registers a client
func CreateClientHandler(c *gin.Context) {
	var req clientView
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	client, err := quotes.CreateClient(db.GetDB(), models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "client": viewClient(*client)})
}

// ListQuotationsHandler lists quotations newest first, filtered by ?status=
func ListQuotationsHandler(c *gin.Context) {
	list, err := quotes.ListQuotations(db.GetDB(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]quotationView, 0, len(list))
	for _, q := range list {
		out = append(out, viewQuotation(q))
	}
	c.JSON(http.StatusOK, gin.H{"quotations": out})
}

// CreateQuotationHandler prices and stores a quotation
func CreateQuotationHandler(c *gin.Context) {
	var req quotes.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	q, err := quotes.CreateQuotation(db.GetDB(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "quotation": viewQuotation(*q)})
}

// GetQuotationHandler returns one quotation with its lines
func GetQuotationHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	q, err := quotes.GetQuotation(db.GetDB(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": viewQuotation(*q)})
}

// DeleteQuotationHandler removes a quotation
func DeleteQuotationHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := quotes.DeleteQuotation(db.GetDB(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DuplicateQuotationHandler copies a quotation into a new pending one
func DuplicateQuotationHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	q, err := quotes.DuplicateQuotation(db.GetDB(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "quotation": viewQuotation(*q)})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateQuotationStatusHandler changes a quotation's status. Approval answers
// with the order it created.
func UpdateQuotationStatusHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	order, err := quotes.UpdateQuotationStatus(db.GetDB(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"success": true}
	if order != nil {
		stored, err := quotes.GetOrder(db.GetDB(), order.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		resp["order"] = viewOrder(*stored)
	}
	c.JSON(http.StatusOK, resp)
}
