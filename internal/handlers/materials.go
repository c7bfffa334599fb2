// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strconv"

	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/quotes"
	"github.com/gin-gonic/gin"
)

type materialView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind,omitempty"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
	Stock       float64 `json:"stock"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

func viewMaterial(m models.Material) materialView {
	return materialView{
		ID:          m.ID,
		Name:        m.Name,
		Kind:        m.Kind,
		Unit:        m.Unit,
		UnitCost:    m.UnitCost,
		Stock:       m.Stock,
		Value:       m.Stock * m.UnitCost,
		Description: m.Description,
	}
}

// ListMaterialsHandler lists the inventory with stock values
func ListMaterialsHandler(c *gin.Context) {
	items, err := quotes.ListInventory(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]materialView, 0, len(items))
	var total float64
	for _, item := range items {
		v := viewMaterial(item.Material)
		v.Value = item.Value
		total += item.Value
		out = append(out, v)
	}
	c.JSON(http.StatusOK, gin.H{"materials": out, "total_value": total})
}

// AddMaterialHandler registers a material with no stock
func AddMaterialHandler(c *gin.Context) {
	var req materialView
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m, err := quotes.AddMaterial(db.GetDB(), models.Material{
		Name:        req.Name,
		Kind:        req.Kind,
		Unit:        req.Unit,
		UnitCost:    req.UnitCost,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "material": viewMaterial(*m)})
}

type stockRequest struct {
	Delta float64 `json:"delta"`
}

// AdjustStockHandler adds to or takes from a material's stock
func AdjustStockHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a non-zero delta is required"})
		return
	}

	m, err := quotes.AdjustStock(db.GetDB(), id, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "material": viewMaterial(*m)})
}

// DeleteMaterialHandler removes a material
func DeleteMaterialHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := quotes.DeleteMaterial(db.GetDB(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LowStockHandler lists materials below ?threshold=, or the configured level
func LowStockHandler(c *gin.Context) {
	var threshold float64
	if raw := c.Query("threshold"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || t <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a positive number"})
			return
		}
		threshold = t
	}
	if threshold == 0 {
		threshold = quotes.LowStockThreshold()
	}

	list, err := quotes.LowStock(db.GetDB(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]materialView, 0, len(list))
	for _, m := range list {
		out = append(out, viewMaterial(m))
	}
	c.JSON(http.StatusOK, gin.H{"threshold": threshold, "materials": out})
}

type costRequest struct {
	Materials []quotes.MaterialUse `json:"materials"`
}

// ProductionCostHandler prices the materials a job consumes
func ProductionCostHandler(c *gin.Context) {
	var req costRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Materials) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "materials are required"})
		return
	}

	cost, err := quotes.ProductionCost(db.GetDB(), req.Materials)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cost": cost})
}
