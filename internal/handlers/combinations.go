// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/gin-gonic/gin"
)

type saveCombinationRequest struct {
	Name       string `json:"name"`
	BagModelID uint   `json:"bag_model_id"`
	designRequest
}

type combinationSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	BagModel  string    `json:"bag_model"`
	Archetype string    `json:"archetype"`
	Scheme    string    `json:"scheme"`
	Principal string    `json:"principal,omitempty"`
	Secondary string    `json:"secondary,omitempty"`
	Handle    string    `json:"handle,omitempty"`
	SVGURL    string    `json:"svg_url"`
	CreatedAt time.Time `json:"created_at"`
}

func colorHex(c *models.Color) string {
	if c == nil {
		return ""
	}
	return "#" + c.Hex
}

func summarize(combo models.Combination) combinationSummary {
	return combinationSummary{
		ID:        combo.ID,
		Name:      combo.Name,
		BagModel:  combo.BagModel.Name,
		Archetype: combo.BagModel.Archetype,
		Scheme:    combo.Scheme,
		Principal: colorHex(combo.PrincipalColor),
		Secondary: colorHex(combo.SecondaryColor),
		Handle:    colorHex(combo.HandleColor),
		SVGURL:    fmt.Sprintf("/combinations/%d/svg", combo.ID),
		CreatedAt: combo.CreatedAt,
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// SaveCombinationHandler builds a design and stores it under a unique name
func SaveCombinationHandler(c *gin.Context) {
	var req saveCombinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	d, scheme, err := req.build()
	if err != nil {
		respondError(c, err)
		return
	}

	combo, err := catalog.SaveDesign(db.GetDB(), catalog.SaveRequest{
		Name:       req.Name,
		BagModelID: req.BagModelID,
		Scheme:     scheme,
		Design:     d,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      combo.ID,
		"name":    combo.Name,
		"valid":   designer.ValidateDesign(d, scheme),
	})
}

// ListCombinationsHandler lists saved combinations, newest first
func ListCombinationsHandler(c *gin.Context) {
	combos, err := catalog.ListCombinations(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]combinationSummary, 0, len(combos))
	for _, combo := range combos {
		out = append(out, summarize(combo))
	}
	c.JSON(http.StatusOK, gin.H{"combinations": out})
}

// GetCombinationHandler returns one combination with its decoded design
func GetCombinationHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	combo, err := catalog.GetCombination(db.GetDB(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	d, err := catalog.Design(combo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"combination": summarize(*combo), "design": d})
}

// CombinationSVGHandler serves the stored design as an SVG image
func CombinationSVGHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	combo, err := catalog.GetCombination(db.GetDB(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	d, err := catalog.Design(combo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(designer.RenderSVG(d)))
}

// DeleteCombinationHandler removes a combination and its products
func DeleteCombinationHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := catalog.DeleteCombination(db.GetDB(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type productRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// CreateProductHandler registers a product built from a combination
func CreateProductHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Price < 0 || req.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and stock must not be negative"})
		return
	}

	product, err := catalog.CreateProduct(db.GetDB(), id, req.Name, req.Price, req.Stock)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"product_id":      product.ID,
		"name":            product.Name,
		"suggested_price": product.SuggestedPrice,
		"stock":           product.Stock,
	})
}
