// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/pricing"
	"github.com/gin-gonic/gin"
)

// ListModelsHandler lists the bag archetypes with their unit prices, and the
// harmony schemes a design can be checked against
func ListModelsHandler(c *gin.Context) {
	type modelWithPrice struct {
		designer.Model
		UnitPrice float64 `json:"unit_price"`
	}

	var out []modelWithPrice
	for _, m := range designer.AvailableModels() {
		price, err := pricing.UnitPrice(m.Archetype)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, modelWithPrice{Model: m, UnitPrice: price})
	}
	c.JSON(http.StatusOK, gin.H{"models": out, "schemes": colors.Schemes()})
}

type designRequest struct {
	Archetype string                 `json:"archetype"`
	Width     float64                `json:"width"`
	Height    float64                `json:"height"`
	Colors    []string               `json:"colors"`
	Handle    string                 `json:"handle"`
	Scheme    string                 `json:"scheme"`
	Elements  []designer.ElementSpec `json:"elements"`
}

// build turns the request into a design and the scheme it is judged against
func (r designRequest) build() (*designer.Design, colors.Scheme, error) {
	archetype, err := designer.ParseArchetype(r.Archetype)
	if err != nil {
		return nil, "", err
	}

	body, err := parseColors(r.Colors)
	if err != nil {
		return nil, "", err
	}

	var handle *colors.Color
	if strings.TrimSpace(r.Handle) != "" {
		h, err := colors.ParseHex(r.Handle)
		if err != nil {
			return nil, "", err
		}
		handle = &h
	}

	elements, err := designer.Elements(r.Elements)
	if err != nil {
		return nil, "", err
	}

	width, height, err := catalog.Canvas(db.GetDB(), archetype, r.Width, r.Height)
	if err != nil {
		return nil, "", err
	}

	d, err := designer.Build(designer.Request{
		Archetype: archetype,
		Width:     width,
		Height:    height,
		Colors:    body,
		Handle:    handle,
		Elements:  elements,
	})
	if err != nil {
		return nil, "", err
	}

	scheme := r.Scheme
	if scheme == "" {
		scheme = config.GetString("design.default_scheme")
	}
	return d, colors.ParseScheme(scheme), nil
}

// CreateDesignHandler builds, validates and renders a design. A design that
// breaks its scheme is still returned, with a warning and suggestions.
func CreateDesignHandler(c *gin.Context) {
	var req designRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	d, scheme, err := req.build()
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"design": d,
		"svg":    designer.RenderSVG(d),
		"scheme": scheme,
	}

	if designer.ValidateDesign(d, scheme) {
		resp["success"] = true
	} else {
		resp["warning"] = "the selected colors do not satisfy the " + string(scheme) + " scheme"
		resp["suggestions"] = hexList(colors.Suggest(d.BodyColors(), scheme))
	}

	c.JSON(http.StatusOK, resp)
}
