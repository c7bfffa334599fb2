// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/gin-gonic/gin"
)

type paletteColor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

func toPaletteColors(list []models.Color) []paletteColor {
	out := make([]paletteColor, 0, len(list))
	for _, c := range list {
		out = append(out, paletteColor{ID: c.ID, Name: c.Name, Hex: "#" + c.Hex})
	}
	return out
}

// ListPalettesHandler lists the workshop palettes with their colors
func ListPalettesHandler(c *gin.Context) {
	palettes, err := catalog.ListPalettes(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(palettes))
	for _, p := range palettes {
		out = append(out, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"scheme":      p.Scheme,
			"description": p.Description,
			"colors":      toPaletteColors(p.Colors),
		})
	}
	c.JSON(http.StatusOK, gin.H{"palettes": out})
}

// PaletteColorsHandler lists the colors of one palette
func PaletteColorsHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	list, err := catalog.PaletteColors(db.GetDB(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaletteColors(list))
}
