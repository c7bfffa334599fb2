// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/chromabags/chromabags/internal/colors"
	"github.com/gin-gonic/gin"
)

// ColorInfoHandler describes one color and the colors derived from it
func ColorInfoHandler(c *gin.Context) {
	color, err := colors.ParseHex(c.Param("hex"))
	if err != nil {
		respondError(c, err)
		return
	}

	rgb, hsv := color.RGB(), color.HSV()
	analogous := colors.AnalogousOf(color, colors.DefaultAnalogousAngle)
	triadic := colors.TriadicOf(color)

	c.JSON(http.StatusOK, gin.H{
		"hex":           color.String(),
		"rgb":           gin.H{"r": rgb.R, "g": rgb.G, "b": rgb.B},
		"hsv":           gin.H{"h": hsv.H, "s": hsv.S, "v": hsv.V},
		"complementary": colors.ComplementaryOf(color).String(),
		"analogous":     hexList(analogous[:]),
		"triadic":       hexList(triadic[:]),
		"handle":        colors.SuggestHandleColor([]colors.Color{color}).String(),
	})
}

type harmonyRequest struct {
	Colors []string `json:"colors"`
	Scheme string   `json:"scheme"`
}

// ValidateHarmonyHandler checks a color set against a scheme and proposes fixes
func ValidateHarmonyHandler(c *gin.Context) {
	var req harmonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	set, err := parseColors(req.Colors)
	if err != nil {
		respondError(c, err)
		return
	}

	scheme := colors.ParseScheme(req.Scheme)
	c.JSON(http.StatusOK, gin.H{
		"valid":       colors.ValidateHarmony(set, scheme),
		"scheme":      scheme,
		"suggestions": hexList(colors.Suggest(set, scheme)),
	})
}

type handleRequest struct {
	Colors []string `json:"colors"`
}

// SuggestHandleHandler picks white or black handles for the given body colors
func SuggestHandleHandler(c *gin.Context) {
	var req handleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	body, err := parseColors(req.Colors)
	if err != nil {
		respondError(c, err)
		return
	}

	handle := colors.SuggestHandleColor(body)
	name := "black"
	if handle == colors.White {
		name = "white"
	}
	c.JSON(http.StatusOK, gin.H{"color": handle.String(), "name": name})
}
