// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/chromabags/chromabags/internal/backup"
	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/middleware"
	"github.com/chromabags/chromabags/internal/pricing"
	"github.com/chromabags/chromabags/internal/quotes"
	"github.com/gin-gonic/gin"
)

// statusFor maps engine, catalog and order book errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, colors.ErrInvalidColorFormat),
		errors.Is(err, designer.ErrOutOfBounds),
		errors.Is(err, designer.ErrInvalidOperation),
		errors.Is(err, designer.ErrInvalidDimensions),
		errors.Is(err, designer.ErrMissingColors),
		errors.Is(err, pricing.ErrUnknownArchetype),
		errors.Is(err, backup.ErrInvalidExport),
		errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, quotes.ErrInvalidStatus),
		errors.Is(err, quotes.ErrInvalidQuantity),
		errors.Is(err, quotes.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicateName),
		errors.Is(err, quotes.ErrEmptyQuotation),
		errors.Is(err, quotes.ErrDuplicateOrder),
		errors.Is(err, quotes.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg}. Unexpected errors are logged and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", middleware.RequestID(c), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseColors parses a list of hex strings, stopping at the first bad one
func parseColors(hexes []string) ([]colors.Color, error) {
	out := make([]colors.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colors.ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func hexList(cs []colors.Color) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.String())
	}
	return out
}
