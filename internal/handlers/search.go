// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/search"
	"github.com/gin-gonic/gin"
)

// SearchHandler searches saved combinations via ?q=
func SearchHandler(c *gin.Context) {
	query := c.Query("q")

	results, err := search.Search(db.GetDB(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	})
}
