// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chromabags/chromabags/internal/backup"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploaded catalog exports
const maxImportSize = 10 << 20

// ExportCatalogHandler streams the catalog as a YAML download
func ExportCatalogHandler(c *gin.Context) {
	filename := fmt.Sprintf("catalog-%s.yaml", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", "application/yaml")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := backup.NewCatalogExporter("", db.GetDB()).Export(c.Writer); err != nil {
		respondError(c, err)
	}
}

// ImportCatalogHandler imports a YAML export sent as the multipart field "file"
func ImportCatalogHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if file.Size > maxImportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer src.Close()

	result, err := backup.NewCatalogExporter("", db.GetDB()).Import(src)
	if err != nil {
		respondError(c, err)
		return
	}

	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imported": result.Imported,
		"skipped":  skipped,
	})
}
