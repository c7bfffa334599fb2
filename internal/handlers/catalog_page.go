// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/themes"
	"github.com/gin-gonic/gin"
)

// CatalogPageHandler renders every saved combination as a themed HTML page
func CatalogPageHandler(c *gin.Context) {
	combos, err := catalog.ListCombinations(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}

	theme := themes.GenerateColors(themes.GetPalette(config.GetString("ui.palette")), config.GetBool("ui.dark_mode"))

	var cards strings.Builder
	for _, combo := range combos {
		d, err := catalog.Design(&combo)
		if err != nil {
			// Log error but keep rendering the rest of the catalog
			log.Printf("Error decoding combination %d: %v", combo.ID, err)
			continue
		}

		status := `<span class="harmony-ok">harmonic</span>`
		if !designer.ValidateDesign(d, colors.ParseScheme(combo.Scheme)) {
			status = `<span class="harmony-warning">outside scheme</span>`
		}

		var swatches strings.Builder
		for _, rc := range d.ColorsUsed {
			fmt.Fprintf(&swatches, `<span class="swatch" title="%s %s" style="%s"></span> `,
				html.EscapeString(rc.Role), rc.Color, themes.SwatchStyle(rc.Color.String()))
		}

		fmt.Fprintf(&cards, `<div class="design-card">
	<h2>%s</h2>
	%s
	<p class="muted">%s &middot; %s &middot; %s</p>
	<p>%s</p>
</div>
`, html.EscapeString(combo.Name), designer.RenderSVG(d),
			html.EscapeString(combo.BagModel.Name), html.EscapeString(combo.Scheme), status, swatches.String())
	}

	if len(combos) == 0 {
		cards.WriteString(`<p class="muted">No combinations saved yet.</p>`)
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>ChromaBags catalog</title>
	<style>
%s
	</style>
</head>
<body>
	<header><h1>ChromaBags catalog</h1></header>
	<main class="catalog">
%s
	</main>
</body>
</html>
`, themes.GenerateCSS(theme), cards.String())

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
