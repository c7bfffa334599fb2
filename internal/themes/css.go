// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// GenerateCSS generates the catalog stylesheet with color variables from colors struct
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
}

body {
  background-color: var(--color-bg);
  color: var(--color-text);
  font-family: system-ui, sans-serif;
  margin: 0;
}

header {
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
  padding: 16px 24px;
}

a {
  color: var(--color-secondary);
}

.catalog {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 16px;
  padding: 24px;
}

.design-card {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
}

.design-card svg {
  width: 100%%;
  height: auto;
}

.swatch {
  display: inline-block;
  width: 20px;
  height: 20px;
  border: 1px solid var(--color-border);
  border-radius: 4px;
  vertical-align: middle;
}

.text-muted, .muted {
  color: var(--color-text-muted);
}

.harmony-ok { color: var(--color-success); }
.harmony-error { color: var(--color-error); }
.harmony-warning { color: var(--color-warning); }
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Error, colors.Warning)
}

// SwatchStyle returns the inline style for a swatch of the given #rrggbb color
func SwatchStyle(hex string) string {
	return "background-color: " + strings.ToLower(hex) + ";"
}
