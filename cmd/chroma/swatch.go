// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/chromabags/chromabags/internal/colors"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// swatch renders a color block labeled with its hex, in readable text
func swatch(c colors.Color) string {
	text := colors.SuggestHandleColor([]colors.Color{c})
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Foreground(lipgloss.Color(text.String())).
		Padding(0, 1).
		Render(c.String())
}

func swatchRow(cs []colors.Color) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, swatch(c))
	}
	return strings.Join(parts, " ")
}

func printField(label string, value string) {
	fprintField(os.Stdout, label, value)
}

func fprintField(w io.Writer, label string, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label+":")), value)
}

func harmonyVerdict(valid bool, scheme colors.Scheme) string {
	if valid {
		return okStyle.Render(fmt.Sprintf("satisfies %s", scheme))
	}
	return warnStyle.Render(fmt.Sprintf("does not satisfy %s", scheme))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return labelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}
