// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/chromabags/chromabags/internal/colors"
	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Color theory tools",
	Long:  "Inspect colors, compare contrast, check harmony schemes and pick handle colors",
}

var colorInfoCmd = &cobra.Command{
	Use:   "info <hex>",
	Short: "Show a color and the colors derived from it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := colors.ParseHex(args[0])
		exitOnError(err)

		rgb, hsv := c.RGB(), c.HSV()
		analogous := colors.AnalogousOf(c, colors.DefaultAnalogousAngle)
		triadic := colors.TriadicOf(c)

		printField("Color", swatch(c))
		printField("RGB", fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B))
		printField("HSV", fmt.Sprintf("%.1f°, %.1f%%, %.1f%%", hsv.H, hsv.S, hsv.V))
		printField("Complementary", swatch(colors.ComplementaryOf(c)))
		printField("Analogous", swatchRow(analogous[:]))
		printField("Triadic", swatchRow(triadic[:]))
		printField("Handle", swatch(colors.SuggestHandleColor([]colors.Color{c})))
	},
}

var colorContrastCmd = &cobra.Command{
	Use:   "contrast <hex> <hex>",
	Short: "Show the WCAG contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := parseHexArgs(args)
		exitOnError(err)

		ratio := colors.ContrastRatio(set[0], set[1])
		verdict := warnStyle.Render("below 4.5:1")
		if ratio >= 4.5 {
			verdict = okStyle.Render("readable")
		}
		fmt.Printf("%s  %.2f:1 %s\n", swatchRow(set), ratio, verdict)
	},
}

var colorHarmonyScheme string

var colorHarmonyCmd = &cobra.Command{
	Use:   "harmony <hex>...",
	Short: "Check colors against a harmony scheme",
	Long:  "Check colors against a harmony scheme.\n\nSchemes: " + schemeNames(),
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := parseHexArgs(args)
		exitOnError(err)

		scheme := colors.ParseScheme(colorHarmonyScheme)
		valid := colors.ValidateHarmony(set, scheme)

		fmt.Printf("%s  %s\n", swatchRow(set), harmonyVerdict(valid, scheme))
		if suggestions := colors.Suggest(set, scheme); len(suggestions) > 0 {
			printField("Try", swatchRow(suggestions))
		}
	},
}

var colorHandleCmd = &cobra.Command{
	Use:   "handle <hex>...",
	Short: "Pick white or black handles for the body colors",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := parseHexArgs(args)
		exitOnError(err)

		handle := colors.SuggestHandleColor(body)
		fmt.Printf("%s  -> %s\n", swatchRow(body), swatch(handle))
	},
}

func parseHexArgs(args []string) ([]colors.Color, error) {
	set := make([]colors.Color, 0, len(args))
	for _, a := range args {
		c, err := colors.ParseHex(a)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, err)
		}
		set = append(set, c)
	}
	return set, nil
}

func init() {
	colorHarmonyCmd.Flags().StringVar(&colorHarmonyScheme, "scheme", string(colors.Harmonic), "harmony scheme: "+schemeNames())

	colorCmd.AddCommand(colorInfoCmd)
	colorCmd.AddCommand(colorContrastCmd)
	colorCmd.AddCommand(colorHarmonyCmd)
	colorCmd.AddCommand(colorHandleCmd)
	rootCmd.AddCommand(colorCmd)
}

func schemeNames() string {
	names := make([]string, 0, len(colors.Schemes()))
	for _, s := range colors.Schemes() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
