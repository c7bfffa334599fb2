// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Build and render bag designs",
}

var (
	designArchetype string
	designColors    []string
	designHandle    string
	designFile      string
	designScheme    string
	designOut       string
	designSave      string
	designWidth     float64
	designHeight    float64
)

var designRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build a design and write it as SVG",
	Long: `Build a design for one of the bag archetypes and write it as SVG.

Freeform designs read their elements from a YAML file:

  - type: panel
    x: 0
    y: 0
    width: 300
    height: 400
    color: "#000080"
  - type: handle
    x1: 75
    x2: 105
    y2: -30
    stroke_width: 10
    color: "#ffffff"`,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initConfig())

		// the catalog is only opened when saving; its bag models then size the canvas
		var database *gorm.DB
		if designSave != "" {
			exitOnError(initSystemDB())
			defer db.Close()
			exitOnError(db.Seed(db.GetDB()))
			database = db.GetDB()
		}

		d, err := buildDesignFromFlags(database)
		exitOnError(err)

		scheme := colors.ParseScheme(designScheme)
		if designScheme == "" {
			scheme = colors.ParseScheme(config.GetString("design.default_scheme"))
		}

		report, err := writeDesign(cmd.OutOrStdout(), cmd.ErrOrStderr(), d, scheme, designOut)
		exitOnError(err)

		if database != nil {
			combo, err := catalog.SaveDesign(database, catalog.SaveRequest{Name: designSave, Scheme: scheme, Design: d})
			exitOnError(err)
			fprintField(report, "Saved", fmt.Sprintf("%s (ID: %d)", combo.Name, combo.ID))
		}
	},
}

// writeDesign writes the SVG to out, or to stdout when out is empty or "-",
// followed by a color report. The report goes to stderr whenever the SVG
// takes stdout, and the writer it used is returned.
func writeDesign(stdout, stderr io.Writer, d *designer.Design, scheme colors.Scheme, out string) (io.Writer, error) {
	svg := designer.RenderSVG(d)
	report := stdout
	if out == "" || out == "-" {
		if _, err := fmt.Fprintln(stdout, svg); err != nil {
			return nil, err
		}
		report = stderr
	} else {
		if err := os.WriteFile(out, []byte(svg+"\n"), 0644); err != nil {
			return nil, err
		}
		fprintField(report, "Written", out)
	}

	fprintField(report, "Colors", swatchRow(d.ColorsUsed.Colors()))
	fprintField(report, "Harmony", harmonyVerdict(designer.ValidateDesign(d, scheme), scheme))
	if suggestions := colors.Suggest(d.BodyColors(), scheme); len(suggestions) > 0 {
		fprintField(report, "Try", swatchRow(suggestions))
	}
	return report, nil
}

func buildDesignFromFlags(database *gorm.DB) (*designer.Design, error) {
	archetype, err := designer.ParseArchetype(designArchetype)
	if err != nil {
		return nil, err
	}

	body, err := parseHexArgs(designColors)
	if err != nil {
		return nil, err
	}

	var handle *colors.Color
	if designHandle != "" {
		h, err := colors.ParseHex(designHandle)
		if err != nil {
			return nil, err
		}
		handle = &h
	}

	var elements []designer.Element
	if designFile != "" {
		elements, err = readElements(designFile)
		if err != nil {
			return nil, err
		}
	}

	width, height, err := catalog.Canvas(database, archetype, designWidth, designHeight)
	if err != nil {
		return nil, err
	}

	return designer.Build(designer.Request{
		Archetype: archetype,
		Width:     width,
		Height:    height,
		Colors:    body,
		Handle:    handle,
		Elements:  elements,
	})
}

// readElements loads freeform elements from a YAML list
func readElements(path string) ([]designer.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var specs []designer.ElementSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return designer.Elements(specs)
}

func init() {
	flags := designRenderCmd.Flags()
	flags.StringVarP(&designArchetype, "archetype", "a", "single", "bag archetype: single, two_tone or freeform")
	flags.StringSliceVarP(&designColors, "color", "c", nil, "body color, repeat for two-tone (principal first)")
	flags.StringVar(&designHandle, "handle", "", "handle color (default: white or black by contrast)")
	flags.StringVarP(&designFile, "file", "f", "", "YAML file with freeform elements")
	flags.StringVarP(&designScheme, "scheme", "s", "", "harmony scheme to validate against")
	flags.StringVarP(&designOut, "out", "o", "", "SVG output file (default: stdout)")
	flags.StringVar(&designSave, "save", "", "save the design to the catalog under this name")
	flags.Float64Var(&designWidth, "width", 0, "canvas width")
	flags.Float64Var(&designHeight, "height", 0, "canvas height")

	designCmd.AddCommand(designRenderCmd)
	rootCmd.AddCommand(designCmd)
}
