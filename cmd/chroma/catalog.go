// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/chromabags/chromabags/internal/backup"
	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/colors"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/designer"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/search"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage saved combinations",
	Long:  "Seed, list, inspect, export and import the combination catalog",
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the bag models and workshop palettes",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		exitOnError(db.Seed(db.GetDB()))
		fmt.Println("Catalog seeded")
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved combinations, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		combos, err := catalog.ListCombinations(db.GetDB())
		exitOnError(err)

		if len(combos) == 0 {
			fmt.Println(mutedStyle.Render("No combinations saved yet"))
			return
		}

		t := newTable("ID", "NAME", "MODEL", "SCHEME", "PRINCIPAL", "SECONDARY", "HANDLE", "CREATED")
		for _, c := range combos {
			t.Row(fmt.Sprint(c.ID), c.Name, c.BagModel.Name, c.Scheme,
				hexOrDash(c.PrincipalColor), hexOrDash(c.SecondaryColor), hexOrDash(c.HandleColor),
				c.CreatedAt.Format("2006-01-02"))
		}
		fmt.Println(t)
	},
}

var catalogShowSVG string

var catalogShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one combination",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		combo, err := catalog.GetCombinationByName(db.GetDB(), args[0])
		exitOnError(err)
		d, err := catalog.Design(combo)
		exitOnError(err)

		scheme := colors.ParseScheme(combo.Scheme)
		printField("Name", combo.Name)
		printField("Model", fmt.Sprintf("%s (%s)", combo.BagModel.Name, combo.BagModel.Archetype))
		printField("Canvas", fmt.Sprintf("%gx%g, %d elements", d.Width, d.Height, len(d.Elements)))
		for _, rc := range d.ColorsUsed {
			printField(rc.Role, swatch(rc.Color))
		}
		printField("Harmony", harmonyVerdict(designer.ValidateDesign(d, scheme), scheme))

		products, err := catalog.ListProducts(db.GetDB(), combo.ID)
		exitOnError(err)
		for _, p := range products {
			printField("Product", fmt.Sprintf("%s, %.2f, stock %d", p.Name, p.SuggestedPrice, p.Stock))
		}

		if catalogShowSVG != "" {
			exitOnError(os.WriteFile(catalogShowSVG, []byte(designer.RenderSVG(d)+"\n"), 0644))
			printField("Written", catalogShowSVG)
		}
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search combinations by name, model, scheme or color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		results, err := search.Search(db.GetDB(), args[0])
		exitOnError(err)

		if len(results) == 0 {
			fmt.Println(mutedStyle.Render("No matches"))
			return
		}

		t := newTable("ID", "NAME", "MODEL", "SCHEME", "MATCH")
		for _, r := range results {
			t.Row(fmt.Sprint(r.CombinationID), r.Name, r.BagModel, r.Scheme, r.Match)
		}
		fmt.Println(t)
	},
}

var catalogExportOut string

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		exporter := backup.NewCatalogExporter(config.GetString("backups.path"), db.GetDB())

		if catalogExportOut == "-" {
			exitOnError(exporter.Export(os.Stdout))
			return
		}
		if catalogExportOut != "" {
			f, err := os.Create(catalogExportOut)
			exitOnError(err)
			defer f.Close()
			exitOnError(exporter.Export(f))
			fmt.Printf("Catalog exported to %s\n", catalogExportOut)
			return
		}

		filename, err := exporter.CreateExport()
		exitOnError(err)
		fmt.Printf("Catalog exported to %s/exports/%s\n", exporter.BackupPath, filename)
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import combinations from a YAML export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()
		exitOnError(db.Seed(db.GetDB()))

		f, err := os.Open(args[0])
		exitOnError(err)
		defer f.Close()

		result, err := backup.NewCatalogExporter(config.GetString("backups.path"), db.GetDB()).Import(f)
		exitOnError(err)

		fmt.Printf("Imported %d combinations\n", result.Imported)
		for _, name := range result.Skipped {
			fmt.Println(mutedStyle.Render("skipped existing " + name))
		}
	},
}

func hexOrDash(c *models.Color) string {
	if c == nil {
		return "-"
	}
	return "#" + c.Hex
}

func init() {
	catalogShowCmd.Flags().StringVar(&catalogShowSVG, "svg", "", "also write the design to this SVG file")
	catalogExportCmd.Flags().StringVarP(&catalogExportOut, "out", "o", "", "output file, - for stdout (default: backups/exports)")

	catalogCmd.AddCommand(catalogSeedCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}
