// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/quotes"
	"github.com/spf13/cobra"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Manage the raw material inventory",
}

var (
	materialKind        string
	materialUnit        string
	materialCost        float64
	materialDescription string
	materialThreshold   float64
	materialUses        []string
)

var materialAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a material with no stock",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		m, err := quotes.AddMaterial(db.GetDB(), models.Material{
			Name:        args[0],
			Kind:        materialKind,
			Unit:        materialUnit,
			UnitCost:    materialCost,
			Description: materialDescription,
		})
		exitOnError(err)
		fmt.Printf("Material %s added (ID: %d)\n", m.Name, m.ID)
	},
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List materials with their stock value",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		items, err := quotes.ListInventory(db.GetDB())
		exitOnError(err)
		if len(items) == 0 {
			fmt.Println(mutedStyle.Render("No materials"))
			return
		}

		threshold := quotes.LowStockThreshold()
		var total float64
		t := newTable("ID", "NAME", "KIND", "STOCK", "UNIT COST", "VALUE")
		for _, item := range items {
			stock := fmt.Sprintf("%g %s", item.Stock, item.Unit)
			if item.Stock < threshold {
				stock = warnStyle.Render(stock)
			}
			t.Row(fmt.Sprint(item.ID), item.Name, item.Kind, stock,
				fmt.Sprintf("%.2f", item.UnitCost), fmt.Sprintf("%.2f", item.Value))
			total += item.Value
		}
		fmt.Println(t)
		printField("Total value", fmt.Sprintf("%.2f", total))
	},
}

var materialStockCmd = &cobra.Command{
	Use:   "stock <id> <delta>",
	Short: "Add to (positive) or take from (negative) a material's stock",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		delta, err := strconv.ParseFloat(args[1], 64)
		if err != nil || delta == 0 {
			exitOnError(fmt.Errorf("delta %q must be a non-zero number", args[1]))
		}

		m, err := quotes.AdjustStock(db.GetDB(), idArg(args[0]), delta)
		exitOnError(err)
		fmt.Printf("%s: %g %s in stock\n", m.Name, m.Stock, m.Unit)
	},
}

var materialLowCmd = &cobra.Command{
	Use:   "low",
	Short: "List materials running low",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		list, err := quotes.LowStock(db.GetDB(), materialThreshold)
		exitOnError(err)
		if len(list) == 0 {
			fmt.Println(okStyle.Render("Stock levels are fine"))
			return
		}

		t := newTable("ID", "NAME", "STOCK")
		for _, m := range list {
			t.Row(fmt.Sprint(m.ID), m.Name, warnStyle.Render(fmt.Sprintf("%g %s", m.Stock, m.Unit)))
		}
		fmt.Println(t)
	},
}

// parseUseArg reads "<material id>:<quantity>"
func parseUseArg(arg string) (quotes.MaterialUse, error) {
	id, qty, ok := strings.Cut(arg, ":")
	if !ok {
		return quotes.MaterialUse{}, fmt.Errorf("use %q must look like <material id>:<quantity>", arg)
	}
	mid, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return quotes.MaterialUse{}, fmt.Errorf("use %q: bad material id", arg)
	}
	q, err := strconv.ParseFloat(strings.TrimSpace(qty), 64)
	if err != nil {
		return quotes.MaterialUse{}, fmt.Errorf("use %q: bad quantity", arg)
	}
	return quotes.MaterialUse{MaterialID: uint(mid), Quantity: q}, nil
}

var materialCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Price the materials a job consumes",
	Long:  `Example: chroma material cost --use 1:2.5 --use 3:12`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(materialUses) == 0 {
			exitOnError(fmt.Errorf("at least one --use is required"))
		}
		uses := make([]quotes.MaterialUse, 0, len(materialUses))
		for _, arg := range materialUses {
			u, err := parseUseArg(arg)
			exitOnError(err)
			uses = append(uses, u)
		}

		exitOnError(initSystemDB())
		defer db.Close()

		cost, err := quotes.ProductionCost(db.GetDB(), uses)
		exitOnError(err)
		printField("Cost", fmt.Sprintf("%.2f", cost))
	},
}

var materialDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a material",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		exitOnError(quotes.DeleteMaterial(db.GetDB(), idArg(args[0])))
		fmt.Println("Material deleted")
	},
}

func init() {
	materialAddCmd.Flags().StringVar(&materialKind, "kind", "", "material kind, e.g. fabric or thread")
	materialAddCmd.Flags().StringVar(&materialUnit, "unit", "pieza", "unit of measure")
	materialAddCmd.Flags().Float64Var(&materialCost, "cost", 0, "cost per unit")
	materialAddCmd.Flags().StringVar(&materialDescription, "description", "", "free text description")
	materialLowCmd.Flags().Float64Var(&materialThreshold, "threshold", 0, "stock level to compare against (default: inventory.low_stock_threshold)")
	materialCostCmd.Flags().StringArrayVar(&materialUses, "use", nil, "<material id>:<quantity>, repeatable")

	materialCmd.AddCommand(materialAddCmd, materialListCmd, materialStockCmd, materialLowCmd, materialCostCmd, materialDeleteCmd)
	rootCmd.AddCommand(materialCmd)
}
