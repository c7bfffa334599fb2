// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chromabags/chromabags/internal/catalog"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/models"
	"github.com/chromabags/chromabags/internal/quotes"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var (
	clientEmail   string
	clientPhone   string
	clientAddress string
)

var clientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a client",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		client, err := quotes.CreateClient(db.GetDB(), models.Client{
			Name:    args[0],
			Email:   clientEmail,
			Phone:   clientPhone,
			Address: clientAddress,
		})
		exitOnError(err)
		fmt.Printf("Client %s created (ID: %d)\n", client.Name, client.ID)
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		clients, err := quotes.ListClients(db.GetDB())
		exitOnError(err)
		if len(clients) == 0 {
			fmt.Println(mutedStyle.Render("No clients yet"))
			return
		}

		t := newTable("ID", "NAME", "EMAIL", "PHONE")
		for _, c := range clients {
			t.Row(fmt.Sprint(c.ID), c.Name, c.Email, c.Phone)
		}
		fmt.Println(t)
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Manage quotations",
	Long:  "Create quotations for clients and approve them into orders",
}

var (
	quoteClient uint
	quoteLines  []string
	quoteFile   string
	quoteNotes  string
	quoteStatus string
)

// parseLineArg reads "<combination>:<quantity>", where the combination is a
// name or an ID
func parseLineArg(database *gorm.DB, arg string) (quotes.LineRequest, error) {
	i := strings.LastIndex(arg, ":")
	if i <= 0 {
		return quotes.LineRequest{}, fmt.Errorf("line %q must look like <combination>:<quantity>", arg)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(arg[i+1:]))
	if err != nil {
		return quotes.LineRequest{}, fmt.Errorf("line %q: bad quantity: %w", arg, err)
	}

	ref := strings.TrimSpace(arg[:i])
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return quotes.LineRequest{CombinationID: uint(id), Quantity: qty}, nil
	}
	combo, err := catalog.GetCombinationByName(database, ref)
	if err != nil {
		return quotes.LineRequest{}, err
	}
	return quotes.LineRequest{CombinationID: combo.ID, Quantity: qty}, nil
}

// readQuotationFile loads a quotation request from YAML
func readQuotationFile(path string) (quotes.QuotationRequest, error) {
	var req quotes.QuotationRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return req, nil
}

func printQuotation(q *models.Quotation) {
	printField("Quotation", fmt.Sprintf("#%d for %s", q.ID, q.Client.Name))
	printField("Status", q.Status)
	t := newTable("COMBINATION", "QTY", "UNIT", "SUBTOTAL")
	for _, l := range q.Lines {
		t.Row(l.Combination.Name, fmt.Sprint(l.Quantity), fmt.Sprintf("%.2f", l.UnitPrice), fmt.Sprintf("%.2f", l.Subtotal))
	}
	fmt.Println(t)
	printField("Subtotal", fmt.Sprintf("%.2f", q.Subtotal))
	printField("Tax", fmt.Sprintf("%.2f", q.Tax))
	printField("Total", fmt.Sprintf("%.2f", q.Total))
}

var quoteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a quotation",
	Long: `Create a quotation from --line flags or a YAML file.

  chroma quote create --client 1 --line "Marino clasico:10" --line 4:2

  # quote.yaml
  client_id: 1
  notes: feria de mayo
  lines:
    - combination_id: 4
      quantity: 2
      unit_price: 140`,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		var req quotes.QuotationRequest
		if quoteFile != "" {
			var err error
			req, err = readQuotationFile(quoteFile)
			exitOnError(err)
		}
		if quoteClient != 0 {
			req.ClientID = quoteClient
		}
		if quoteNotes != "" {
			req.Notes = quoteNotes
		}
		for _, arg := range quoteLines {
			l, err := parseLineArg(db.GetDB(), arg)
			exitOnError(err)
			req.Lines = append(req.Lines, l)
		}

		q, err := quotes.CreateQuotation(db.GetDB(), req)
		exitOnError(err)
		printQuotation(q)
	},
}

var quoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotations, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		list, err := quotes.ListQuotations(db.GetDB(), quoteStatus)
		exitOnError(err)
		if len(list) == 0 {
			fmt.Println(mutedStyle.Render("No quotations"))
			return
		}

		t := newTable("ID", "CLIENT", "STATUS", "LINES", "TOTAL", "CREATED")
		for _, q := range list {
			t.Row(fmt.Sprint(q.ID), q.Client.Name, q.Status, fmt.Sprint(len(q.Lines)),
				fmt.Sprintf("%.2f", q.Total), q.CreatedAt.Format("2006-01-02"))
		}
		fmt.Println(t)
	},
}

func idArg(arg string) uint {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		exitOnError(fmt.Errorf("invalid id %q", arg))
	}
	return uint(id)
}

var quoteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a quotation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		q, err := quotes.GetQuotation(db.GetDB(), idArg(args[0]))
		exitOnError(err)
		printQuotation(q)
	},
}

var quoteStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set a quotation's status; approving creates an order",
	Long:  "Statuses: pending, approved, rejected, completed (or pendiente, aprobada, rechazada, completada)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		order, err := quotes.UpdateQuotationStatus(db.GetDB(), idArg(args[0]), args[1])
		exitOnError(err)
		if order == nil {
			fmt.Println("Quotation updated")
			return
		}
		printField("Order", fmt.Sprintf("#%d created", order.ID))
		printField("Total", fmt.Sprintf("%.2f", order.Total))
		printField("Delivery", order.DeliveryDate.Format("2006-01-02"))
	},
}

var quoteDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Copy a quotation into a new pending one",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		q, err := quotes.DuplicateQuotation(db.GetDB(), idArg(args[0]))
		exitOnError(err)
		fmt.Printf("Quotation #%d created\n", q.ID)
	},
}

var quoteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a quotation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		exitOnError(quotes.DeleteQuotation(db.GetDB(), idArg(args[0])))
		fmt.Println("Quotation deleted")
	},
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders",
}

var (
	orderClient   uint
	orderLine     string
	orderDelivery string
	orderStatus   string
)

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must look like 2006-01-02", s)
	}
	return t, nil
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Place a direct order for one combination",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		l, err := parseLineArg(db.GetDB(), orderLine)
		exitOnError(err)
		req := quotes.OrderRequest{ClientID: orderClient, CombinationID: l.CombinationID, Quantity: l.Quantity, Status: orderStatus}
		if orderDelivery != "" {
			req.DeliveryDate, err = parseDate(orderDelivery)
			exitOnError(err)
		}

		order, err := quotes.CreateOrder(db.GetDB(), req)
		exitOnError(err)
		fmt.Printf("Order #%d created, total %.2f, delivery %s\n", order.ID, order.Total, order.DeliveryDate.Format("2006-01-02"))
	},
}

func orderTable(list []models.Order) string {
	t := newTable("ID", "CLIENT", "STATUS", "TOTAL", "DELIVERY")
	for _, o := range list {
		t.Row(fmt.Sprint(o.ID), o.Client.Name, o.Status, fmt.Sprintf("%.2f", o.Total), o.DeliveryDate.Format("2006-01-02"))
	}
	return t.String()
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		list, err := quotes.ListOrders(db.GetDB(), orderStatus)
		exitOnError(err)
		if len(list) == 0 {
			fmt.Println(mutedStyle.Render("No orders"))
			return
		}
		fmt.Println(orderTable(list))
	},
}

var orderUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an order's status or delivery date",
	Long:  "Statuses: pending, in_production, delivered, cancelled (or pendiente, en_produccion, entregado, cancelado)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		upd := quotes.OrderUpdate{Status: orderStatus}
		if orderDelivery != "" {
			d, err := parseDate(orderDelivery)
			exitOnError(err)
			upd.DeliveryDate = &d
		}

		order, err := quotes.UpdateOrder(db.GetDB(), idArg(args[0]), upd)
		exitOnError(err)
		fmt.Printf("Order #%d is %s, delivery %s\n", order.ID, order.Status, order.DeliveryDate.Format("2006-01-02"))
	},
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		exitOnError(quotes.DeleteOrder(db.GetDB(), idArg(args[0])))
		fmt.Println("Order deleted")
	},
}

var orderBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show orders to deliver, overdue orders and the order book figures",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		board, err := quotes.OrderBoard(db.GetDB())
		exitOnError(err)
		stats, err := quotes.OrderStats(db.GetDB())
		exitOnError(err)

		printField("To deliver", fmt.Sprint(len(board.ToDeliver)))
		if len(board.ToDeliver) > 0 {
			fmt.Println(orderTable(board.ToDeliver))
		}
		if len(board.Overdue) > 0 {
			printField("Overdue", warnStyle.Render(fmt.Sprint(len(board.Overdue))))
			fmt.Println(orderTable(board.Overdue))
		}
		printField("Orders", fmt.Sprint(stats.TotalOrders))
		printField("Revenue", fmt.Sprintf("%.2f", stats.Revenue))
		printField("This month", fmt.Sprintf("%d orders, %.2f", stats.MonthOrders, stats.MonthRevenue))
		printField("Clients", fmt.Sprint(stats.ActiveClients))
		for _, p := range stats.TopProducts {
			printField("Top", fmt.Sprintf("%s (%d)", p.Name, p.Quantity))
		}
	},
}

func init() {
	clientAddCmd.Flags().StringVar(&clientEmail, "email", "", "email address")
	clientAddCmd.Flags().StringVar(&clientPhone, "phone", "", "phone number")
	clientAddCmd.Flags().StringVar(&clientAddress, "address", "", "postal address")
	clientCmd.AddCommand(clientAddCmd, clientListCmd)
	rootCmd.AddCommand(clientCmd)

	quoteCreateCmd.Flags().UintVar(&quoteClient, "client", 0, "client ID")
	quoteCreateCmd.Flags().StringArrayVarP(&quoteLines, "line", "l", nil, "line as <combination name or ID>:<quantity>, repeatable")
	quoteCreateCmd.Flags().StringVarP(&quoteFile, "file", "f", "", "YAML file with the quotation")
	quoteCreateCmd.Flags().StringVar(&quoteNotes, "notes", "", "free text notes")
	quoteListCmd.Flags().StringVar(&quoteStatus, "status", "", "only show quotations in this status")
	quoteCmd.AddCommand(quoteCreateCmd, quoteListCmd, quoteShowCmd, quoteStatusCmd, quoteDuplicateCmd, quoteDeleteCmd)
	rootCmd.AddCommand(quoteCmd)

	orderCreateCmd.Flags().UintVar(&orderClient, "client", 0, "client ID")
	orderCreateCmd.Flags().StringVarP(&orderLine, "line", "l", "", "<combination name or ID>:<quantity>")
	orderCreateCmd.Flags().StringVar(&orderDelivery, "delivery", "", "delivery date, YYYY-MM-DD (default: the configured lead time)")
	orderCreateCmd.Flags().StringVar(&orderStatus, "status", "", "initial status (default: pending)")
	orderListCmd.Flags().StringVar(&orderStatus, "status", "", "only show orders in this status")
	orderUpdateCmd.Flags().StringVar(&orderStatus, "status", "", "new status")
	orderUpdateCmd.Flags().StringVar(&orderDelivery, "delivery", "", "new delivery date, YYYY-MM-DD")
	orderCmd.AddCommand(orderCreateCmd, orderListCmd, orderUpdateCmd, orderDeleteCmd, orderBoardCmd)
	rootCmd.AddCommand(orderCmd)
}
