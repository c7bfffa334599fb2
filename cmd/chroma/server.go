// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chromabags/chromabags/internal/backup"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/db"
	"github.com/chromabags/chromabags/internal/handlers"
	"github.com/chromabags/chromabags/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the ChromaBags HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initSystemDB())
		defer db.Close()

		exitOnError(db.Seed(db.GetDB()))

		limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.requests"), config.GetDuration("ratelimit.interval"))
		defer limiter.Stop()

		addr := fmt.Sprintf("%s:%s", config.GetString("server.host"), config.GetString("server.http_port"))
		server := &http.Server{
			Addr:    addr,
			Handler: newRouter(limiter),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var schedulerDone <-chan struct{}
		if config.GetBool("backups.enable_auto_backup") && config.GetString("database.type") == "sqlite" {
			scheduler := backup.NewScheduler(backup.NewBackupManager(config.GetString("backups.path"), config.GetString("database.path")))
			if interval := config.GetDuration("backups.interval"); interval > 0 {
				scheduler.Interval = interval
			}
			scheduler.Retention = config.GetInt("backups.retention")
			schedulerDone = scheduler.Start(ctx)
			handlers.SetBackupMonitor(scheduler)
			log.Println("Backup scheduler started")
		}

		go func() {
			fmt.Printf("Starting HTTP server on http://%s\n", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		}()

		<-ctx.Done()
		log.Println("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}

		if schedulerDone != nil {
			select {
			case <-schedulerDone:
			case <-time.After(5 * time.Second):
				log.Println("backup scheduler did not stop in time")
			}
		}
	},
}

// newRouter wires every HTTP route
func newRouter(limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(limiter, "/api/designs", "/api/harmony", "/api/handle"))

	r.GET("/health", handlers.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})
	r.GET("/catalog", handlers.CatalogPageHandler)
	r.GET("/combinations/:id/svg", handlers.CombinationSVGHandler)

	api := r.Group("/api")
	{
		api.GET("/models", handlers.ListModelsHandler)
		api.GET("/colors/:hex", handlers.ColorInfoHandler)
		api.POST("/designs", handlers.CreateDesignHandler)
		api.POST("/harmony/validate", handlers.ValidateHarmonyHandler)
		api.POST("/handle/suggest", handlers.SuggestHandleHandler)

		api.GET("/combinations", handlers.ListCombinationsHandler)
		api.POST("/combinations", handlers.SaveCombinationHandler)
		api.GET("/combinations/:id", handlers.GetCombinationHandler)
		api.DELETE("/combinations/:id", handlers.DeleteCombinationHandler)
		api.POST("/combinations/:id/products", handlers.CreateProductHandler)

		api.GET("/palettes", handlers.ListPalettesHandler)
		api.GET("/palettes/:id/colors", handlers.PaletteColorsHandler)

		api.GET("/search", handlers.SearchHandler)
		api.GET("/catalog/export", handlers.ExportCatalogHandler)
		api.POST("/catalog/import", handlers.ImportCatalogHandler)

		api.GET("/clients", handlers.ListClientsHandler)
		api.POST("/clients", handlers.CreateClientHandler)

		api.GET("/quotations", handlers.ListQuotationsHandler)
		api.POST("/quotations", handlers.CreateQuotationHandler)
		api.GET("/quotations/:id", handlers.GetQuotationHandler)
		api.DELETE("/quotations/:id", handlers.DeleteQuotationHandler)
		api.POST("/quotations/:id/duplicate", handlers.DuplicateQuotationHandler)
		api.PUT("/quotations/:id/status", handlers.UpdateQuotationStatusHandler)

		api.GET("/orders", handlers.ListOrdersHandler)
		api.POST("/orders", handlers.CreateOrderHandler)
		api.GET("/orders/:id", handlers.GetOrderHandler)
		api.PUT("/orders/:id", handlers.UpdateOrderHandler)
		api.DELETE("/orders/:id", handlers.DeleteOrderHandler)
		api.GET("/reports/orders", handlers.OrderBoardHandler)
		api.GET("/reports/stats", handlers.OrderStatsHandler)

		api.GET("/materials", handlers.ListMaterialsHandler)
		api.POST("/materials", handlers.AddMaterialHandler)
		api.POST("/materials/:id/stock", handlers.AdjustStockHandler)
		api.DELETE("/materials/:id", handlers.DeleteMaterialHandler)
		api.GET("/inventory/low-stock", handlers.LowStockHandler)
		api.POST("/inventory/cost", handlers.ProductionCostHandler)
	}

	return r
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
