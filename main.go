package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"moonlight-backend/config"
	"moonlight-backend/controllers"
	"moonlight-backend/routes"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	bookingService := services.NewBookingService(db)
	customerService := services.NewCustomerService(db)
	invoiceService := services.NewInvoiceService(db)
	reportService := services.NewReportService(db)
	housekeepingService := services.NewHousekeepingService(db)
	maintenanceService := services.NewMaintenanceService(db)
	staffService := services.NewStaffService(db)
	roleService := services.NewRoleService(db)
	reviewService := services.NewReviewService(db)
	settingsService := services.NewSettingsService(db)

	// Build router
	router := routes.SetupRouter(routes.Controllers{
		Rooms:        controllers.NewRoomController(roomService),
		RoomTypes:    controllers.NewRoomTypeController(roomTypeService),
		Bookings:     controllers.NewBookingController(bookingService, customerService),
		Invoices:     controllers.NewInvoiceController(invoiceService),
		Reports:      controllers.NewReportController(reportService),
		Housekeeping: controllers.NewHousekeepingController(housekeepingService),
		Maintenance:  controllers.NewMaintenanceController(maintenanceService),
		Staff:        controllers.NewStaffController(staffService),
		Roles:        controllers.NewRoleController(roleService),
		Reviews:      controllers.NewReviewController(reviewService),
		Settings:     controllers.NewSettingsController(settingsService),
		Customers:    controllers.NewCustomerController(customerService),
	})

	// Port from env (prefer), fallback to 8080
	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
