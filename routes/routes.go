package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"moonlight-backend/controllers"
	"moonlight-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles the handler instances SetupRouter wires up.
type Controllers struct {
	Rooms        *controllers.RoomController
	RoomTypes    *controllers.RoomTypeController
	Bookings     *controllers.BookingController
	Invoices     *controllers.InvoiceController
	Reports      *controllers.ReportController
	Housekeeping *controllers.HousekeepingController
	Maintenance  *controllers.MaintenanceController
	Staff        *controllers.StaffController
	Roles        *controllers.RoleController
	Reviews      *controllers.ReviewController
	Settings     *controllers.SettingsController
	Customers    *controllers.CustomerController
}

func SetupRouter(ctrls Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public surface: browse rooms, check availability, self-book, reviews.
		rooms := api.Group("/rooms")
		{
			rooms.GET("/public", ctrls.Rooms.GetPublicRooms)
			rooms.GET("/public/:id", ctrls.Rooms.GetPublicRoomByID)
			rooms.GET("/public/:id/bookings", ctrls.Bookings.GetRoomBookingsPublic)

			rooms.GET("", ctrls.Rooms.GetRooms)
			rooms.POST("", ctrls.Rooms.CreateRoom)
			rooms.GET("/:id", ctrls.Rooms.GetRoomByID)
			rooms.PUT("/:id", ctrls.Rooms.UpdateRoom)
			rooms.PATCH("/:id/status", ctrls.Rooms.UpdateRoomStatus)
			rooms.DELETE("/:id", ctrls.Rooms.DeleteRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", ctrls.RoomTypes.GetRoomTypes)
			roomTypes.POST("", ctrls.RoomTypes.CreateRoomType)
			roomTypes.DELETE("/:id", ctrls.RoomTypes.DeleteRoomType)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctrls.Bookings.GetBookings)
			bookings.POST("", ctrls.Bookings.CreateBooking)
			bookings.POST("/self", ctrls.Bookings.CreateSelfBooking)
			bookings.POST("/quote", ctrls.Bookings.QuoteBooking)
			bookings.GET("/ref/:code", ctrls.Bookings.GetBookingByReference)
			bookings.GET("/:id", ctrls.Bookings.GetBookingDetails)
			bookings.POST("/:id/confirm", ctrls.Bookings.ConfirmBooking)
			bookings.POST("/:id/checkin", ctrls.Bookings.CheckInBooking)
			bookings.POST("/:id/checkout", ctrls.Bookings.CheckOutBooking)
			bookings.POST("/:id/cancel", ctrls.Bookings.CancelBooking)
			bookings.DELETE("/:id", ctrls.Bookings.DeleteBooking)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ctrls.Invoices.GetInvoices)
			invoices.POST("", ctrls.Invoices.GenerateInvoice)
			invoices.GET("/:id", ctrls.Invoices.GetInvoiceByID)
			invoices.POST("/:id/issue", ctrls.Invoices.IssueInvoice)
			invoices.POST("/:id/pay", ctrls.Invoices.PayInvoice)
			invoices.POST("/:id/void", ctrls.Invoices.VoidInvoice)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/revenue", ctrls.Reports.RevenueReport)
			reports.GET("/occupancy", ctrls.Reports.OccupancyReport)
			reports.GET("/bookings", ctrls.Reports.BookingReport)
		}

		housekeeping := api.Group("/housekeeping")
		{
			housekeeping.GET("", ctrls.Housekeeping.GetTasks)
			housekeeping.POST("", ctrls.Housekeeping.CreateTask)
			housekeeping.POST("/:id/start", ctrls.Housekeeping.StartTask)
			housekeeping.POST("/:id/complete", ctrls.Housekeeping.CompleteTask)
		}

		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", ctrls.Maintenance.GetRequests)
			maintenance.POST("", ctrls.Maintenance.OpenRequest)
			maintenance.POST("/:id/start", ctrls.Maintenance.StartRequest)
			maintenance.POST("/:id/resolve", ctrls.Maintenance.ResolveRequest)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", ctrls.Staff.GetStaff)
			staff.POST("", ctrls.Staff.CreateStaff)
			staff.PUT("/:id", ctrls.Staff.UpdateStaff)
			staff.DELETE("/:id", ctrls.Staff.DeleteStaff)
		}

		roles := api.Group("/roles")
		{
			roles.GET("", ctrls.Roles.GetRoles)
			roles.PUT("/:id/permissions", ctrls.Roles.SetRolePermissions)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/public", ctrls.Reviews.GetPublicReviews)
			reviews.POST("", ctrls.Reviews.CreateReview)
			reviews.GET("", ctrls.Reviews.GetReviews)
			reviews.PATCH("/:id/moderate", ctrls.Reviews.ModerateReview)
			reviews.DELETE("/:id", ctrls.Reviews.DeleteReview)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", ctrls.Settings.GetHotelSettings)
			settings.PUT("/hotel", ctrls.Settings.UpdateHotelSettings)
		}

		customersRoutes := api.Group("/customers")
		{
			customersRoutes.GET("", ctrls.Customers.GetCustomers)
			customersRoutes.POST("", ctrls.Customers.CreateCustomer)
			customersRoutes.GET("/:id", ctrls.Customers.GetCustomerByID)
		}
	}

	return r
}
