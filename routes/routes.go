package routes

import (
	"clinicadmin_go/controllers"
	"clinicadmin_go/middleware"
	"clinicadmin_go/services/websocket"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

// SetupRoutes configures all application routes. The JWT header check is
// mounted per resource group rather than as a root catch-all: the WebSocket
// handshake authenticates via query token instead (browsers cannot set
// headers on upgrades), and unknown paths must fall through to the 404
// handler rather than answer 401.
func SetupRoutes(app *fiber.App, wsHub *websocket.Hub) {
	// Initialize controllers
	authController := &controllers.AuthController{}
	doctorController := &controllers.DoctorController{}
	serviceController := &controllers.ServiceController{}
	categoryController := &controllers.CategoryController{}
	branchController := &controllers.BranchController{}
	bookingController := &controllers.BookingController{Hub: wsHub}
	bannerController := &controllers.BannerController{}
	notificationController := &controllers.NotificationController{}
	customerController := &controllers.CustomerController{}
	vatController := &controllers.VatController{}
	reviewController := &controllers.ReviewController{}
	uploadController := &controllers.UploadController{}
	healthController := &controllers.HealthController{}
	wsController := controllers.NewWebSocketController(wsHub)

	jwt := middleware.JWTMiddleware()

	// Health check (no auth)
	app.Get("/health", healthController.Health)

	// WebSocket stats (header auth) must precede the /ws upgrade gate so the
	// prefix match does not swallow it
	app.Get("/ws/stats", jwt, middleware.RequireOwnerOrAdmin(), wsController.GetWebSocketStats)

	// WebSocket connection endpoint - authenticated by query token inside
	// the handler, never by the header middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", wsController.WebSocketHandler())

	// Session
	user := app.Group("/user")
	user.Post("/login_email", authController.LoginEmail)
	user.Post("/refresh", authController.Refresh)
	user.Post("/logout", jwt, authController.Logout)
	user.Get("/profile", jwt, authController.GetProfile)
	user.Post("/admin_register", jwt, middleware.RequireOwnerOrAdmin(), authController.AdminRegister)

	// Doctor management
	doctors := app.Group("/doctor", jwt)
	doctors.Get("/", doctorController.GetDoctors)
	doctors.Post("/", middleware.RequireOwnerOrAdmin(), doctorController.CreateDoctor)
	doctors.Get("/branches/:id", doctorController.GetDoctorBranches)
	doctors.Put("/branches/:id", middleware.RequireOwnerOrAdmin(), doctorController.UpdateDoctorBranches)
	doctors.Get("/time-slots/:id", doctorController.GetDoctorTimeSlots)
	doctors.Put("/time-slots/:id", middleware.RequireOwnerOrAdmin(), doctorController.UpdateDoctorTimeSlots)
	doctors.Get("/:id", doctorController.GetDoctor)
	doctors.Put("/:id", middleware.RequireOwnerOrAdmin(), doctorController.UpdateDoctor)
	doctors.Patch("/:id/active", middleware.RequireOwnerOrAdmin(), doctorController.ToggleDoctorActive)

	// Service catalog
	services := app.Group("/service", jwt)
	// Category routes come first so "/category" is not captured by "/:id"
	services.Get("/category", categoryController.GetCategories)
	services.Post("/category", middleware.RequireOwnerOrAdmin(), categoryController.CreateCategory)
	services.Put("/category/:id", middleware.RequireOwnerOrAdmin(), categoryController.UpdateCategory)
	services.Get("/", serviceController.GetServices)
	services.Post("/", middleware.RequireOwnerOrAdmin(), serviceController.CreateService)
	services.Get("/branches/:id", serviceController.GetServiceBranches)
	services.Put("/branches/:id", middleware.RequireOwnerOrAdmin(), serviceController.UpdateServiceBranches)
	services.Get("/:id", serviceController.GetService)
	services.Put("/:id", middleware.RequireOwnerOrAdmin(), serviceController.UpdateService)

	// Bookings - any dashboard role may read and transition
	bookings := app.Group("/booking", jwt, middleware.RequireStaffOrAbove())
	bookings.Get("/doctor", bookingController.GetDoctorBookings)
	bookings.Get("/doctor/metric", bookingController.GetDoctorBookingMetrics)
	bookings.Post("/doctor/cancel", bookingController.CancelDoctorBooking)
	bookings.Post("/doctor/complete", bookingController.CompleteDoctorBooking)
	bookings.Get("/service", bookingController.GetServiceBookings)
	bookings.Get("/service/metric", bookingController.GetServiceBookingMetrics)
	bookings.Post("/service/cancel", bookingController.CancelServiceBooking)
	bookings.Post("/service/complete", bookingController.CompleteServiceBooking)
	bookings.Get("/export", bookingController.ExportBookings)

	// Branches
	branches := app.Group("/branch", jwt)
	branches.Get("/", branchController.GetBranches)
	branches.Post("/", middleware.RequireOwnerOrAdmin(), branchController.CreateBranch)
	branches.Put("/:id", middleware.RequireOwnerOrAdmin(), branchController.UpdateBranch)
	branches.Delete("/:id", middleware.RequireOwnerOrAdmin(), branchController.DeleteBranch)

	// VAT configuration
	app.Get("/vat", jwt, vatController.GetVat)
	app.Put("/vat", jwt, middleware.RequireOwnerOrAdmin(), vatController.UpdateVat)

	// Notifications
	notification := app.Group("/notification", jwt)
	notification.Get("/", notificationController.GetNotifications)
	notification.Post("/", middleware.RequireOwnerOrAdmin(), notificationController.CreateNotification)
	notification.Delete("/:id", middleware.RequireOwnerOrAdmin(), notificationController.DeleteNotification)

	// Banners
	banner := app.Group("/banner", jwt)
	banner.Get("/", bannerController.GetBanners)
	banner.Post("/", middleware.RequireOwnerOrAdmin(), bannerController.CreateBanner)
	banner.Delete("/:id", middleware.RequireOwnerOrAdmin(), bannerController.DeleteBanner)

	// Reviews
	review := app.Group("/review", jwt, middleware.RequireStaffOrAbove())
	review.Get("/", reviewController.GetReviews)
	review.Post("/comment", reviewController.CommentReview)

	// Customers
	customer := app.Group("/customer", jwt, middleware.RequireStaffOrAbove())
	customer.Get("/", customerController.GetCustomers)
	customer.Get("/:id", customerController.GetCustomer)
	customer.Get("/:id/bookings", customerController.GetCustomerBookings)

	// Uploads
	app.Post("/upload/admin", jwt, uploadController.UploadAdmin)
}
