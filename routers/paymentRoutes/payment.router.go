package paymentRoutes

import (
	controllers "lms/controllers/payment"
	"lms/middleware"
	validators "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPaymentRoutes sets up the payment routes
func SetupPaymentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.New(db)

	paymentGroup := app.Group("/payment")
	paymentGroup.Post("/checkout", middleware.JWTMiddleware, validators.Checkout(), ctrl.Checkout)
	paymentGroup.Post("/:reference/status", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.UpdateStatus(), ctrl.UpdateStatus)

	app.Get("/user/payments", middleware.JWTMiddleware, ctrl.GetUserPayments)
}
