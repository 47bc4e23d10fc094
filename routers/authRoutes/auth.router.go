package authRoutes

import (
	controllers "lms/controllers/auth"
	validators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up the registration and login routes
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.New(db)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", validators.Register(), ctrl.Register)
	authGroup.Post("/login", validators.Login(), ctrl.Login)
}
