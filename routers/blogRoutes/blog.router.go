package blogRoutes

import (
	controllers "lms/controllers/blog"
	"lms/middleware"
	validators "lms/validators/blog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupBlogRoutes sets up the blog routes
func SetupBlogRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.New(db)

	blogGroup := app.Group("/blog")
	blogGroup.Get("/list", ctrl.GetPublishedPosts)
	blogGroup.Get("/:slug", ctrl.GetPostBySlug)
	blogGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.CreatePost(), ctrl.CreatePost)
}
