package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up all course, lesson, enrollment, review and quiz routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.New(db)

	courseGroup := app.Group("/course")

	// Course listing and details
	courseGroup.Get("/list", ctrl.GetAllCourses)
	courseGroup.Get("/instructor/:id", validators.InstructorID(), ctrl.GetCoursesByInstructor)
	courseGroup.Get("/:id", validators.CourseID(), ctrl.GetCourseDetails)

	// Course and lesson management (instructors)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Post("/:id/lessons", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.CourseID(), validators.CreateLesson(), ctrl.AddLesson)
	courseGroup.Get("/:id/lessons", validators.CourseID(), ctrl.GetLessons)

	// Enrollment and progress
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), ctrl.EnrollInCourse)
	courseGroup.Post("/:id/lessons/:lessonId/complete", middleware.JWTMiddleware, validators.CourseID(), validators.LessonID(), ctrl.CompleteLesson)

	// Reviews
	courseGroup.Post("/:id/reviews", middleware.JWTMiddleware, validators.CourseID(), validators.SubmitReview(), ctrl.SubmitReview)
	courseGroup.Get("/:id/reviews", validators.CourseID(), ctrl.GetCourseReviews)

	// Quizzes
	courseGroup.Post("/:id/quiz", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.CourseID(), validators.CreateQuiz(), ctrl.CreateQuiz)
	courseGroup.Get("/:id/quiz", middleware.JWTMiddleware, validators.CourseID(), ctrl.GetCourseQuiz)
	courseGroup.Post("/:id/quiz/:quizId/submit", middleware.JWTMiddleware, validators.CourseID(), validators.QuizID(), validators.SubmitQuiz(), ctrl.SubmitQuiz)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, ctrl.GetUserEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, ctrl.GetUserCertificates)
}
