package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"
)

// SetupCourseRoutes sets up all learner-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	app.Get("/student/dashboard", middleware.JWTMiddleware, controllers.StudentDashboard)

	courseGroup := app.Group("/course")

	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Post("/:id/complete-video", middleware.JWTMiddleware, validators.CourseID(), controllers.CompleteVideo)

	courseGroup.Get("/:id/quiz", middleware.JWTMiddleware, validators.CourseID(), controllers.GetQuiz)
	courseGroup.Post("/:id/quiz/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuizAnswers)

	courseGroup.Get("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCertificate)
	courseGroup.Get("/:id/certificate/download", middleware.JWTMiddleware, validators.CourseID(), controllers.DownloadCertificate)
}
