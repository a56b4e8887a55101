package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"
)

// SetupAdminCourseRoutes sets up all admin catalog management routes.
// Everything here, the reorder and normalize endpoints included, requires an
// authenticated administrator.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Get("/list", controllers.AdminGetAllCourses)
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)

	// Display ordering
	adminGroup.Post("/order", validators.ReorderCourses(), controllers.SaveCourseOrder)

	// Question bank
	adminGroup.Get("/:id/question", validators.CourseID(), controllers.AdminListQuestions)
	adminGroup.Post("/:id/question", validators.CreateQuestion(), controllers.AdminAddQuestion)
	adminGroup.Put("/question/:question_id", validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	adminGroup.Delete("/question/:question_id", validators.QuestionID(), controllers.AdminDeleteQuestion)

	// Catalog maintenance
	catalogGroup := app.Group("/admin/catalog", middleware.JWTMiddleware, middleware.AdminOnly)
	catalogGroup.Post("/normalize", controllers.NormalizeCatalog)
}
