package courseRoutes

import (
	controllers "coursereg/controllers/course"
	"coursereg/services/enrollment"
	validators "coursereg/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App, service *enrollment.Service) {
	enrollCtl := controllers.NewEnrollmentController(service)

	// Catalog reads
	app.Get("/courses", controllers.GetAllCourses)
	app.Get("/courses/:id", validators.CourseID(), controllers.GetCourseDetails)
	app.Get("/modules/:id", validators.ModuleID(), controllers.GetModuleDetails)
	app.Get("/instructors", controllers.GetInstructors)

	// Enrollment
	app.Post("/modules/:id/register", validators.RegisterModule(), enrollCtl.RegisterModule)
	app.Post("/my_enrollments", validators.MyEnrollments(), enrollCtl.MyEnrollments)
}
