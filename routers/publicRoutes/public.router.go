package publicRoutes

import (
	publicController "edusite/controllers/public"
	publicValidator "edusite/validators/public"

	"github.com/gofiber/fiber/v2"
)

// SetupPublicRoutes wires the marketing-site endpoints. None of these
// require a session.
func SetupPublicRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", publicValidator.Register(), publicController.Register)
	api.Post("/submit-testimonial", publicValidator.SubmitTestimonial(), publicController.SubmitTestimonial)
	api.Post("/send-email", publicValidator.ContactEmail(), publicController.SendEmail)

	api.Get("/testimonials", publicController.ApprovedTestimonials)
	api.Get("/courses", publicController.ActiveCourses)
	api.Get("/courses/:slug", publicController.CourseBySlug)
	api.Get("/blog", publicController.PublishedPosts)
	api.Get("/gallery", publicController.ActiveGallery)
	api.Get("/portfolio", publicController.ActivePortfolio)
}
