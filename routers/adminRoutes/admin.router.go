package adminRoutes

import (
	adminController "edusite/controllers/admin"
	"edusite/middleware"
	"edusite/models"
	adminValidator "edusite/validators/admin"
	franchiseValidator "edusite/validators/franchise"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires the admin console's REST facade. Every route
// family follows the same verb mapping: GET list, POST insert, PATCH
// status (id in body), PUT /:id full update, DELETE /:id (or ?id=).
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	testimonials := admin.Group("/testimonials")
	testimonials.Get("/", adminController.ListTestimonials)
	testimonials.Post("/", adminValidator.TestimonialBody(), adminController.CreateTestimonial)
	testimonials.Patch("/", adminValidator.StatusPatch(models.TestimonialPending, models.TestimonialApproved, models.TestimonialRejected), adminController.PatchTestimonialStatus)
	testimonials.Put("/:id", adminValidator.IDParam(), adminValidator.TestimonialBody(), adminController.UpdateTestimonial)
	testimonials.Delete("/:id?", adminValidator.IDParam(), adminController.DeleteTestimonial)

	blog := admin.Group("/blog")
	blog.Get("/", adminController.ListPosts)
	blog.Post("/", adminValidator.BlogBody(), adminController.CreatePost)
	blog.Patch("/", adminValidator.StatusPatch(models.BlogPublished, models.BlogArchived), adminController.PatchPostStatus)
	blog.Put("/:id", adminValidator.IDParam(), adminValidator.BlogBody(), adminController.UpdatePost)
	blog.Delete("/:id?", adminValidator.IDParam(), adminController.DeletePost)

	gallery := admin.Group("/gallery")
	gallery.Get("/", adminController.ListGallery)
	gallery.Post("/", adminValidator.GalleryBody(), adminController.CreateGalleryImage)
	gallery.Patch("/", adminValidator.StatusPatch(models.VisibilityActive, models.VisibilityInactive), adminController.PatchGalleryStatus)
	gallery.Put("/:id", adminValidator.IDParam(), adminValidator.GalleryBody(), adminController.UpdateGalleryImage)
	gallery.Delete("/:id?", adminValidator.IDParam(), adminController.DeleteGalleryImage)

	portfolio := admin.Group("/portfolio")
	portfolio.Get("/", adminController.ListPortfolio)
	portfolio.Post("/", adminValidator.PortfolioBody(), adminController.CreatePortfolioItem)
	portfolio.Patch("/", adminValidator.StatusPatch(models.VisibilityActive, models.VisibilityInactive), adminController.PatchPortfolioStatus)
	portfolio.Put("/:id", adminValidator.IDParam(), adminValidator.PortfolioBody(), adminController.UpdatePortfolioItem)
	portfolio.Delete("/:id?", adminValidator.IDParam(), adminController.DeletePortfolioItem)

	courses := admin.Group("/courses")
	courses.Get("/", adminController.ListCourses)
	courses.Post("/", adminValidator.CreateCourse(), adminController.CreateCourse)
	courses.Patch("/", adminValidator.StatusPatch(models.CourseActive, models.CourseInactive), adminController.PatchCourseStatus)
	courses.Put("/:id", adminValidator.IDParam(), adminValidator.UpdateCourse(), adminController.UpdateCourse)
	courses.Delete("/:id?", adminValidator.IDParam(), adminController.DeleteCourse)

	registrations := admin.Group("/registrations")
	registrations.Get("/", adminController.ListRegistrations)
	registrations.Patch("/", adminValidator.StatusPatch(models.RegistrationContacted, models.RegistrationEnrolled, models.RegistrationDeclined), adminController.PatchRegistrationStatus)
	registrations.Delete("/:id?", adminValidator.IDParam(), adminController.DeleteRegistration)

	staff := admin.Group("/staff")
	staff.Get("/", adminController.ListStaff)
	staff.Patch("/", adminValidator.StaffApproval(), adminController.ApproveStaff)
	staff.Delete("/:id?", adminValidator.IDParam(), adminController.DeleteStaff)

	schools := admin.Group("/franchise-schools")
	schools.Get("/", adminController.ListFranchiseSchools)
	schools.Patch("/", franchiseValidator.SchoolStatusPatch(), adminController.PatchFranchiseStatus)
	schools.Delete("/:id?", adminValidator.IDParam(), adminController.DeleteFranchiseSchool)

	dashboard := admin.Group("/dashboard")
	dashboard.Get("/stats", adminController.DashboardStats)
}
