package franchiseRoutes

import (
	franchiseController "edusite/controllers/franchise"
	"edusite/middleware"
	"edusite/models"
	adminValidator "edusite/validators/admin"
	franchiseValidator "edusite/validators/franchise"

	"github.com/gofiber/fiber/v2"
)

// SetupFranchiseRoutes wires the partner CRM console.
func SetupFranchiseRoutes(app *fiber.App) {
	franchise := app.Group("/api/franchise",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFranchise),
	)

	schools := franchise.Group("/schools")
	schools.Get("/", franchiseController.ListSchools)
	schools.Post("/", franchiseValidator.SchoolBody(), franchiseController.CreateSchool)
	schools.Patch("/", franchiseValidator.SchoolStatusPatch(), franchiseController.PatchSchoolStatus)
	schools.Put("/:id", adminValidator.IDParam(), franchiseValidator.SchoolBody(), franchiseController.UpdateSchool)
	schools.Delete("/:id?", adminValidator.IDParam(), franchiseController.DeleteSchool)

	dashboard := franchise.Group("/dashboard")
	dashboard.Get("/stats", franchiseController.DashboardStats)
}
