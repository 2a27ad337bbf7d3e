package authRoutes

import (
	authController "edusite/controllers/auth"
	"edusite/middleware"
	authValidator "edusite/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires the three console login surfaces and the
// instructor application flow.
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/admin/login", authValidator.Login(), authController.AdminLogin)
	auth.Post("/staff/login", authValidator.Login(), authController.StaffLogin)
	auth.Post("/franchise/login", authValidator.Login(), authController.FranchiseLogin)

	auth.Post("/staff/apply", authValidator.StaffApply(), authController.StaffApply)
	auth.Get("/staff/application", middleware.JWTMiddleware, authController.ApplicationStatus)
}
