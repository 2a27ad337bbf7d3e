package middleware

import (
	"edusite/database"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that re-checks the account's role
// against the database on every request. The JWT claim alone is not
// trusted: a demoted or deleted account is rejected even while its
// token is still live.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking role!", nil)
		}

		if user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireApprovedStaff gates the staff console: a staff account whose
// profile application has not been approved yet cannot mount the
// dashboard, only poll its application status.
func RequireApprovedStaff(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
	}

	var profile models.StaffProfile
	err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).First(&profile).Error
	if err != nil {
		return JsonResponse(c, fiber.StatusForbidden, false, "No staff profile found for this account!", nil)
	}

	if !profile.Approved {
		return JsonResponse(c, fiber.StatusForbidden, false, "Your application is still pending approval.", nil)
	}

	c.Locals("staffProfile", profile)
	return c.Next()
}
