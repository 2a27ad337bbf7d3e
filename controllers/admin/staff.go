package adminController

import (
	"log"

	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"

	"github.com/gofiber/fiber/v2"
)

// ListStaff returns all staff profiles, pending applications first so
// they surface at the top of the approval queue.
func ListStaff(c *fiber.Ctx) error {
	var profiles []models.StaffProfile
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("approved asc, created_at desc").
		Find(&profiles).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch staff!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Staff fetched successfully!", profiles)
}

// ApproveStaff flips a pending application to approved and notifies
// the instructor. The flip is one-way; there is no un-approve.
func ApproveStaff(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStaffApproval").(*struct {
		ID       uint `json:"id"`
		Approved bool `json:"approved"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var profile models.StaffProfile
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Staff profile not found!", nil)
	}

	if profile.Approved {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This application is already approved!", nil)
	}

	profile.Approved = true
	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve staff!", nil)
	}

	utils.SendStaffApprovalEmail(profile.Name, profile.Email)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Staff approved successfully!", profile)
}

// DeleteStaff rejects an application (or retires an active profile)
// by removing it. There is no retained "rejected" state; re-approval
// after removal takes a fresh application.
func DeleteStaff(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	db := database.Database.Db

	var profile models.StaffProfile
	if err := db.Where("id = ? AND is_deleted = false", recordID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Staff profile not found!", nil)
	}

	profile.IsDeleted = true
	if err := db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete staff profile!", nil)
	}

	// The login account goes with the profile. A rejected applicant
	// must re-apply from scratch.
	if err := db.Model(&models.User{}).Where("id = ?", profile.UserID).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error disabling login account %d for deleted staff profile %d: %v", profile.UserID, profile.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Staff profile deleted successfully!", nil)
}
