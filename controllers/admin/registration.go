package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// ListRegistrations returns every registration, newest first.
func ListRegistrations(c *fiber.Ctx) error {
	var registrations []models.Registration
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&registrations).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", registrations)
}

// PatchRegistrationStatus moves a registration along the pipeline.
// Only forward moves are allowed: PENDING -> CONTACTED, and CONTACTED
// -> ENROLLED or DECLINED. PENDING -> ENROLLED directly is rejected.
func PatchRegistrationStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatusPatch").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var registration models.Registration
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found!", nil)
	}

	if !models.AllowedRegistrationTransition(registration.Status, reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "That status change is not allowed!", nil)
	}

	registration.Status = reqData.Status
	if err := database.Database.Db.Save(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update registration!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration updated successfully!", registration)
}

// DeleteRegistration soft-deletes a registration.
func DeleteRegistration(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var registration models.Registration
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found!", nil)
	}

	registration.IsDeleted = true
	if err := database.Database.Db.Save(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete registration!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration deleted successfully!", nil)
}
