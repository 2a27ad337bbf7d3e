package adminController

import (
	"time"

	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// ListFranchiseSchools returns the whole CRM pipeline across every
// franchise account.
func ListFranchiseSchools(c *fiber.Ctx) error {
	var schools []models.FranchiseSchool
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&schools).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schools!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schools fetched successfully!", schools)
}

// PatchFranchiseStatus moves a lead through the pipeline. Every
// status change bumps LastContact, which feeds the stale-lead sweep.
func PatchFranchiseStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSchoolStatus").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var school models.FranchiseSchool
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	now := time.Now()
	school.Status = reqData.Status
	school.LastContact = &now

	if err := database.Database.Db.Save(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update school!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School updated successfully!", school)
}

// DeleteFranchiseSchool soft-deletes a lead.
func DeleteFranchiseSchool(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var school models.FranchiseSchool
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	school.IsDeleted = true
	if err := database.Database.Db.Save(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete school!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School deleted successfully!", nil)
}
