package franchiseController

import (
	"time"

	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

type schoolBody = struct {
	Name           string  `json:"name"`
	ContactPerson  string  `json:"contact_person"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	City           string  `json:"city"`
	Address        string  `json:"address"`
	EstimatedValue float64 `json:"estimated_value"`
	Notes          string  `json:"notes"`
}

// ListSchools returns the partner's own pipeline, newest first. The
// admin console sees every partner's leads; this surface only its own.
func ListSchools(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var schools []models.FranchiseSchool
	err := database.Database.Db.
		Where("owner_id = ? AND is_deleted = false", userID).
		Order("created_at desc").
		Find(&schools).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schools!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schools fetched successfully!", schools)
}

// CreateSchool opens a new lead at the top of the pipeline.
func CreateSchool(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSchool").(*schoolBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	school := models.FranchiseSchool{
		OwnerID:        userID,
		Name:           reqData.Name,
		ContactPerson:  reqData.ContactPerson,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		City:           reqData.City,
		Address:        reqData.Address,
		EstimatedValue: reqData.EstimatedValue,
		Notes:          reqData.Notes,
		Status:         models.LeadNew,
	}

	if err := database.Database.Db.Create(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create school!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "School created successfully!", school)
}

// PatchSchoolStatus moves one of the partner's own leads through the
// pipeline, bumping LastContact.
func PatchSchoolStatus(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSchoolStatus").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var school models.FranchiseSchool
	err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = false", reqData.ID, userID).
		First(&school).Error
	if err != nil {
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

// UpdateSchool replaces the descriptive fields of one of the
// partner's own leads. Status moves only through the PATCH endpoint.
func UpdateSchool(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var school models.FranchiseSchool
	err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = false", recordID, userID).
		First(&school).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	reqData, ok := c.Locals("validatedSchool").(*schoolBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	school.Name = reqData.Name
	school.ContactPerson = reqData.ContactPerson
	school.Email = reqData.Email
	school.Mobile = reqData.Mobile
	school.City = reqData.City
	school.Address = reqData.Address
	school.EstimatedValue = reqData.EstimatedValue
	school.Notes = reqData.Notes

	if err := database.Database.Db.Save(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update school!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School updated successfully!", school)
}

// DeleteSchool soft-deletes one of the partner's own leads.
func DeleteSchool(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var school models.FranchiseSchool
	err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = false", recordID, userID).
		First(&school).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	school.IsDeleted = true
	if err := database.Database.Db.Save(&school).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete school!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School deleted successfully!", nil)
}
