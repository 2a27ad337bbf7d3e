package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// ListPortfolio returns every portfolio item, newest first.
func ListPortfolio(c *fiber.Ctx) error {
	var items []models.PortfolioItem
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched successfully!", items)
}

// CreatePortfolioItem adds a showcase project.
func CreatePortfolioItem(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPortfolioBody").(*struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		ImageURL     string   `json:"image_url"`
		ProjectURL   string   `json:"project_url"`
		Technologies []string `json:"technologies"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item := models.PortfolioItem{
		Title:        reqData.Title,
		Description:  reqData.Description,
		ImageURL:     reqData.ImageURL,
		ProjectURL:   reqData.ProjectURL,
		Technologies: models.StringList(reqData.Technologies),
		Status:       models.VisibilityActive,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create portfolio item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Portfolio item created successfully!", item)
}

// PatchPortfolioStatus toggles an item between ACTIVE and INACTIVE.
func PatchPortfolioStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatusPatch").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var item models.PortfolioItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio item not found!", nil)
	}

	item.Status = reqData.Status
	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update portfolio item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio item updated successfully!", item)
}

// UpdatePortfolioItem replaces the editable fields of an item.
func UpdatePortfolioItem(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var item models.PortfolioItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio item not found!", nil)
	}

	reqData, ok := c.Locals("validatedPortfolioBody").(*struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		ImageURL     string   `json:"image_url"`
		ProjectURL   string   `json:"project_url"`
		Technologies []string `json:"technologies"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item.Title = reqData.Title
	item.Description = reqData.Description
	item.ImageURL = reqData.ImageURL
	item.ProjectURL = reqData.ProjectURL
	item.Technologies = models.StringList(reqData.Technologies)

	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update portfolio item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio item updated successfully!", item)
}

// DeletePortfolioItem soft-deletes an item.
func DeletePortfolioItem(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var item models.PortfolioItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio item not found!", nil)
	}

	item.IsDeleted = true
	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete portfolio item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio item deleted successfully!", nil)
}
