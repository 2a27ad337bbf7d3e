package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// ListGallery returns every gallery image, newest first.
func ListGallery(c *fiber.Ctx) error {
	var images []models.GalleryImage
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&images).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch gallery!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery fetched successfully!", images)
}

// CreateGalleryImage adds a new image, visible immediately.
func CreateGalleryImage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGalleryBody").(*struct {
		Title    string `json:"title"`
		ImageURL string `json:"image_url"`
		Caption  string `json:"caption"`
		Category string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	image := models.GalleryImage{
		Title:    reqData.Title,
		ImageURL: reqData.ImageURL,
		Caption:  reqData.Caption,
		Category: reqData.Category,
		Status:   models.VisibilityActive,
	}

	if err := database.Database.Db.Create(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create gallery image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Gallery image created successfully!", image)
}

// PatchGalleryStatus toggles an image between ACTIVE and INACTIVE.
// No transition order is enforced.
func PatchGalleryStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatusPatch").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var image models.GalleryImage
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Gallery image not found!", nil)
	}

	image.Status = reqData.Status
	if err := database.Database.Db.Save(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update gallery image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery image updated successfully!", image)
}

// UpdateGalleryImage replaces the descriptive fields of an image.
func UpdateGalleryImage(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var image models.GalleryImage
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Gallery image not found!", nil)
	}

	reqData, ok := c.Locals("validatedGalleryBody").(*struct {
		Title    string `json:"title"`
		ImageURL string `json:"image_url"`
		Caption  string `json:"caption"`
		Category string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	image.Title = reqData.Title
	image.ImageURL = reqData.ImageURL
	image.Caption = reqData.Caption
	image.Category = reqData.Category

	if err := database.Database.Db.Save(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update gallery image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery image updated successfully!", image)
}

// DeleteGalleryImage soft-deletes an image.
func DeleteGalleryImage(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var image models.GalleryImage
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Gallery image not found!", nil)
	}

	image.IsDeleted = true
	if err := database.Database.Db.Save(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete gallery image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery image deleted successfully!", nil)
}
