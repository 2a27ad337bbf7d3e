package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// ListTestimonials returns every testimonial, newest first, including
// the pending moderation queue.
func ListTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&testimonials).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", testimonials)
}

// CreateTestimonial lets an admin enter a testimonial directly (e.g.
// one received by email). Unlike public submissions it goes straight
// to APPROVED.
func CreateTestimonial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTestimonialBody").(*struct {
		Name    string `json:"name"`
		Role    string `json:"role"`
		Company string `json:"company"`
		Content string `json:"content"`
		Rating  int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	testimonial := models.Testimonial{
		Name:    reqData.Name,
		Role:    reqData.Role,
		Company: reqData.Company,
		Content: reqData.Content,
		Rating:  reqData.Rating,
		Status:  models.TestimonialApproved,
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial created successfully!", testimonial)
}

// PatchTestimonialStatus moves a testimonial between moderation
// states. The approve/reject toggle is reversible in both directions.
func PatchTestimonialStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatusPatch").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var testimonial models.Testimonial
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	testimonial.Status = reqData.Status
	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", testimonial)
}

// UpdateTestimonial fully replaces a testimonial's editable fields.
func UpdateTestimonial(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var testimonial models.Testimonial
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	reqData, ok := c.Locals("validatedTestimonialBody").(*struct {
		Name    string `json:"name"`
		Role    string `json:"role"`
		Company string `json:"company"`
		Content string `json:"content"`
		Rating  int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	testimonial.Name = reqData.Name
	testimonial.Role = reqData.Role
	testimonial.Company = reqData.Company
	testimonial.Content = reqData.Content
	testimonial.Rating = reqData.Rating

	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", testimonial)
}

// DeleteTestimonial soft-deletes a testimonial; it disappears from
// every feed but the row is retained.
func DeleteTestimonial(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var testimonial models.Testimonial
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	testimonial.IsDeleted = true
	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully!", nil)
}
