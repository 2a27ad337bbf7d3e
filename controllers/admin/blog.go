package adminController

import (
	"time"

	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// ListPosts returns every post in all lifecycle states, newest first.
func ListPosts(c *fiber.Ctx) error {
	var posts []models.BlogPost
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", posts)
}

// CreatePost creates a new draft.
func CreatePost(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlogBody").(*struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Author   string `json:"author"`
		Excerpt  string `json:"excerpt"`
		Content  string `json:"content"`
		CoverURL string `json:"cover_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post := models.BlogPost{
		Title:    reqData.Title,
		Category: reqData.Category,
		Author:   reqData.Author,
		Excerpt:  reqData.Excerpt,
		Content:  reqData.Content,
		CoverURL: reqData.CoverURL,
		Status:   models.BlogDraft,
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

// PatchPostStatus moves a post along its lifecycle. Only two moves
// exist: DRAFT -> PUBLISHED (which stamps PublishedAt, exactly once)
// and PUBLISHED -> ARCHIVED. Anything else is rejected.
func PatchPostStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatusPatch").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var post models.BlogPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	switch {
	case post.Status == models.BlogDraft && reqData.Status == models.BlogPublished:
		now := time.Now()
		post.Status = models.BlogPublished
		post.PublishedAt = &now
	case post.Status == models.BlogPublished && reqData.Status == models.BlogArchived:
		post.Status = models.BlogArchived
	default:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "That status change is not allowed!", nil)
	}

	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

// UpdatePost replaces the editable fields of a post. Status and
// PublishedAt move only through PatchPostStatus.
func UpdatePost(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var post models.BlogPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	reqData, ok := c.Locals("validatedBlogBody").(*struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Author   string `json:"author"`
		Excerpt  string `json:"excerpt"`
		Content  string `json:"content"`
		CoverURL string `json:"cover_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post.Title = reqData.Title
	post.Category = reqData.Category
	post.Author = reqData.Author
	post.Excerpt = reqData.Excerpt
	post.Content = reqData.Content
	post.CoverURL = reqData.CoverURL

	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

// DeletePost soft-deletes a post.
func DeletePost(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var post models.BlogPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	post.IsDeleted = true
	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}
