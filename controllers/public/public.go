package publicController

import (
	"log"

	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SubmitTestimonial accepts a public testimonial. It always enters the
// moderation queue as PENDING regardless of what the client sends.
func SubmitTestimonial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTestimonial").(*struct {
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
		Status:  models.TestimonialPending,
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		log.Printf("Error saving testimonial: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thanks for your feedback! It will appear once reviewed.", testimonial)
}

// ApprovedTestimonials is the public feed: approved entries only,
// newest first.
func ApprovedTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.TestimonialApproved).
		Order("created_at desc").
		Find(&testimonials).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", testimonials)
}

// Register accepts a course-interest registration in either shape.
// Whatever the client typed into the inactive shape never arrives
// here; the validator admitted only the active shape's fields.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*struct {
		Type           string         `json:"type"`
		Name           string         `json:"name"`
		Email          string         `json:"email"`
		Mobile         string         `json:"mobile"`
		Age            int            `json:"age"`
		CourseInterest string         `json:"course_interest"`
		Children       []models.Child `json:"children"`
		Message        string         `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	registration := models.Registration{
		Type:    reqData.Type,
		Name:    reqData.Name,
		Email:   reqData.Email,
		Mobile:  reqData.Mobile,
		Message: reqData.Message,
		Status:  models.RegistrationPending,
	}

	// Only the active shape's fields are persisted.
	if reqData.Type == models.RegistrationParent {
		registration.Children = datatypes.JSONSlice[models.Child](reqData.Children)
	} else {
		registration.Age = reqData.Age
		registration.CourseInterest = reqData.CourseInterest
	}

	if err := database.Database.Db.Create(&registration).Error; err != nil {
		log.Printf("Error saving registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit registration!", nil)
	}

	utils.SendRegistrationAck(registration.Name, registration.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration received. Our team will contact you soon.", registration)
}

// SendEmail relays a contact-form message to the site inbox. The
// relay itself is fire-and-forget; the caller gets an immediate ack.
func SendEmail(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	utils.SendContactRelay(reqData.Name, reqData.Email, reqData.Phone, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent. We will get back to you shortly.", nil)
}

// ActiveCourses is the public course catalogue: active courses only.
func ActiveCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.CourseActive).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CourseBySlug serves one course detail page.
func CourseBySlug(c *fiber.Ctx) error {
	var course models.Course
	err := database.Database.Db.
		Where("slug = ? AND status = ? AND is_deleted = false", c.Params("slug"), models.CourseActive).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// PublishedPosts is the public blog feed, newest first.
func PublishedPosts(c *fiber.Ctx) error {
	var posts []models.BlogPost
	err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.BlogPublished).
		Order("published_at desc").
		Find(&posts).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", posts)
}

// ActiveGallery serves the public gallery wall.
func ActiveGallery(c *fiber.Ctx) error {
	var images []models.GalleryImage
	err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.VisibilityActive).
		Order("created_at desc").
		Find(&images).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch gallery!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery fetched successfully!", images)
}

// ActivePortfolio serves the public portfolio showcase.
func ActivePortfolio(c *fiber.Ctx) error {
	var items []models.PortfolioItem
	err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.VisibilityActive).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched successfully!", items)
}
