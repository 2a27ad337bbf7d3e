package adminController

import (
	"log"

	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"
	adminValidator "edusite/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ListCourses returns every course, active or not, newest first.
func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CreateCourse creates a course. The slug is derived from the title
// here, once; it never changes again no matter how the title is later
// edited.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*adminValidator.CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	slug, err := utils.EnsureUniqueSlug(db, "courses", utils.Slugify(reqData.Title))
	if err != nil {
		log.Printf("Error deriving course slug: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Slug:             slug,
		Description:      reqData.Description,
		DurationWeeks:    reqData.DurationWeeks,
		SessionsPerWeek:  reqData.SessionsPerWeek,
		Price:            reqData.Price,
		TargetAudience:   reqData.TargetAudience,
		DifficultyLevel:  reqData.DifficultyLevel,
		Prerequisites:    models.StringList(reqData.Prerequisites),
		LearningOutcomes: models.StringList(reqData.LearningOutcomes),
		Curriculum:       datatypes.JSONSlice[models.CurriculumModule](reqData.Curriculum),
		Status:           models.CourseActive,
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error saving course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// PatchCourseStatus toggles a course between ACTIVE and INACTIVE.
func PatchCourseStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatusPatch").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Status = reqData.Status
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// UpdateCourse fully replaces a course's editable fields. The slug is
// taken from the payload as-is when present; a changed title does not
// regenerate it.
func UpdateCourse(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*adminValidator.CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	if reqData.Slug != "" {
		course.Slug = reqData.Slug
	}
	course.Description = reqData.Description
	course.DurationWeeks = reqData.DurationWeeks
	course.SessionsPerWeek = reqData.SessionsPerWeek
	course.Price = reqData.Price
	course.TargetAudience = reqData.TargetAudience
	course.DifficultyLevel = reqData.DifficultyLevel
	course.Prerequisites = models.StringList(reqData.Prerequisites)
	course.LearningOutcomes = models.StringList(reqData.LearningOutcomes)
	course.Curriculum = datatypes.JSONSlice[models.CurriculumModule](reqData.Curriculum)

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course. Its slug stays reserved.
func DeleteCourse(c *fiber.Ctx) error {
	recordID := c.Locals("recordID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", recordID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
