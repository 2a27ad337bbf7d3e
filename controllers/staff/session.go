package staffController

import (
	"time"

	"edusite/database"
	"edusite/middleware"
	"edusite/models/classes"

	"github.com/gofiber/fiber/v2"
)

// sessionBody mirrors the validated class-session payload.
type sessionBody = struct {
	CourseID     uint      `json:"course_id"`
	StudentName  string    `json:"student_name"`
	Topic        string    `json:"topic"`
	HeldAt       time.Time `json:"held_at"`
	DurationMins int       `json:"duration_mins"`
	Notes        string    `json:"notes"`
}

// ListSessions returns the instructor's own class write-ups, newest
// first. Other instructors' sessions are never visible here.
func ListSessions(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var sessions []classes.ClassSession
	err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = false", userID).
		Order("created_at desc").
		Find(&sessions).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

// CreateSession records a delivered class.
func CreateSession(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSession").(*sessionBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session := classes.ClassSession{
		InstructorID: userID,
		CourseID:     reqData.CourseID,
		StudentName:  reqData.StudentName,
		Topic:        reqData.Topic,
		HeldAt:       reqData.HeldAt,
		DurationMins: reqData.DurationMins,
		Notes:        reqData.Notes,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session created successfully!", session)
}

// UpdateSession replaces one of the instructor's own write-ups.
func UpdateSession(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var session classes.ClassSession
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = false", recordID, userID).
		First(&session).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	reqData, ok := c.Locals("validatedSession").(*sessionBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session.CourseID = reqData.CourseID
	session.StudentName = reqData.StudentName
	session.Topic = reqData.Topic
	session.HeldAt = reqData.HeldAt
	session.DurationMins = reqData.DurationMins
	session.Notes = reqData.Notes

	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", session)
}

// DeleteSession soft-deletes one of the instructor's own write-ups.
func DeleteSession(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var session classes.ClassSession
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = false", recordID, userID).
		First(&session).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	session.IsDeleted = true
	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted successfully!", nil)
}
