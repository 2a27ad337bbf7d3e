package staffController

import (
	"time"

	"edusite/database"
	"edusite/middleware"
	"edusite/models/classes"

	"github.com/gofiber/fiber/v2"
)

type scheduleBody = struct {
	CourseID     uint      `json:"course_id"`
	StudentName  string    `json:"student_name"`
	MeetingLink  string    `json:"meeting_link"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	DurationMins int       `json:"duration_mins"`
}

// ListSchedules returns the instructor's upcoming virtual classes,
// soonest first.
func ListSchedules(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var schedules []classes.VirtualClassSchedule
	err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = false", userID).
		Order("scheduled_at asc").
		Find(&schedules).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schedules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedules fetched successfully!", schedules)
}

// CreateSchedule books a virtual class slot.
func CreateSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSchedule").(*scheduleBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	schedule := classes.VirtualClassSchedule{
		InstructorID: userID,
		CourseID:     reqData.CourseID,
		StudentName:  reqData.StudentName,
		MeetingLink:  reqData.MeetingLink,
		ScheduledAt:  reqData.ScheduledAt,
		DurationMins: reqData.DurationMins,
	}

	if err := database.Database.Db.Create(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Schedule created successfully!", schedule)
}

// UpdateSchedule replaces one of the instructor's own slots.
func UpdateSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var schedule classes.VirtualClassSchedule
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = false", recordID, userID).
		First(&schedule).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Schedule not found!", nil)
	}

	reqData, ok := c.Locals("validatedSchedule").(*scheduleBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	schedule.CourseID = reqData.CourseID
	schedule.StudentName = reqData.StudentName
	schedule.MeetingLink = reqData.MeetingLink
	schedule.ScheduledAt = reqData.ScheduledAt
	schedule.DurationMins = reqData.DurationMins

	if err := database.Database.Db.Save(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule updated successfully!", schedule)
}

// DeleteSchedule cancels a slot.
func DeleteSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var schedule classes.VirtualClassSchedule
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = false", recordID, userID).
		First(&schedule).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Schedule not found!", nil)
	}

	schedule.IsDeleted = true
	if err := database.Database.Db.Save(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule deleted successfully!", nil)
}
