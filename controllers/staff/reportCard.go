package staffController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models/classes"

	"github.com/gofiber/fiber/v2"
)

type reportCardBody = struct {
	CourseID     uint   `json:"course_id"`
	StudentName  string `json:"student_name"`
	Period       string `json:"period"`
	Grade        string `json:"grade"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	Remarks      string `json:"remarks"`
}

// ListReportCards returns the instructor's own reports, newest first.
func ListReportCards(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var cards []classes.ReportCard
	err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = false", userID).
		Order("created_at desc").
		Find(&cards).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch report cards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report cards fetched successfully!", cards)
}

// CreateReportCard writes a progress report.
func CreateReportCard(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedReportCard").(*reportCardBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	card := classes.ReportCard{
		InstructorID: userID,
		CourseID:     reqData.CourseID,
		StudentName:  reqData.StudentName,
		Period:       reqData.Period,
		Grade:        reqData.Grade,
		Strengths:    reqData.Strengths,
		Improvements: reqData.Improvements,
		Remarks:      reqData.Remarks,
	}

	if err := database.Database.Db.Create(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create report card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Report card created successfully!", card)
}

// UpdateReportCard replaces one of the instructor's own reports.
func UpdateReportCard(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var card classes.ReportCard
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = false", recordID, userID).
		First(&card).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report card not found!", nil)
	}

	reqData, ok := c.Locals("validatedReportCard").(*reportCardBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	card.CourseID = reqData.CourseID
	card.StudentName = reqData.StudentName
	card.Period = reqData.Period
	card.Grade = reqData.Grade
	card.Strengths = reqData.Strengths
	card.Improvements = reqData.Improvements
	card.Remarks = reqData.Remarks

	if err := database.Database.Db.Save(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update report card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report card updated successfully!", card)
}

// DeleteReportCard soft-deletes a report.
func DeleteReportCard(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	recordID := c.Locals("recordID").(int)

	var card classes.ReportCard
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = false", recordID, userID).
		First(&card).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report card not found!", nil)
	}

	card.IsDeleted = true
	if err := database.Database.Db.Save(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete report card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report card deleted successfully!", nil)
}
