package staffController

import (
	"time"

	"edusite/database"
	"edusite/middleware"
	"edusite/models/classes"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats aggregates the instructor console's header counters.
func DashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	db := database.Database.Db

	var (
		totalSessions    int64
		sessionsThisWeek int64
		upcomingClasses  int64
		totalReportCards int64
	)

	weekStart := time.Now().AddDate(0, 0, -7)

	db.Model(&classes.ClassSession{}).
		Where("instructor_id = ? AND is_deleted = false", userID).
		Count(&totalSessions)
	db.Model(&classes.ClassSession{}).
		Where("instructor_id = ? AND is_deleted = false AND held_at > ?", userID, weekStart).
		Count(&sessionsThisWeek)
	db.Model(&classes.VirtualClassSchedule{}).
		Where("instructor_id = ? AND is_deleted = false AND scheduled_at > ?", userID, time.Now()).
		Count(&upcomingClasses)
	db.Model(&classes.ReportCard{}).
		Where("instructor_id = ? AND is_deleted = false", userID).
		Count(&totalReportCards)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_sessions":     totalSessions,
		"sessions_this_week": sessionsThisWeek,
		"upcoming_classes":   upcomingClasses,
		"total_report_cards": totalReportCards,
	})
}
