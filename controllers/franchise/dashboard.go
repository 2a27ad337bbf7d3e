package franchiseController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats aggregates the partner console's pipeline counters,
// including the total estimated value of open leads.
func DashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	db := database.Database.Db

	counts := make(map[string]int64, len(models.FranchiseStatuses))
	for _, status := range models.FranchiseStatuses {
		var n int64
		db.Model(&models.FranchiseSchool{}).
			Where("owner_id = ? AND is_deleted = false AND status = ?", userID, status).
			Count(&n)
		counts[status] = n
	}

	var total int64
	db.Model(&models.FranchiseSchool{}).
		Where("owner_id = ? AND is_deleted = false", userID).
		Count(&total)

	var pipelineValue float64
	db.Model(&models.FranchiseSchool{}).
		Where("owner_id = ? AND is_deleted = false AND status NOT IN ?", userID,
			[]string{models.LeadClosedWon, models.LeadClosedLost}).
		Select("COALESCE(SUM(estimated_value), 0)").
		Scan(&pipelineValue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_schools":  total,
		"by_status":      counts,
		"pipeline_value": pipelineValue,
	})
}
