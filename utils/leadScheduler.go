package utils

import (
	"log"
	"time"

	"edusite/config"
	"edusite/database"
	"edusite/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[LEAD-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepStaleLeads finds open franchise leads whose LastContact is
// older than the configured window and mails admins a digest. Closed
// leads are left alone.
func sweepStaleLeads() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.StaleLeadDays)

	var leads []models.FranchiseSchool
	err := db.Where("is_deleted = false AND status NOT IN ?", []string{models.LeadClosedWon, models.LeadClosedLost}).
		Where("last_contact IS NULL OR last_contact < ?", cutoff).
		Order("last_contact asc").
		Find(&leads).Error
	if err != nil {
		logScheduler("Error fetching stale leads: " + err.Error())
		return
	}

	if len(leads) == 0 {
		return
	}

	names := make([]string, len(leads))
	for i, l := range leads {
		names[i] = l.Name + " (" + l.Status + ")"
	}

	SendStaleLeadDigest(names)
	logScheduler("Stale lead digest queued for " + time.Now().Format("2006-01-02"))
}

// StartLeadScheduler runs the nightly stale-lead sweep. Call once
// from main after the database is up.
func StartLeadScheduler() {
	c := cron.New()

	// 07:00 every day, before the team starts
	if _, err := c.AddFunc("0 7 * * *", sweepStaleLeads); err != nil {
		log.Fatalf("Failed to schedule stale lead sweep: %v", err)
	}

	c.Start()
	logScheduler("Lead scheduler started")
}
