package publicController

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"edusite/database"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDb points the global handle at a fresh in-memory store for
// one test.
func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Testimonial{}))

	prev := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { database.Database = prev })

	return db
}

func fetchFeed(t *testing.T, app *fiber.App) []models.Testimonial {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/testimonials", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status bool                 `json:"status"`
		Data   []models.Testimonial `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Status)
	return body.Data
}

func TestPublicFeedShowsOnlyApprovedTestimonials(t *testing.T) {
	db := setupTestDb(t)

	app := fiber.New()
	app.Get("/api/testimonials", ApprovedTestimonials)

	db.Create(&models.Testimonial{Name: "Pending Parent", Content: "...", Status: models.TestimonialPending})
	db.Create(&models.Testimonial{Name: "Happy Parent", Content: "Great classes", Status: models.TestimonialApproved})
	db.Create(&models.Testimonial{Name: "Rejected Spam", Content: "...", Status: models.TestimonialRejected})
	db.Create(&models.Testimonial{Name: "Removed", Content: "...", Status: models.TestimonialApproved, IsDeleted: true})

	feed := fetchFeed(t, app)
	require.Len(t, feed, 1)
	assert.Equal(t, "Happy Parent", feed[0].Name)
}

func TestPublicFeedFollowsModerationToggle(t *testing.T) {
	db := setupTestDb(t)

	app := fiber.New()
	app.Get("/api/testimonials", ApprovedTestimonials)

	entry := models.Testimonial{Name: "Asha", Content: "Loved it", Status: models.TestimonialPending}
	require.NoError(t, db.Create(&entry).Error)

	assert.Empty(t, fetchFeed(t, app), "pending submissions stay off the public feed")

	db.Model(&entry).Update("status", models.TestimonialApproved)
	feed := fetchFeed(t, app)
	require.Len(t, feed, 1)
	assert.Equal(t, "Asha", feed[0].Name)

	// Rejecting an already-approved entry pulls it back off the feed.
	db.Model(&entry).Update("status", models.TestimonialRejected)
	assert.Empty(t, fetchFeed(t, app))
}
