package adminController

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"edusite/database"
	"edusite/models"
	adminValidator "edusite/validators/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.StaffProfile{}))

	prev := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { database.Database = prev })

	return db
}

func TestDeleteStaffDisablesLoginAccount(t *testing.T) {
	db := setupTestDb(t)

	app := fiber.New()
	app.Delete("/:id?", adminValidator.IDParam(), DeleteStaff)

	user := models.User{Name: "Ravi", Email: "ravi@example.com", Role: models.RoleStaff, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	profile := models.StaffProfile{UserID: user.ID, Name: "Ravi", Email: "ravi@example.com"}
	require.NoError(t, db.Create(&profile).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/%d", profile.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Both the profile and its login go. A rejected applicant cannot
	// keep signing in to the staff console.
	var gone models.StaffProfile
	require.NoError(t, db.First(&gone, profile.ID).Error)
	assert.True(t, gone.IsDeleted)

	var account models.User
	require.NoError(t, db.First(&account, user.ID).Error)
	assert.True(t, account.IsDeleted)
}

func TestDeleteStaffUnknownProfile(t *testing.T) {
	setupTestDb(t)

	app := fiber.New()
	app.Delete("/:id?", adminValidator.IDParam(), DeleteStaff)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
