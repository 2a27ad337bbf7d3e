package authController

import (
	"log"
	"time"

	"edusite/config"
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// login authenticates an account against one console surface. Each
// surface only accepts its own role, so an instructor token can never
// open the admin console.
func login(c *fiber.Ctx, role string) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is blocked. Contact support.", nil)
	}

	if user.Role != role {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This account cannot access this console!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		db.Model(&user).Update("failed_login_attempts", user.FailedLoginAttempts+1)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT for %s: %v", user.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	now := time.Now()
	db.Model(&user).Updates(map[string]interface{}{
		"last_login":            now,
		"failed_login_attempts": 0,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// AdminLogin opens an admin console session.
func AdminLogin(c *fiber.Ctx) error {
	return login(c, models.RoleAdmin)
}

// StaffLogin opens a staff console session. Approval is checked when
// the dashboard mounts, not here, so an unapproved instructor can
// still log in and see their application status.
func StaffLogin(c *fiber.Ctx) error {
	return login(c, models.RoleStaff)
}

// FranchiseLogin opens a franchise partner session.
func FranchiseLogin(c *fiber.Ctx) error {
	return login(c, models.RoleFranchise)
}

// StaffApply creates an instructor account together with its
// unapproved profile. The profile stays invisible to the staff
// console until an admin approves it.
func StaffApply(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStaffApply").(*struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		Mobile         string `json:"mobile"`
		Password       string `json:"password"`
		Qualification  string `json:"qualification"`
		Specialization string `json:"specialization"`
		ExperienceYrs  int    `json:"experience_years"`
		Bio            string `json:"bio"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Role:     models.RoleStaff,
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	profile := models.StaffProfile{
		UserID:         newUser.ID,
		Name:           reqData.Name,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		Qualification:  reqData.Qualification,
		Specialization: reqData.Specialization,
		ExperienceYrs:  reqData.ExperienceYrs,
		Bio:            reqData.Bio,
		Approved:       false,
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Printf("Error saving staff profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted. We will be in touch once it is reviewed.", profile)
}

// ApplicationStatus lets a logged-in staff account poll its own
// application while it is still pending.
func ApplicationStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.StaffProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No application found for this account.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application fetched successfully!", profile)
}
