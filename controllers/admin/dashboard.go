package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats aggregates the counters the admin console's header
// cards and sidebar badges show. Counts come straight from the store,
// so a console that refetches after a mutation converges on these.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var (
		totalTestimonials    int64
		pendingTestimonials  int64
		totalPosts           int64
		publishedPosts       int64
		totalCourses         int64
		totalRegistrations   int64
		pendingRegistrations int64
		totalStaff           int64
		pendingStaff         int64
		totalFranchises      int64
	)

	db.Model(&models.Testimonial{}).Where("is_deleted = false").Count(&totalTestimonials)
	db.Model(&models.Testimonial{}).Where("is_deleted = false AND status = ?", models.TestimonialPending).Count(&pendingTestimonials)
	db.Model(&models.BlogPost{}).Where("is_deleted = false").Count(&totalPosts)
	db.Model(&models.BlogPost{}).Where("is_deleted = false AND status = ?", models.BlogPublished).Count(&publishedPosts)
	db.Model(&models.Course{}).Where("is_deleted = false").Count(&totalCourses)
	db.Model(&models.Registration{}).Where("is_deleted = false").Count(&totalRegistrations)
	db.Model(&models.Registration{}).Where("is_deleted = false AND status = ?", models.RegistrationPending).Count(&pendingRegistrations)
	db.Model(&models.StaffProfile{}).Where("is_deleted = false").Count(&totalStaff)
	db.Model(&models.StaffProfile{}).Where("is_deleted = false AND approved = false").Count(&pendingStaff)
	db.Model(&models.FranchiseSchool{}).Where("is_deleted = false").Count(&totalFranchises)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_testimonials":    totalTestimonials,
		"pending_testimonials":  pendingTestimonials,
		"total_posts":           totalPosts,
		"published_posts":       publishedPosts,
		"total_courses":         totalCourses,
		"total_registrations":   totalRegistrations,
		"pending_registrations": pendingRegistrations,
		"total_staff":           totalStaff,
		"pending_staff":         pendingStaff,
		"total_franchises":      totalFranchises,
	})
}
