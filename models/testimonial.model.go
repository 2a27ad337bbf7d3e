package models

import "gorm.io/gorm"

// Testimonial moderation states
const (
	TestimonialPending  = "PENDING"
	TestimonialApproved = "APPROVED"
	TestimonialRejected = "REJECTED"
)

// Testimonial is a public submission. It always enters as PENDING and
// only shows on the marketing site once an admin approves it. Approval
// is reversible (approve/reject toggle).
type Testimonial struct {
	gorm.Model
	Name      string `json:"name"`
	Role      string `json:"role"` // parent, student, school partner
	Company   string `json:"company"`
	Content   string `json:"content" gorm:"type:text"`
	Rating    int    `json:"rating" gorm:"default:5"`                          // 1-5
	Status    string `json:"status" gorm:"type:varchar(20);default:'PENDING'"` // PENDING, APPROVED, REJECTED
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
