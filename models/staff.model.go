package models

import "gorm.io/gorm"

// StaffProfile is an instructor application/profile. Approved=false
// means a pending application; flipping it to true activates the
// profile. There is no rejected state: rejecting an application
// deletes the profile, and re-applying creates a fresh one.
type StaffProfile struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"index;not null"`
	Name           string `json:"name"`
	Email          string `json:"email" gorm:"unique;not null"`
	Mobile         string `json:"mobile"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"` // robotics, coding, electronics
	ExperienceYrs  int    `json:"experience_years" gorm:"default:0"`
	Bio            string `json:"bio" gorm:"type:text"`
	Approved       bool   `json:"approved" gorm:"default:false"`
	IsDeleted      bool   `json:"-" gorm:"default:false"`
}
