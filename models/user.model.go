package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum values
const (
	RoleAdmin     = "ADMIN"
	RoleStaff     = "STAFF"
	RoleFranchise = "FRANCHISE"
)

// User is a console account. Every dashboard surface (admin, staff,
// franchise) authenticates against this table; Role decides which
// surface the session may mount.
type User struct {
	gorm.Model
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Mobile              string     `json:"mobile" gorm:"default:''"`
	Role                string     `json:"role" gorm:"default:'STAFF'"` // ADMIN, STAFF, FRANCHISE
	Password            string     `json:"-" gorm:"not null"`
	LastLogin           *time.Time `json:"last_login"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	IsBlocked           bool       `json:"-" gorm:"default:false"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}
