package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration types
const (
	RegistrationIndividual = "INDIVIDUAL"
	RegistrationParent     = "PARENT"
)

// Registration pipeline states. Transitions only move forward:
// PENDING -> CONTACTED -> ENROLLED or DECLINED.
const (
	RegistrationPending   = "PENDING"
	RegistrationContacted = "CONTACTED"
	RegistrationEnrolled  = "ENROLLED"
	RegistrationDeclined  = "DECLINED"
)

// Registration is a public course-interest submission. An INDIVIDUAL
// registration carries its own CourseInterest; a PARENT one carries an
// embedded list of children instead (JSONB document, not child rows).
type Registration struct {
	gorm.Model
	Type           string                     `json:"type" gorm:"type:varchar(20);not null"` // INDIVIDUAL, PARENT
	Name           string                     `json:"name"`
	Email          string                     `json:"email"`
	Mobile         string                     `json:"mobile"`
	Age            int                        `json:"age,omitempty"`
	CourseInterest string                     `json:"course_interest,omitempty"`
	Children       datatypes.JSONSlice[Child] `json:"children,omitempty" gorm:"type:jsonb"`
	Message        string                     `json:"message" gorm:"type:text"`
	Status         string                     `json:"status" gorm:"type:varchar(20);default:'PENDING'"` // PENDING, CONTACTED, ENROLLED, DECLINED
	IsDeleted      bool                       `json:"-" gorm:"default:false"`
}

// AllowedRegistrationTransition reports whether a status move is one of
// the forward transitions the pipeline permits.
func AllowedRegistrationTransition(from, to string) bool {
	switch from {
	case RegistrationPending:
		return to == RegistrationContacted
	case RegistrationContacted:
		return to == RegistrationEnrolled || to == RegistrationDeclined
	default:
		return false
	}
}
