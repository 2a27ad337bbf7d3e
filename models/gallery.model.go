package models

import "gorm.io/gorm"

// Visibility states shared by gallery and portfolio records
const (
	VisibilityActive   = "ACTIVE"
	VisibilityInactive = "INACTIVE"
)

// GalleryImage is a marketing-site photo. Status toggles freely.
type GalleryImage struct {
	gorm.Model
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	Category  string `json:"category"`                                        // workshops, competitions, classrooms
	Status    string `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
