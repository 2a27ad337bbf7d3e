package models

import "gorm.io/gorm"

// PortfolioItem is a student/partner project showcased on the
// marketing site. Status toggles freely, like gallery images.
type PortfolioItem struct {
	gorm.Model
	Title        string     `json:"title"`
	Description  string     `json:"description" gorm:"type:text"`
	ImageURL     string     `json:"image_url"`
	ProjectURL   string     `json:"project_url"`
	Technologies StringList `json:"technologies" gorm:"type:jsonb"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}
