package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost lifecycle states
const (
	BlogDraft     = "DRAFT"
	BlogPublished = "PUBLISHED"
	BlogArchived  = "ARCHIVED"
)

// BlogPost is a marketing article. PublishedAt is stamped exactly once,
// when the post transitions DRAFT -> PUBLISHED. The console only offers
// DRAFT -> PUBLISHED and PUBLISHED -> ARCHIVED; there is no way back.
type BlogPost struct {
	gorm.Model
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Author      string     `json:"author"`
	Excerpt     string     `json:"excerpt" gorm:"type:text"`
	Content     string     `json:"content" gorm:"type:text"`
	CoverURL    string     `json:"cover_url"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'DRAFT'"` // DRAFT, PUBLISHED, ARCHIVED
	PublishedAt *time.Time `json:"published_at"`
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}
