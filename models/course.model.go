package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course lifecycle states
const (
	CourseActive   = "ACTIVE"
	CourseInactive = "INACTIVE"
)

// Course is a published learning program. Slug is derived from the
// title once, at creation, and stays put afterwards: editing the title
// of an existing course never regenerates it.
type Course struct {
	gorm.Model
	Title            string                                `json:"title"`
	Slug             string                                `json:"slug" gorm:"unique;not null"`
	Description      string                                `json:"description" gorm:"type:text"`
	DurationWeeks    int                                   `json:"duration_weeks" gorm:"default:0"`
	SessionsPerWeek  int                                   `json:"sessions_per_week" gorm:"default:1"`
	Price            float64                               `json:"price" gorm:"default:0"`
	TargetAudience   string                                `json:"target_audience"`
	DifficultyLevel  string                                `json:"difficulty_level"` // beginner, intermediate, advanced
	Prerequisites    StringList                            `json:"prerequisites" gorm:"type:jsonb"`
	LearningOutcomes StringList                            `json:"learning_outcomes" gorm:"type:jsonb"`
	Curriculum       datatypes.JSONSlice[CurriculumModule] `json:"curriculum" gorm:"type:jsonb"`
	Status           string                                `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsDeleted        bool                                  `json:"-" gorm:"default:false"`
}
