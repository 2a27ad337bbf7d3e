package classes

import (
	"time"

	"gorm.io/gorm"
)

// ClassSession is one delivered class, written up by the instructor
// who taught it.
type ClassSession struct {
	gorm.Model
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index"`
	StudentName  string    `json:"student_name"`
	Topic        string    `json:"topic"`
	HeldAt       time.Time `json:"held_at"`
	DurationMins int       `json:"duration_mins" gorm:"default:60"`
	Notes        string    `json:"notes" gorm:"type:text"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}
