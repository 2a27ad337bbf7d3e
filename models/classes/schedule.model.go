package classes

import (
	"time"

	"gorm.io/gorm"
)

// VirtualClassSchedule is an upcoming online class slot with its
// meeting link.
type VirtualClassSchedule struct {
	gorm.Model
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index"`
	StudentName  string    `json:"student_name"`
	MeetingLink  string    `json:"meeting_link"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	DurationMins int       `json:"duration_mins" gorm:"default:60"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}
