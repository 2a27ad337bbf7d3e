package classes

import "gorm.io/gorm"

// ReportCard is an instructor-authored progress report for one
// student. No cross-entity invariant beyond the instructor/course
// association.
type ReportCard struct {
	gorm.Model
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	CourseID     uint   `json:"course_id" gorm:"index"`
	StudentName  string `json:"student_name"`
	Period       string `json:"period"` // e.g. "2026-Q2"
	Grade        string `json:"grade"`
	Strengths    string `json:"strengths" gorm:"type:text"`
	Improvements string `json:"improvements" gorm:"type:text"`
	Remarks      string `json:"remarks" gorm:"type:text"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
