package models

import "gorm.io/datatypes"

// StringList is an ordered list of strings persisted as a JSONB column
// (prerequisites, learning outcomes, technologies).
type StringList = datatypes.JSONSlice[string]

// CurriculumModule is one block of a course curriculum. Curricula are
// stored as a nested JSONB document on the course row, not as
// normalized child rows.
type CurriculumModule struct {
	Title  string   `json:"title"`
	Weeks  int      `json:"weeks"`
	Topics []string `json:"topics"`
}

// Child is one entry of a parent registration. ID is generated on the
// client side (uuid) so rows of the draft list can be addressed before
// the registration ever reaches the server.
type Child struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	CourseInterest string `json:"course_interest"`
}
