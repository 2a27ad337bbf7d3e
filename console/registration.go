package console

import (
	"context"

	"edusite/models"

	"github.com/google/uuid"
)

// RegistrationForm is the public two-shape registration entry. Exactly
// one shape (individual or parent) is active at a time; switching
// keeps the other shape's draft in memory — an accidental toggle loses
// nothing — but only the active shape's fields are serialized.
type RegistrationForm struct {
	gw   Gateway
	path string

	shape string // models.RegistrationIndividual or models.RegistrationParent

	// shared fields
	Name    string
	Email   string
	Mobile  string
	Message string

	// individual-shape draft
	Age            int
	CourseInterest string

	// parent-shape draft
	children []models.Child

	Err string
}

// NewRegistrationForm starts an empty form in the individual shape.
func NewRegistrationForm(gw Gateway) *RegistrationForm {
	return &RegistrationForm{
		gw:    gw,
		path:  "/api/register",
		shape: models.RegistrationIndividual,
	}
}

// Shape returns the active shape.
func (rf *RegistrationForm) Shape() string {
	return rf.shape
}

// SetShape switches the active shape. Both drafts are preserved.
func (rf *RegistrationForm) SetShape(shape string) {
	if shape == models.RegistrationIndividual || shape == models.RegistrationParent {
		rf.shape = shape
	}
}

// AddChild appends an empty child draft with a fresh local id and
// returns it. Ids are client-generated so list rows can be addressed
// before anything reaches the server.
func (rf *RegistrationForm) AddChild() models.Child {
	child := models.Child{ID: uuid.NewString()}
	rf.children = append(rf.children, child)
	return child
}

// RemoveChild drops the child with the given local id.
func (rf *RegistrationForm) RemoveChild(id string) {
	for i, c := range rf.children {
		if c.ID == id {
			rf.children = append(rf.children[:i:i], rf.children[i+1:]...)
			return
		}
	}
}

// UpdateChild replaces the child with the same local id in place.
func (rf *RegistrationForm) UpdateChild(child models.Child) {
	for i, c := range rf.children {
		if c.ID == child.ID {
			rf.children[i] = child
			return
		}
	}
}

// Children returns the parent-shape draft list in insertion order.
func (rf *RegistrationForm) Children() []models.Child {
	out := make([]models.Child, len(rf.children))
	copy(out, rf.children)
	return out
}

// Payload serializes only the active shape's fields. The inactive
// shape's draft never leaks into the submission.
func (rf *RegistrationForm) Payload() Record {
	payload := Record{
		"type":    rf.shape,
		"name":    rf.Name,
		"email":   rf.Email,
		"mobile":  rf.Mobile,
		"message": rf.Message,
	}

	if rf.shape == models.RegistrationParent {
		payload["children"] = rf.children
	} else {
		payload["age"] = rf.Age
		payload["course_interest"] = rf.CourseInterest
	}
	return payload
}

// Submit POSTs the registration. A failed submit keeps every draft
// field and sets the inline error.
func (rf *RegistrationForm) Submit(ctx context.Context) error {
	if _, err := rf.gw.Insert(ctx, rf.path, rf.Payload()); err != nil {
		rf.Err = "Failed to submit registration. Please try again."
		return err
	}
	rf.Err = ""
	return nil
}
