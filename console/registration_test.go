package console_test

import (
	"context"
	"testing"

	"edusite/console"
	"edusite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFormStartsIndividual(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	assert.Equal(t, models.RegistrationIndividual, rf.Shape())
}

func TestRegistrationPayloadIndividualOnly(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	rf.Name = "Asha Rao"
	rf.Email = "asha@example.com"
	rf.Mobile = "9876543210"
	rf.Age = 14
	rf.CourseInterest = "Robotics"

	// Fill the parent draft too; it must not leak.
	child := rf.AddChild()
	child.Name = "Kiran"
	rf.UpdateChild(child)

	payload := rf.Payload()
	assert.Equal(t, models.RegistrationIndividual, payload["type"])
	assert.Equal(t, 14, payload["age"])
	assert.Equal(t, "Robotics", payload["course_interest"])
	_, hasChildren := payload["children"]
	assert.False(t, hasChildren, "parent draft never serializes in the individual shape")
}

func TestRegistrationPayloadParentOnly(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	rf.Name = "Meera Pillai"
	rf.Age = 40
	rf.CourseInterest = "should not appear"

	rf.SetShape(models.RegistrationParent)
	first := rf.AddChild()
	first.Name = "Dev"
	first.Age = 8
	rf.UpdateChild(first)
	second := rf.AddChild()
	second.Name = "Isha"
	second.Age = 11
	rf.UpdateChild(second)

	payload := rf.Payload()
	assert.Equal(t, models.RegistrationParent, payload["type"])
	_, hasAge := payload["age"]
	_, hasInterest := payload["course_interest"]
	assert.False(t, hasAge, "individual draft never serializes in the parent shape")
	assert.False(t, hasInterest)

	children, ok := payload["children"].([]models.Child)
	require.True(t, ok)
	require.Len(t, children, 2)
	assert.Equal(t, "Dev", children[0].Name, "children keep insertion order")
	assert.Equal(t, "Isha", children[1].Name)
}

func TestRegistrationShapeSwitchPreservesBothDrafts(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	rf.Age = 16
	rf.CourseInterest = "Coding"

	rf.SetShape(models.RegistrationParent)
	child := rf.AddChild()
	child.Name = "Tara"
	rf.UpdateChild(child)

	// Toggle back and forth; nothing typed is lost.
	rf.SetShape(models.RegistrationIndividual)
	assert.Equal(t, 16, rf.Age)
	assert.Equal(t, "Coding", rf.CourseInterest)

	rf.SetShape(models.RegistrationParent)
	require.Len(t, rf.Children(), 1)
	assert.Equal(t, "Tara", rf.Children()[0].Name)
}

func TestRegistrationSetShapeRejectsUnknown(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	rf.SetShape("CORPORATE")
	assert.Equal(t, models.RegistrationIndividual, rf.Shape())
}

func TestRegistrationAddChildUniqueIds(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	rf.SetShape(models.RegistrationParent)

	a := rf.AddChild()
	b := rf.AddChild()
	c := rf.AddChild()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestRegistrationRemoveChild(t *testing.T) {
	rf := console.NewRegistrationForm(newFakeGateway())
	rf.SetShape(models.RegistrationParent)

	a := rf.AddChild()
	b := rf.AddChild()

	rf.RemoveChild(a.ID)
	require.Len(t, rf.Children(), 1)
	assert.Equal(t, b.ID, rf.Children()[0].ID)

	rf.RemoveChild("no-such-id")
	assert.Len(t, rf.Children(), 1)
}

func TestRegistrationSubmit(t *testing.T) {
	gw := newFakeGateway()
	rf := console.NewRegistrationForm(gw)
	rf.Name = "Asha Rao"
	rf.Email = "asha@example.com"

	require.NoError(t, rf.Submit(context.Background()))
	require.Len(t, gw.insertCalls, 1)
	assert.Equal(t, "Asha Rao", gw.insertCalls[0]["name"])
	assert.Empty(t, rf.Err)
}

func TestRegistrationSubmitFailureKeepsDraft(t *testing.T) {
	gw := newFakeGateway()
	gw.insertErr = assert.AnError
	rf := console.NewRegistrationForm(gw)
	rf.Name = "Keep Me"
	rf.SetShape(models.RegistrationParent)
	child := rf.AddChild()
	child.Name = "Tara"
	rf.UpdateChild(child)

	require.Error(t, rf.Submit(context.Background()))
	assert.Equal(t, "Failed to submit registration. Please try again.", rf.Err)
	assert.Equal(t, "Keep Me", rf.Name)
	require.Len(t, rf.Children(), 1)
	assert.Equal(t, "Tara", rf.Children()[0].Name)
}
