package console_test

import (
	"context"
	"testing"

	"edusite/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormCreateDerivesSlugFromTitle(t *testing.T) {
	gw := newFakeGateway()
	form := console.NewForm(gw, "/api/admin/courses", nil, console.Record{"status": "ACTIVE"})

	form.SetField("title", "My Course! 2.0")
	assert.Equal(t, "my-course-20", form.Draft()["slug"])

	// Retyping the title keeps the slug in step while creating.
	form.SetField("title", "Robotics for Kids")
	assert.Equal(t, "robotics-for-kids", form.Draft()["slug"])
}

func TestFormEditNeverRegeneratesSlug(t *testing.T) {
	gw := newFakeGateway()
	existing := console.Record{"id": "7", "title": "Old Title", "slug": "old-title"}
	form := console.NewForm(gw, "/api/admin/courses", existing, nil)

	form.SetField("title", "Completely New Title")
	assert.Equal(t, "old-title", form.Draft()["slug"])

	// The slug is still directly editable as its own field.
	form.SetField("slug", "hand-picked")
	assert.Equal(t, "hand-picked", form.Draft()["slug"])
}

func TestFormEditDraftStartsFromRecordCopy(t *testing.T) {
	gw := newFakeGateway()
	existing := console.Record{"id": "7", "title": "Old Title"}
	form := console.NewForm(gw, "/api/admin/courses", existing, nil)

	form.SetField("title", "Edited")
	assert.Equal(t, "Old Title", existing["title"], "editing the draft must not mutate the mirror record")
}

func TestFormAddItemSuppressesDuplicateStrings(t *testing.T) {
	gw := newFakeGateway()
	form := console.NewForm(gw, "/api/admin/courses", nil, console.Record{})

	form.AddItem("prerequisites", "Basic math")
	form.AddItem("prerequisites", "Laptop")
	form.AddItem("prerequisites", "Basic math")

	assert.Equal(t, []interface{}{"Basic math", "Laptop"}, form.Draft()["prerequisites"])
}

func TestFormAddItemKeepsStructuredDuplicates(t *testing.T) {
	gw := newFakeGateway()
	form := console.NewForm(gw, "/api/admin/courses", nil, console.Record{})

	module := map[string]interface{}{"title": "Intro", "weeks": 2}
	form.AddItem("curriculum", module)
	form.AddItem("curriculum", map[string]interface{}{"title": "Intro", "weeks": 2})

	list, _ := form.Draft()["curriculum"].([]interface{})
	assert.Len(t, list, 2, "structured items are appended as-is")
}

func TestFormRemoveItem(t *testing.T) {
	gw := newFakeGateway()
	form := console.NewForm(gw, "/api/admin/courses", nil, console.Record{})

	form.AddItem("prerequisites", "A")
	form.AddItem("prerequisites", "B")
	form.AddItem("prerequisites", "C")

	form.RemoveItem("prerequisites", "B")
	assert.Equal(t, []interface{}{"A", "C"}, form.Draft()["prerequisites"])

	form.RemoveItem("prerequisites", "not there")
	assert.Equal(t, []interface{}{"A", "C"}, form.Draft()["prerequisites"])

	form.RemoveItemAt("prerequisites", 0)
	assert.Equal(t, []interface{}{"C"}, form.Draft()["prerequisites"])

	form.RemoveItemAt("prerequisites", 5)
	assert.Equal(t, []interface{}{"C"}, form.Draft()["prerequisites"])
}

func TestFormSubmitCreateInserts(t *testing.T) {
	gw := newFakeGateway()
	form := console.NewForm(gw, "/api/admin/blog", nil, console.Record{"status": "DRAFT"})
	form.SetField("title", "First Post")

	saved, closed := false, false
	form.OnSave = func() { saved = true }
	form.OnClose = func() { closed = true }

	require.NoError(t, form.Submit(context.Background(), "title"))

	require.Len(t, gw.insertCalls, 1)
	assert.Empty(t, gw.updateCalls)
	assert.Equal(t, "first-post", gw.insertCalls[0]["slug"])
	assert.True(t, saved)
	assert.True(t, closed)
	assert.Empty(t, form.Err)
}

func TestFormSubmitEditUpdates(t *testing.T) {
	gw := newFakeGateway()
	existing := console.Record{"id": "3", "title": "Post", "slug": "post"}
	form := console.NewForm(gw, "/api/admin/blog", existing, nil)
	form.SetField("title", "Post v2")

	require.NoError(t, form.Submit(context.Background(), "title"))

	require.Len(t, gw.updateCalls, 1)
	assert.Empty(t, gw.insertCalls)
	assert.Equal(t, "Post v2", gw.updateCalls[0]["title"])
}

func TestFormSubmitMissingRequiredField(t *testing.T) {
	gw := newFakeGateway()
	form := console.NewForm(gw, "/api/admin/blog", nil, console.Record{})

	err := form.Submit(context.Background(), "title")
	require.Error(t, err)
	assert.Equal(t, "title is required", form.Err)
	assert.Empty(t, gw.insertCalls, "validation failure makes no network call")
}

func TestFormSubmitFailureKeepsDraft(t *testing.T) {
	gw := newFakeGateway()
	gw.insertErr = assert.AnError
	form := console.NewForm(gw, "/api/admin/blog", nil, console.Record{})
	form.SetField("title", "Keep Me")

	closed := false
	form.OnClose = func() { closed = true }

	require.Error(t, form.Submit(context.Background(), "title"))

	assert.Equal(t, "Failed to save. Please try again.", form.Err)
	assert.Equal(t, "Keep Me", form.Draft()["title"], "the draft survives a failed save")
	assert.False(t, closed, "the overlay stays open on failure")

	// Retrying after the server recovers clears the banner.
	gw.insertErr = nil
	require.NoError(t, form.Submit(context.Background(), "title"))
	assert.Empty(t, form.Err)
}
