package console_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"edusite/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpecs = []console.ResourceSpec{
	{Kind: "testimonials", Path: "/api/admin/testimonials"},
	{Kind: "registrations", Path: "/api/admin/registrations"},
}

func testStats(c map[string][]console.Record) map[string]int {
	pending := 0
	for _, r := range c["testimonials"] {
		if r.Status() == "PENDING" {
			pending++
		}
	}
	return map[string]int{
		"total_testimonials":   len(c["testimonials"]),
		"total_registrations":  len(c["registrations"]),
		"pending_testimonials": pending,
	}
}

func newTestController(gw *fakeGateway) *console.Controller {
	ctl := console.NewController(gw, testSpecs, testStats)
	// Push the background resync far out so tests observe the pure
	// optimistic state unless they ask for a refetch.
	ctl.SetResyncDelay(time.Hour)
	return ctl
}

func seed(gw *fakeGateway) {
	gw.lists["/api/admin/testimonials"] = []console.Record{
		{"id": "1", "status": "PENDING", "name": "Asha"},
		{"id": "2", "status": "APPROVED", "name": "Ben"},
		{"id": "3", "status": "PENDING", "name": "Chloe"},
	}
	gw.lists["/api/admin/registrations"] = []console.Record{
		{"id": "10", "status": "PENDING"},
	}
}

func TestLoadAllStatsMatchCollections(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)

	ctl.LoadAll(context.Background())

	stats := ctl.Stats()
	assert.Equal(t, len(ctl.Collection("testimonials")), stats["total_testimonials"])
	assert.Equal(t, len(ctl.Collection("registrations")), stats["total_registrations"])
	assert.Equal(t, 2, stats["pending_testimonials"])
	assert.False(t, ctl.Loading())
}

func TestLoadAllIsIdempotent(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)

	ctl.LoadAll(context.Background())
	ctl.LoadAll(context.Background())

	assert.Equal(t, 2, gw.listCount("/api/admin/testimonials"))
	assert.Len(t, ctl.Collection("testimonials"), 3)
	assert.Equal(t, 3, ctl.Stats()["total_testimonials"])
}

func TestLoadAllIsolatesPerResourceFailure(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	gw.listErr["/api/admin/registrations"] = assert.AnError
	ctl := newTestController(gw)

	ctl.LoadAll(context.Background())

	// The failed collection degrades to empty; the healthy one is
	// fully populated. One bad fetch never zeroes the whole dashboard.
	assert.Len(t, ctl.Collection("testimonials"), 3)
	assert.Empty(t, ctl.Collection("registrations"))
	assert.Equal(t, 3, ctl.Stats()["total_testimonials"])
	assert.Equal(t, 0, ctl.Stats()["total_registrations"])
}

func TestMutateStatusOptimisticInPlaceReplace(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	err := ctl.MutateStatus(context.Background(), "testimonials", "1", "APPROVED")
	require.NoError(t, err)

	// The change is visible immediately, at the same list position,
	// before any refetch has run.
	list := ctl.Collection("testimonials")
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ID())
	assert.Equal(t, "APPROVED", list[0].Status())
	assert.Equal(t, "2", list[1].ID())
	assert.Equal(t, "3", list[2].ID())

	assert.Equal(t, 1, gw.listCount("/api/admin/testimonials"), "no refetch before the debounce window")
	assert.Equal(t, 1, gw.patchCount())

	// Stats rederive synchronously from the patched mirror.
	assert.Equal(t, 1, ctl.Stats()["pending_testimonials"])
}

func TestMutateStatusFailureLeavesMirrorUntouched(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	gw.patchErr = assert.AnError
	err := ctl.MutateStatus(context.Background(), "testimonials", "1", "APPROVED")
	require.Error(t, err)

	list := ctl.Collection("testimonials")
	assert.Equal(t, "PENDING", list[0].Status(), "no optimistic update without server confirmation")
	assert.Equal(t, 2, ctl.Stats()["pending_testimonials"])
}

func TestMutateStatusUnknownKind(t *testing.T) {
	gw := newFakeGateway()
	ctl := newTestController(gw)

	err := ctl.MutateStatus(context.Background(), "nope", "1", "APPROVED")
	assert.Error(t, err)
	assert.Equal(t, 0, gw.patchCount())
}

func TestRequestThenCancelDeleteMakesNoCalls(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	ctl.RequestDelete("testimonials", "2")
	require.NotNil(t, ctl.PendingDelete())
	assert.Equal(t, "2", ctl.PendingDelete().ID)

	ctl.CancelDelete()
	assert.Nil(t, ctl.PendingDelete())

	assert.Len(t, ctl.Collection("testimonials"), 3)
	assert.Equal(t, 0, gw.deleteCount())
}

func TestConfirmDeleteIssuesExactlyOneCall(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	ctl.RequestDelete("testimonials", "2")
	require.NoError(t, ctl.ConfirmDelete(context.Background()))

	assert.Equal(t, 1, gw.deleteCount())
	assert.Nil(t, ctl.PendingDelete())

	list := ctl.Collection("testimonials")
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID())
	assert.Equal(t, "3", list[1].ID())

	// The gate is down; confirming again is a no-op.
	require.NoError(t, ctl.ConfirmDelete(context.Background()))
	assert.Equal(t, 1, gw.deleteCount())
}

func TestConfirmDeleteDoubleClickDuringFlight(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	gw.deleteGate = make(chan struct{})
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	ctl.RequestDelete("testimonials", "2")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctl.ConfirmDelete(context.Background())
	}()

	// Wait for the first DELETE to be in flight, then click again.
	require.Eventually(t, func() bool { return gw.deleteCount() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, ctl.ConfirmDelete(context.Background()))

	close(gw.deleteGate)
	wg.Wait()

	assert.Equal(t, 1, gw.deleteCount(), "at most one DELETE per id per confirmation")
}

func TestConfirmDeleteFailureKeepsRecord(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	gw.deleteErr = assert.AnError
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	ctl.RequestDelete("testimonials", "2")
	require.Error(t, ctl.ConfirmDelete(context.Background()))

	assert.Len(t, ctl.Collection("testimonials"), 3)
	assert.Nil(t, ctl.PendingDelete())
}

func TestMutationSchedulesResync(t *testing.T) {
	gw := newFakeGateway()
	seed(gw)
	ctl := newTestController(gw)
	ctl.LoadAll(context.Background())

	// Zero delay makes the reconciliation synchronous.
	ctl.SetResyncDelay(0)
	require.NoError(t, ctl.MutateStatus(context.Background(), "testimonials", "1", "APPROVED"))

	assert.Equal(t, 2, gw.listCount("/api/admin/testimonials"), "mutation triggers a full refetch")
	assert.Equal(t, 2, gw.listCount("/api/admin/registrations"))
}

func TestOpenAndCloseForm(t *testing.T) {
	gw := newFakeGateway()
	ctl := newTestController(gw)

	ctl.OpenForm("testimonials", nil)
	form := ctl.ActiveForm()
	require.NotNil(t, form)
	assert.Equal(t, "testimonials", form.Kind)
	assert.Nil(t, form.Record, "nil record means create")

	rec := console.Record{"id": "2", "status": "APPROVED"}
	ctl.OpenForm("testimonials", rec)
	form = ctl.ActiveForm()
	require.NotNil(t, form)
	assert.Equal(t, "2", form.Record.ID())

	ctl.CloseForm()
	assert.Nil(t, ctl.ActiveForm())
}
