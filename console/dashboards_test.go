package console_test

import (
	"context"
	"testing"
	"time"

	"edusite/console"

	"github.com/stretchr/testify/assert"
)

func TestAdminDashboardStats(t *testing.T) {
	gw := newFakeGateway()
	gw.lists["/api/admin/testimonials"] = []console.Record{
		{"id": "1", "status": "PENDING"},
		{"id": "2", "status": "APPROVED"},
	}
	gw.lists["/api/admin/blog"] = []console.Record{
		{"id": "1", "status": "PUBLISHED"},
		{"id": "2", "status": "DRAFT"},
		{"id": "3", "status": "ARCHIVED"},
	}
	gw.lists["/api/admin/courses"] = []console.Record{
		{"id": "1", "status": "ACTIVE"},
	}
	gw.lists["/api/admin/staff"] = []console.Record{
		{"id": "1", "approved": true},
		{"id": "2", "approved": false},
		{"id": "3"},
	}

	ctl := console.NewAdminDashboard(gw)
	ctl.SetResyncDelay(time.Hour)
	ctl.LoadAll(context.Background())

	stats := ctl.Stats()
	assert.Equal(t, 2, stats["total_testimonials"])
	assert.Equal(t, 1, stats["pending_testimonials"])
	assert.Equal(t, 3, stats["total_posts"])
	assert.Equal(t, 1, stats["published_posts"])
	assert.Equal(t, 1, stats["active_courses"])
	assert.Equal(t, 3, stats["total_staff"])
	assert.Equal(t, 2, stats["pending_staff"], "a missing approved flag counts as pending")
	assert.Equal(t, 0, stats["total_registrations"])
}

func TestFranchiseDashboardPipelineCounts(t *testing.T) {
	gw := newFakeGateway()
	gw.lists["/api/franchise/schools"] = []console.Record{
		{"id": "1", "status": "LEAD"},
		{"id": "2", "status": "LEAD"},
		{"id": "3", "status": "NEGOTIATING"},
		{"id": "4", "status": "CLOSED_WON"},
	}

	ctl := console.NewFranchiseDashboard(gw)
	ctl.SetResyncDelay(time.Hour)
	ctl.LoadAll(context.Background())

	stats := ctl.Stats()
	assert.Equal(t, 4, stats["total_schools"])
	assert.Equal(t, 2, stats["leads"])
	assert.Equal(t, 1, stats["negotiating"])
	assert.Equal(t, 1, stats["closed_won"])
	assert.Equal(t, 0, stats["closed_lost"])
}
