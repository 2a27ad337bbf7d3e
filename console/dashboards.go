package console

// The three dashboards share one controller shape and differ only in
// which collections they mirror and which counters they derive.

func countByStatus(records []Record, status string) int {
	n := 0
	for _, r := range records {
		if r.Status() == status {
			n++
		}
	}
	return n
}

// NewAdminDashboard mirrors every admin-console collection.
func NewAdminDashboard(gw Gateway) *Controller {
	specs := []ResourceSpec{
		{Kind: "testimonials", Path: "/api/admin/testimonials"},
		{Kind: "blog", Path: "/api/admin/blog"},
		{Kind: "gallery", Path: "/api/admin/gallery"},
		{Kind: "portfolio", Path: "/api/admin/portfolio"},
		{Kind: "courses", Path: "/api/admin/courses"},
		{Kind: "registrations", Path: "/api/admin/registrations"},
		{Kind: "staff", Path: "/api/admin/staff"},
		{Kind: "franchises", Path: "/api/admin/franchise-schools"},
	}

	stats := func(c map[string][]Record) map[string]int {
		pendingStaff := 0
		for _, r := range c["staff"] {
			if approved, _ := r["approved"].(bool); !approved {
				pendingStaff++
			}
		}
		return map[string]int{
			"total_testimonials":    len(c["testimonials"]),
			"pending_testimonials":  countByStatus(c["testimonials"], "PENDING"),
			"total_posts":           len(c["blog"]),
			"published_posts":       countByStatus(c["blog"], "PUBLISHED"),
			"total_gallery":         len(c["gallery"]),
			"total_portfolio":       len(c["portfolio"]),
			"total_courses":         len(c["courses"]),
			"active_courses":        countByStatus(c["courses"], "ACTIVE"),
			"total_registrations":   len(c["registrations"]),
			"pending_registrations": countByStatus(c["registrations"], "PENDING"),
			"total_staff":           len(c["staff"]),
			"pending_staff":         pendingStaff,
			"total_franchises":      len(c["franchises"]),
		}
	}

	return NewController(gw, specs, stats)
}

// NewStaffDashboard mirrors the instructor console collections.
func NewStaffDashboard(gw Gateway) *Controller {
	specs := []ResourceSpec{
		{Kind: "sessions", Path: "/api/staff/class-sessions"},
		{Kind: "schedules", Path: "/api/staff/schedules"},
		{Kind: "reportcards", Path: "/api/staff/report-cards"},
	}

	stats := func(c map[string][]Record) map[string]int {
		return map[string]int{
			"total_sessions":    len(c["sessions"]),
			"total_schedules":   len(c["schedules"]),
			"total_reportcards": len(c["reportcards"]),
		}
	}

	return NewController(gw, specs, stats)
}

// NewFranchiseDashboard mirrors the partner CRM pipeline.
func NewFranchiseDashboard(gw Gateway) *Controller {
	specs := []ResourceSpec{
		{Kind: "schools", Path: "/api/franchise/schools"},
	}

	stats := func(c map[string][]Record) map[string]int {
		schools := c["schools"]
		return map[string]int{
			"total_schools": len(schools),
			"leads":         countByStatus(schools, "LEAD"),
			"contacted":     countByStatus(schools, "CONTACTED"),
			"proposals":     countByStatus(schools, "PROPOSAL_SENT"),
			"negotiating":   countByStatus(schools, "NEGOTIATING"),
			"closed_won":    countByStatus(schools, "CLOSED_WON"),
			"closed_lost":   countByStatus(schools, "CLOSED_LOST"),
		}
	}

	return NewController(gw, specs, stats)
}
