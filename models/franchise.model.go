package models

import (
	"time"

	"gorm.io/gorm"
)

// Franchise CRM pipeline states
const (
	LeadNew          = "LEAD"
	LeadContacted    = "CONTACTED"
	LeadProposalSent = "PROPOSAL_SENT"
	LeadNegotiating  = "NEGOTIATING"
	LeadClosedWon    = "CLOSED_WON"
	LeadClosedLost   = "CLOSED_LOST"
)

// FranchiseSchool is a CRM lead for a partner school. LastContact is
// bumped on every status change so the stale-lead sweep knows when the
// pipeline last moved.
type FranchiseSchool struct {
	gorm.Model
	OwnerID        uint       `json:"owner_id" gorm:"index"` // franchise account that works the lead
	Name           string     `json:"name"`
	ContactPerson  string     `json:"contact_person"`
	Email          string     `json:"email"`
	Mobile         string     `json:"mobile"`
	City           string     `json:"city"`
	Address        string     `json:"address"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:'LEAD'"` // LEAD, CONTACTED, PROPOSAL_SENT, NEGOTIATING, CLOSED_WON, CLOSED_LOST
	EstimatedValue float64    `json:"estimated_value" gorm:"default:0"`
	Notes          string     `json:"notes" gorm:"type:text"`
	LastContact    *time.Time `json:"last_contact"`
	IsDeleted      bool       `json:"-" gorm:"default:false"`
}

// FranchiseStatuses is the set of valid pipeline states, used by the
// validators.
var FranchiseStatuses = []string{
	LeadNew, LeadContacted, LeadProposalSent, LeadNegotiating, LeadClosedWon, LeadClosedLost,
}
