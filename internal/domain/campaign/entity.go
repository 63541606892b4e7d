package campaign

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the campaign lifecycle status
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the closed set of allowed status edges. Completed and
// cancelled are terminal. Any status change outside this table is rejected;
// there is no direct status assignment path.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusActive, StatusCancelled},
	StatusActive:    {StatusPaused, StatusCompleted, StatusCancelled},
	StatusPaused:    {StatusActive, StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether s has no outgoing transitions
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// CanTransitionTo reports whether the edge s -> target is allowed
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Campaign represents an advertising campaign owned by an advertiser.
// Skill categories and the optional geo zone constrain its reach.
type Campaign struct {
	ID               uuid.UUID   `db:"id" json:"id"`
	Title            string      `db:"title" json:"title"`
	Description      string      `db:"description" json:"description,omitempty"`
	Budget           float64     `db:"budget" json:"budget"`
	StartDate        time.Time   `db:"start_date" json:"start_date"`
	EndDate          time.Time   `db:"end_date" json:"end_date"`
	Status           Status      `db:"status" json:"status"`
	AdvertiserID     uuid.UUID   `db:"advertiser_id" json:"advertiser_id"`
	AdvertiserEmail  string      `db:"advertiser_email" json:"advertiser_email,omitempty"`
	GeoZoneID        *uuid.UUID  `db:"geo_zone_id" json:"geo_zone_id,omitempty"`
	SkillCategoryIDs []uuid.UUID `db:"-" json:"skill_category_ids,omitempty"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
}
