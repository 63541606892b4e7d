package campaign

import "github.com/google/uuid"

// CreateCampaignRequest represents a request to create a campaign.
// Dates travel as YYYY-MM-DD strings, matching the admin console wire format.
type CreateCampaignRequest struct {
	Title            string      `json:"title" validate:"required,max=255"`
	Description      string      `json:"description,omitempty" validate:"max=2000"`
	Budget           float64     `json:"budget" validate:"gte=0"`
	StartDate        string      `json:"start_date" validate:"required,datestr"`
	EndDate          string      `json:"end_date" validate:"required,datestr"`
	AdvertiserID     uuid.UUID   `json:"advertiser_id" validate:"required"`
	GeoZoneID        *uuid.UUID  `json:"geo_zone_id,omitempty"`
	SkillCategoryIDs []uuid.UUID `json:"skill_category_ids,omitempty"`
}

// UpdateCampaignRequest replaces a campaign's mutable fields. Status is not
// among them: all status changes go through the transition endpoint.
type UpdateCampaignRequest struct {
	Title            string      `json:"title" validate:"required,max=255"`
	Description      string      `json:"description,omitempty" validate:"max=2000"`
	Budget           float64     `json:"budget" validate:"gte=0"`
	StartDate        string      `json:"start_date" validate:"required,datestr"`
	EndDate          string      `json:"end_date" validate:"required,datestr"`
	GeoZoneID        *uuid.UUID  `json:"geo_zone_id,omitempty"`
	SkillCategoryIDs []uuid.UUID `json:"skill_category_ids,omitempty"`
}

// TransitionRequest requests a status transition
type TransitionRequest struct {
	Status string `json:"status" validate:"required,campaign_status"`
}

// ListFilter filters campaign listings
type ListFilter struct {
	Status       Status
	AdvertiserID *uuid.UUID
	Title        string
}
