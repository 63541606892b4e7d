package advertisement

import "github.com/google/uuid"

// CreateAdvertisementRequest represents a request to create a creative.
// MediaKey is the object key returned by the out-of-band upload.
type CreateAdvertisementRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	MediaType  string    `json:"media_type" validate:"required,media_type"`
	MediaKey   string    `json:"media_key" validate:"required"`
	Caption    string    `json:"caption,omitempty" validate:"max=500"`
	LinkURL    string    `json:"link_url,omitempty" validate:"omitempty,url,max=2048"`
}

// UpdateAdvertisementRequest partially updates a creative. Media type and
// the owning campaign are immutable after creation.
type UpdateAdvertisementRequest struct {
	Caption  *string `json:"caption,omitempty" validate:"omitempty,max=500"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url,max=2048"`
	MediaKey *string `json:"media_key,omitempty"`
}
