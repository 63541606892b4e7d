package advertisement

import (
	"time"

	"github.com/google/uuid"
)

// MediaType represents the kind of creative asset
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Valid reports whether m is a known media type
func (m MediaType) Valid() bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

// Advertisement is a single media creative belonging to exactly one
// campaign. Image and video assets are stored uniformly: MediaKey points at
// one blob in the media store, uploaded out-of-band by the admin console.
type Advertisement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	MediaType  MediaType `db:"media_type" json:"media_type"`
	MediaKey   string    `db:"media_key" json:"media_key"`
	MediaURL   string    `db:"-" json:"media_url,omitempty"`
	Caption    string    `db:"caption" json:"caption,omitempty"`
	LinkURL    string    `db:"link_url" json:"link_url,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
