package targeting

import "encoding/json"

// CreateGeoZoneRequest represents a request to create a geo zone
type CreateGeoZoneRequest struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Boundary json.RawMessage `json:"boundary" validate:"required"`
}

// UpdateGeoZoneRequest represents a request to update a geo zone
type UpdateGeoZoneRequest struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Boundary json.RawMessage `json:"boundary" validate:"required"`
}
