package targeting

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GeoZone represents a named geographic targeting boundary. The boundary
// geometry is stored opaquely; this service never interprets it.
type GeoZone struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Boundary  json.RawMessage `db:"boundary" json:"boundary"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// SkillCategory is a named competency tag used for audience targeting.
type SkillCategory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
