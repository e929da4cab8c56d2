// Package ward tracks wards, their beds and which patient occupies
// which bed.
package ward

import (
	"time"

	"github.com/google/uuid"
)

// Bed statuses.
const (
	BedAvailable   = "available"
	BedOccupied    = "occupied"
	BedMaintenance = "maintenance"
)

// Ward maps to the ward table.
type Ward struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Floor     int       `db:"floor" json:"floor"`
	Capacity  int       `db:"capacity" json:"capacity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Bed maps to the bed table.
type Bed struct {
	ID        uuid.UUID `db:"id" json:"id"`
	WardID    uuid.UUID `db:"ward_id" json:"ward_id"`
	Code      string    `db:"code" json:"code"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Assignment maps to the bed_assignment table. ReleasedAt is nil while
// the patient still occupies the bed.
type Assignment struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	BedID      uuid.UUID  `db:"bed_id" json:"bed_id"`
	PatientID  uuid.UUID  `db:"patient_id" json:"patient_id"`
	AssignedAt time.Time  `db:"assigned_at" json:"assigned_at"`
	ReleasedAt *time.Time `db:"released_at" json:"released_at,omitempty"`
}

// Occupancy summarizes bed usage for one ward.
type Occupancy struct {
	WardID      uuid.UUID `json:"ward_id"`
	TotalBeds   int       `json:"total_beds"`
	Occupied    int       `json:"occupied"`
	Available   int       `json:"available"`
	Maintenance int       `json:"maintenance"`
}
