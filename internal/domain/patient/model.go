// Package patient manages the pediatric patient census: demographic
// intake, admission data and discharge.
package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedhosp/pedhosp/pkg/calc"
)

// Patient maps to the patient table.
type Patient struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	MRN                string     `db:"mrn" json:"mrn"`
	GivenName          string     `db:"given_name" json:"given_name"`
	FamilyName         string     `db:"family_name" json:"family_name"`
	DateOfBirth        time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Sex                string     `db:"sex" json:"sex"`
	GuardianName       *string    `db:"guardian_name" json:"guardian_name,omitempty"`
	AdmissionDiagnosis *string    `db:"admission_diagnosis" json:"admission_diagnosis,omitempty"`
	WeightKg           *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	HeightCm           *float64   `db:"height_cm" json:"height_cm,omitempty"`
	AdmittedAt         time.Time  `db:"admitted_at" json:"admitted_at"`
	DischargedAt       *time.Time `db:"discharged_at" json:"discharged_at,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// Active reports whether the patient is still admitted.
func (p *Patient) Active() bool {
	return p.DischargedAt == nil
}

// AgeMonthsAt returns the patient age in whole calendar months at the
// given instant.
func (p *Patient) AgeMonthsAt(now time.Time) int {
	return calc.AgeInMonths(p.DateOfBirth, now)
}
