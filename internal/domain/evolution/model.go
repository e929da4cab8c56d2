// Package evolution records daily clinical evolution notes with vital
// signs and anthropometric measurements.
package evolution

import (
	"time"

	"github.com/google/uuid"
)

// Evolution maps to the evolution table. BMI is derived from weight and
// height at write time, never accepted from the client.
type Evolution struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient_id"`
	Note         string    `db:"note" json:"note"`
	WeightKg     *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	HeightCm     *float64  `db:"height_cm" json:"height_cm,omitempty"`
	BMI          *float64  `db:"bmi" json:"bmi,omitempty"`
	TemperatureC *float64  `db:"temperature_c" json:"temperature_c,omitempty"`
	HeartRate    *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	RespRate     *int      `db:"resp_rate" json:"resp_rate,omitempty"`
	SpO2         *int      `db:"spo2" json:"spo2,omitempty"`
	SystolicBP   *float64  `db:"systolic_bp" json:"systolic_bp,omitempty"`
	DiastolicBP  *float64  `db:"diastolic_bp" json:"diastolic_bp,omitempty"`
	RecordedAt   time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
