// Package calculator exposes the bedside clinical calculators over
// HTTP. It carries no state: every request is computed from its own
// payload.
package calculator

import (
	"time"

	"github.com/pedhosp/pedhosp/pkg/calc"
)

// AnthropometryRequest carries the measurements for BMI, BSA and age
// band derivation. DateOfBirth is optional; without it no age bands
// are derived.
type AnthropometryRequest struct {
	WeightKg    float64    `json:"weight_kg"`
	HeightCm    float64    `json:"height_cm"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// AnthropometryResult holds whichever derivations the input allowed.
// Absent fields mean the input was insufficient for them.
type AnthropometryResult struct {
	BMI             *float64        `json:"bmi,omitempty"`
	BSAMosteller    *calc.BSAResult `json:"bsa_mosteller,omitempty"`
	BSADuBois       *calc.BSAResult `json:"bsa_dubois,omitempty"`
	AgeMonths       *int            `json:"age_months,omitempty"`
	NutritionalBand *calc.AgeBand   `json:"nutritional_band,omitempty"`
	BPBand          *calc.BPAgeBand `json:"bp_band,omitempty"`
}

// NutritionalIndicatorRequest selects and computes the nutritional
// indicator for the patient's age band.
type NutritionalIndicatorRequest struct {
	WeightKg  float64 `json:"weight_kg"`
	HeightCm  float64 `json:"height_cm"`
	AgeMonths int     `json:"age_months"`
}

// FluidPlanRequest carries the inputs of the fluid therapy planner.
type FluidPlanRequest struct {
	WeightKg           float64  `json:"weight_kg"`
	HeightCm           *float64 `json:"height_cm,omitempty"`
	DehydrationPercent *float64 `json:"dehydration_percent,omitempty"`
}

// ScoreRequest carries the option selected per criterion, keyed by
// criterion code.
type ScoreRequest struct {
	Selection map[string]string `json:"selection"`
}

// BloodPressureRequest carries one blood pressure reading.
type BloodPressureRequest struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
	AgeMonths int     `json:"age_months"`
}

// PendingResponse is returned when the input is valid but not yet
// sufficient to produce a result.
type PendingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func pending(message string) PendingResponse {
	return PendingResponse{Status: "pending", Message: message}
}
