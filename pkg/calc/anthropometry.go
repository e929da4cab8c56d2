// Package calc implements the bedside clinical calculation engine:
// anthropometric derivations, nutritional indicator selection, pediatric
// maintenance fluid planning, respiratory severity scores and blood pressure
// staging. Every function is a pure computation over its arguments; the
// package holds no state and performs no I/O. Missing or non-positive
// measurements yield "not computed" results rather than errors, so callers
// can keep an input form in a pending state.
package calc

import (
	"math"
	"time"
)

// BSAFormula identifies which body-surface-area formula produced a result.
// Mosteller and DuBois are used at different call sites (fluid planning vs.
// anthropometric entry) and are not interchangeable: their results differ
// and swapping one for the other would change downstream dosing output.
type BSAFormula string

const (
	BSAMosteller BSAFormula = "mosteller"
	BSADuBois    BSAFormula = "dubois"
)

// BSAResult is a body surface area tagged with the formula that produced it.
type BSAResult struct {
	ValueM2     float64    `json:"value_m2"`
	Formula     BSAFormula `json:"formula"`
	FormulaText string     `json:"formula_text"`
}

// BMI returns weight(kg) / height(m)². ok is false when either input is
// non-positive; the value is then meaningless and must not be displayed.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	hm := heightCm / 100
	return weightKg / (hm * hm), true
}

// BSA computes body surface area in m² using the requested formula.
// Returns nil when either input is non-positive.
func BSA(formula BSAFormula, weightKg, heightCm float64) *BSAResult {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	switch formula {
	case BSAMosteller:
		return &BSAResult{
			ValueM2:     math.Sqrt(heightCm * weightKg / 3600),
			Formula:     BSAMosteller,
			FormulaText: "√(talla(cm) × peso(kg) / 3600)",
		}
	case BSADuBois:
		return &BSAResult{
			ValueM2:     0.007184 * math.Pow(weightKg, 0.425) * math.Pow(heightCm, 0.725),
			Formula:     BSADuBois,
			FormulaText: "0.007184 × peso(kg)^0.425 × talla(cm)^0.725",
		}
	default:
		return nil
	}
}

// AgeBand buckets age for nutritional indicator selection.
type AgeBand string

const (
	BandInfant           AgeBand = "infant"            // < 12 months
	BandToddlerPreschool AgeBand = "toddler_preschool" // 1 to < 5 years
	BandSchoolAge        AgeBand = "school_age"        // >= 5 years
)

// BPAgeBand is the finer banding used by blood pressure staging.
type BPAgeBand string

const (
	BPBandUnderOne       BPAgeBand = "under_one"        // < 12 months
	BPBandOneToSeventeen BPAgeBand = "one_to_seventeen" // 1 to < 18 years
	BPBandAdult          BPAgeBand = "adult"            // >= 18 years
)

// AgeInMonths returns whole calendar months elapsed between dateOfBirth and
// now. Negative results (birth date in the future) clamp to 0.
func AgeInMonths(dateOfBirth, now time.Time) int {
	months := (now.Year()-dateOfBirth.Year())*12 + int(now.Month()) - int(dateOfBirth.Month())
	if now.Day() < dateOfBirth.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// NutritionalAgeBand maps an age in months to the band driving growth
// indicator selection.
func NutritionalAgeBand(ageMonths int) AgeBand {
	switch {
	case ageMonths < 12:
		return BandInfant
	case ageMonths < 60:
		return BandToddlerPreschool
	default:
		return BandSchoolAge
	}
}

// BloodPressureAgeBand maps an age in months to the band used by the blood
// pressure percentile classifier.
func BloodPressureAgeBand(ageMonths int) BPAgeBand {
	switch {
	case ageMonths < 12:
		return BPBandUnderOne
	case ageMonths < 216:
		return BPBandOneToSeventeen
	default:
		return BPBandAdult
	}
}
