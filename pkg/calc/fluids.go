package calc

import (
	"fmt"
	"math"
)

// DehydrationPlan classifies the rehydration strategy by deficit severity.
type DehydrationPlan string

const (
	PlanA DehydrationPlan = "A" // mild, < 5%
	PlanB DehydrationPlan = "B" // moderate, 5–9%
	PlanC DehydrationPlan = "C" // severe, >= 10%, needs an initial bolus
)

// Dehydration is the deficit add-on of a fluid plan. TotalML is always
// DeficitML + MaintenanceML. BolusML is present only for plan C.
type Dehydration struct {
	Plan          DehydrationPlan `json:"plan"`
	DeficitML     float64         `json:"deficit_ml"`
	MaintenanceML float64         `json:"maintenance_ml"`
	TotalML       float64         `json:"total_ml"`
	BolusML       *float64        `json:"bolus_ml,omitempty"`
	BolusNote     string          `json:"bolus_note,omitempty"`
}

// BSAMaintenance is the alternative BSA-based maintenance estimate, reported
// alongside the Holliday-Segar figure, never in place of it.
type BSAMaintenance struct {
	MaintenanceMLPerDay int     `json:"maintenance_ml_per_day"`
	BSAM2               float64 `json:"bsa_m2"`
}

// FluidPlan is the complete maintenance fluid computation for one patient.
type FluidPlan struct {
	MaintenanceMLPerDay  int             `json:"maintenance_ml_per_day"`
	MaintenanceMLPerHour float64         `json:"maintenance_ml_per_hour"`
	DropsPerMinute       float64         `json:"drops_per_minute"`      // macrodrip, 20 gtt/mL
	MicrodropsPerMinute  float64         `json:"microdrops_per_minute"` // 60 µgtt/mL, numerically mL/h
	FormulaBreakdown     string          `json:"formula_breakdown"`
	BSAMethod            *BSAMaintenance `json:"bsa_method,omitempty"`
	Dehydration          *Dehydration    `json:"dehydration,omitempty"`
	InsensibleLossesML   *int            `json:"insensible_losses_ml_per_day,omitempty"`
}

// FluidInput carries the raw measurements for fluid planning. HeightCm and
// DehydrationPercent are optional; zero height disables the BSA-derived
// figures and a nil percentage disables the dehydration add-on.
type FluidInput struct {
	WeightKg           float64
	HeightCm           float64
	DehydrationPercent *float64
}

// HollidaySegar computes the tiered daily maintenance volume in mL. The
// breakdown string documents which tiers contributed. ok is false when
// weight is non-positive.
func HollidaySegar(weightKg float64) (totalML float64, breakdown string, ok bool) {
	switch {
	case weightKg <= 0:
		return 0, "", false
	case weightKg <= 10:
		totalML = weightKg * 100
		breakdown = fmt.Sprintf("%.1f kg × 100 mL = %.0f mL", weightKg, totalML)
	case weightKg <= 20:
		totalML = 1000 + (weightKg-10)*50
		breakdown = fmt.Sprintf("1000 mL + %.1f kg × 50 mL = %.0f mL", weightKg-10, totalML)
	default:
		totalML = 1500 + (weightKg-20)*20
		breakdown = fmt.Sprintf("1500 mL + %.1f kg × 20 mL = %.0f mL", weightKg-20, totalML)
	}
	return totalML, breakdown, true
}

// PlanFluids builds the full fluid therapy plan. Returns nil when weight is
// non-positive. Out-of-range dehydration percentages are computed as given;
// range validation belongs to the caller's input layer.
func PlanFluids(in FluidInput) *FluidPlan {
	totalML, breakdown, ok := HollidaySegar(in.WeightKg)
	if !ok {
		return nil
	}

	mlPerHour := totalML / 24
	plan := &FluidPlan{
		MaintenanceMLPerDay:  int(math.Round(totalML)),
		MaintenanceMLPerHour: mlPerHour,
		DropsPerMinute:       mlPerHour * 20 / 60,
		MicrodropsPerMinute:  mlPerHour,
		FormulaBreakdown:     breakdown,
	}

	// BSA-derived figures need both weight and height.
	if bsa := BSA(BSAMosteller, in.WeightKg, in.HeightCm); bsa != nil {
		plan.BSAMethod = &BSAMaintenance{
			MaintenanceMLPerDay: int(math.Round(1500 * bsa.ValueM2)),
			BSAM2:               bsa.ValueM2,
		}
		insensible := int(math.Round(bsa.ValueM2 * 400))
		plan.InsensibleLossesML = &insensible
	}

	if in.DehydrationPercent != nil {
		plan.Dehydration = dehydrationPlan(in.WeightKg, *in.DehydrationPercent, totalML)
	}

	return plan
}

func dehydrationPlan(weightKg, percent, maintenanceML float64) *Dehydration {
	d := &Dehydration{
		DeficitML:     percent / 100 * weightKg * 1000,
		MaintenanceML: maintenanceML,
	}
	d.TotalML = d.DeficitML + d.MaintenanceML

	switch {
	case percent < 5:
		d.Plan = PlanA
	case percent < 10:
		d.Plan = PlanB
	default:
		d.Plan = PlanC
		bolus := 20 * weightKg
		d.BolusML = &bolus
		d.BolusNote = "Bolo inicial 20 mL/kg a pasar en 15–30 minutos."
	}
	return d
}
