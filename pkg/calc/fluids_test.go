package calc

import (
	"strings"
	"testing"
)

func TestHollidaySegar_Tiers(t *testing.T) {
	cases := []struct {
		weight float64
		want   float64
	}{
		{4, 400},
		{8, 800},
		{10, 1000}, // continuous at first boundary
		{15, 1250}, // 1000 + 5×50
		{20, 1500}, // continuous at second boundary
		{25, 1600}, // 1500 + 5×20
		{40, 1900},
	}
	for _, tc := range cases {
		total, breakdown, ok := HollidaySegar(tc.weight)
		if !ok {
			t.Fatalf("weight %.0f: expected a result", tc.weight)
		}
		if total != tc.want {
			t.Errorf("HollidaySegar(%.0f) = %v, want %v", tc.weight, total, tc.want)
		}
		if breakdown == "" {
			t.Errorf("weight %.0f: expected a breakdown string", tc.weight)
		}
	}
}

func TestHollidaySegar_StrictlyIncreasing(t *testing.T) {
	prev := 0.0
	for w := 0.5; w <= 40; w += 0.5 {
		total, _, ok := HollidaySegar(w)
		if !ok {
			t.Fatalf("weight %v: expected a result", w)
		}
		if total <= prev {
			t.Fatalf("total not strictly increasing at %v kg: %v <= %v", w, total, prev)
		}
		prev = total
	}
}

func TestHollidaySegar_NonPositiveWeight(t *testing.T) {
	if _, _, ok := HollidaySegar(0); ok {
		t.Error("expected no result for zero weight")
	}
	if _, _, ok := HollidaySegar(-3); ok {
		t.Error("expected no result for negative weight")
	}
}

func TestPlanFluids_MaintenanceRates(t *testing.T) {
	plan := PlanFluids(FluidInput{WeightKg: 15})
	if plan == nil {
		t.Fatal("expected a plan")
	}
	if plan.MaintenanceMLPerDay != 1250 {
		t.Errorf("maintenance = %d, want 1250", plan.MaintenanceMLPerDay)
	}
	if !almostEqual(plan.MaintenanceMLPerHour, 1250.0/24, 1e-9) {
		t.Errorf("mL/h = %v, want %v", plan.MaintenanceMLPerHour, 1250.0/24)
	}
	if !almostEqual(plan.MaintenanceMLPerHour, 52.08, 0.01) {
		t.Errorf("mL/h = %v, want ≈ 52.08", plan.MaintenanceMLPerHour)
	}
	if !almostEqual(plan.DropsPerMinute, plan.MaintenanceMLPerHour*20/60, 1e-9) {
		t.Errorf("drops/min = %v, want mL/h × 20 / 60", plan.DropsPerMinute)
	}
	if plan.MicrodropsPerMinute != plan.MaintenanceMLPerHour {
		t.Error("microdrops/min must equal mL/h")
	}
	if !strings.Contains(plan.FormulaBreakdown, "1000 mL") {
		t.Errorf("breakdown %q should document the second tier", plan.FormulaBreakdown)
	}
}

func TestPlanFluids_WithoutHeight(t *testing.T) {
	plan := PlanFluids(FluidInput{WeightKg: 15})
	if plan.BSAMethod != nil {
		t.Error("BSA method requires height")
	}
	if plan.InsensibleLossesML != nil {
		t.Error("insensible losses must be omitted, not zero, without height")
	}
}

func TestPlanFluids_BSAMethodAndInsensibleLosses(t *testing.T) {
	plan := PlanFluids(FluidInput{WeightKg: 20, HeightCm: 110})
	if plan.BSAMethod == nil {
		t.Fatal("expected BSA method with weight and height")
	}
	bsa := BSA(BSAMosteller, 20, 110)
	if !almostEqual(plan.BSAMethod.BSAM2, bsa.ValueM2, 1e-9) {
		t.Errorf("bsa = %v, want %v", plan.BSAMethod.BSAM2, bsa.ValueM2)
	}
	// 1500 × 0.7817 ≈ 1173
	if plan.BSAMethod.MaintenanceMLPerDay != 1173 {
		t.Errorf("BSA maintenance = %d, want 1173", plan.BSAMethod.MaintenanceMLPerDay)
	}
	if plan.InsensibleLossesML == nil {
		t.Fatal("expected insensible losses with height present")
	}
	// 0.7817 × 400 ≈ 313
	if *plan.InsensibleLossesML != 313 {
		t.Errorf("insensible losses = %d, want 313", *plan.InsensibleLossesML)
	}
}

func TestPlanFluids_DehydrationSevere(t *testing.T) {
	pct := 10.0
	plan := PlanFluids(FluidInput{WeightKg: 8, DehydrationPercent: &pct})
	d := plan.Dehydration
	if d == nil {
		t.Fatal("expected dehydration add-on")
	}
	if d.DeficitML != 800 {
		t.Errorf("deficit = %v, want 800", d.DeficitML)
	}
	if d.MaintenanceML != 800 {
		t.Errorf("maintenance = %v, want 800", d.MaintenanceML)
	}
	if d.TotalML != 1600 {
		t.Errorf("total = %v, want 1600", d.TotalML)
	}
	if d.Plan != PlanC {
		t.Errorf("plan = %q, want C", d.Plan)
	}
	if d.BolusML == nil || *d.BolusML != 160 {
		t.Errorf("bolus = %v, want 160", d.BolusML)
	}
}

func TestPlanFluids_DehydrationPlans(t *testing.T) {
	cases := []struct {
		pct       float64
		wantPlan  DehydrationPlan
		wantBolus bool
	}{
		{0, PlanA, false},
		{3, PlanA, false},
		{4.9, PlanA, false},
		{5, PlanB, false},
		{9.9, PlanB, false},
		{10, PlanC, true},
		{15, PlanC, true},
	}
	for _, tc := range cases {
		pct := tc.pct
		plan := PlanFluids(FluidInput{WeightKg: 12, DehydrationPercent: &pct})
		d := plan.Dehydration
		if d == nil {
			t.Fatalf("pct %v: expected dehydration add-on", tc.pct)
		}
		if d.Plan != tc.wantPlan {
			t.Errorf("pct %v: plan = %q, want %q", tc.pct, d.Plan, tc.wantPlan)
		}
		if (d.BolusML != nil) != tc.wantBolus {
			t.Errorf("pct %v: bolus present = %v, want %v", tc.pct, d.BolusML != nil, tc.wantBolus)
		}
		if !almostEqual(d.TotalML, d.DeficitML+d.MaintenanceML, 1e-9) {
			t.Errorf("pct %v: total must equal deficit + maintenance", tc.pct)
		}
	}
}

func TestPlanFluids_NoDehydrationWithoutPercent(t *testing.T) {
	plan := PlanFluids(FluidInput{WeightKg: 12})
	if plan.Dehydration != nil {
		t.Error("dehydration add-on requires a supplied percentage")
	}
}

func TestPlanFluids_NonPositiveWeight(t *testing.T) {
	if PlanFluids(FluidInput{WeightKg: 0}) != nil {
		t.Error("expected nil plan for zero weight")
	}
}
