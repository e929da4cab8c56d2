package calc

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBMI(t *testing.T) {
	v, ok := BMI(30, 130)
	if !ok {
		t.Fatal("expected BMI to be computed")
	}
	want := 30 / (1.3 * 1.3)
	if !almostEqual(v, want, 1e-9) {
		t.Errorf("BMI = %v, want %v", v, want)
	}
}

func TestBMI_InsufficientInput(t *testing.T) {
	cases := []struct {
		name           string
		weight, height float64
	}{
		{"zero weight", 0, 120},
		{"zero height", 20, 0},
		{"negative weight", -1, 120},
		{"negative height", 20, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := BMI(tc.weight, tc.height); ok {
				t.Error("expected BMI to be undefined")
			}
		})
	}
}

func TestBSA_Mosteller(t *testing.T) {
	r := BSA(BSAMosteller, 20, 110)
	if r == nil {
		t.Fatal("expected a BSA result")
	}
	if r.Formula != BSAMosteller {
		t.Errorf("formula = %q, want %q", r.Formula, BSAMosteller)
	}
	if !almostEqual(r.ValueM2, 0.781, 0.001) {
		t.Errorf("Mosteller BSA = %v, want ≈ 0.781", r.ValueM2)
	}
}

func TestBSA_DuBois(t *testing.T) {
	r := BSA(BSADuBois, 20, 110)
	if r == nil {
		t.Fatal("expected a BSA result")
	}
	if r.Formula != BSADuBois {
		t.Errorf("formula = %q, want %q", r.Formula, BSADuBois)
	}
	// 0.007184 × 20^0.425 × 110^0.725
	if !almostEqual(r.ValueM2, 0.775, 0.001) {
		t.Errorf("DuBois BSA = %v, want ≈ 0.775", r.ValueM2)
	}
}

func TestBSA_FormulasDisagree(t *testing.T) {
	// The two formulas are distinct variants; both valid, not equal.
	m := BSA(BSAMosteller, 20, 110)
	d := BSA(BSADuBois, 20, 110)
	if m == nil || d == nil {
		t.Fatal("expected results from both formulas")
	}
	if m.ValueM2 == d.ValueM2 {
		t.Error("Mosteller and DuBois should produce different values")
	}
}

func TestBSA_PositiveAndIncreasing(t *testing.T) {
	for _, f := range []BSAFormula{BSAMosteller, BSADuBois} {
		base := BSA(f, 10, 100)
		if base == nil || base.ValueM2 <= 0 {
			t.Fatalf("%s: expected positive BSA", f)
		}
		heavier := BSA(f, 12, 100)
		taller := BSA(f, 10, 110)
		if heavier.ValueM2 <= base.ValueM2 {
			t.Errorf("%s: BSA should increase with weight", f)
		}
		if taller.ValueM2 <= base.ValueM2 {
			t.Errorf("%s: BSA should increase with height", f)
		}
	}
}

func TestBSA_InsufficientInput(t *testing.T) {
	if BSA(BSAMosteller, 0, 110) != nil {
		t.Error("expected nil for zero weight")
	}
	if BSA(BSADuBois, 20, 0) != nil {
		t.Error("expected nil for zero height")
	}
	if BSA(BSAFormula("haycock"), 20, 110) != nil {
		t.Error("expected nil for unknown formula")
	}
}

func TestAgeInMonths(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"same day", now, 0},
		{"eight months", time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), 8},
		{"day not yet reached", time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC), 7},
		{"one year", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), 12},
		{"five years", time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), 60},
		{"future dob clamps", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AgeInMonths(tc.dob, now); got != tc.want {
				t.Errorf("AgeInMonths = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNutritionalAgeBand(t *testing.T) {
	cases := []struct {
		months int
		want   AgeBand
	}{
		{0, BandInfant},
		{11, BandInfant},
		{12, BandToddlerPreschool},
		{59, BandToddlerPreschool},
		{60, BandSchoolAge},
		{150, BandSchoolAge},
	}
	for _, tc := range cases {
		if got := NutritionalAgeBand(tc.months); got != tc.want {
			t.Errorf("NutritionalAgeBand(%d) = %q, want %q", tc.months, got, tc.want)
		}
	}
}

func TestBloodPressureAgeBand(t *testing.T) {
	cases := []struct {
		months int
		want   BPAgeBand
	}{
		{0, BPBandUnderOne},
		{11, BPBandUnderOne},
		{12, BPBandOneToSeventeen},
		{215, BPBandOneToSeventeen},
		{216, BPBandAdult},
	}
	for _, tc := range cases {
		if got := BloodPressureAgeBand(tc.months); got != tc.want {
			t.Errorf("BloodPressureAgeBand(%d) = %q, want %q", tc.months, got, tc.want)
		}
	}
}
