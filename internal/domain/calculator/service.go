package calculator

import (
	"time"

	"github.com/pedhosp/pedhosp/pkg/calc"
)

// Service runs the clinical calculators. It is stateless; the zero
// dependencies are deliberate so results depend only on the request.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Anthropometry derives every figure the input allows. Insufficient
// measurements simply leave fields absent.
func (s *Service) Anthropometry(req AnthropometryRequest) AnthropometryResult {
	var res AnthropometryResult

	if bmi, ok := calc.BMI(req.WeightKg, req.HeightCm); ok {
		res.BMI = &bmi
	}
	res.BSAMosteller = calc.BSA(calc.BSAMosteller, req.WeightKg, req.HeightCm)
	res.BSADuBois = calc.BSA(calc.BSADuBois, req.WeightKg, req.HeightCm)

	if req.DateOfBirth != nil {
		months := calc.AgeInMonths(*req.DateOfBirth, s.now())
		res.AgeMonths = &months
		band := calc.NutritionalAgeBand(months)
		res.NutritionalBand = &band
		bpBand := calc.BloodPressureAgeBand(months)
		res.BPBand = &bpBand
	}

	return res
}

// NutritionalIndicator selects the indicator for the age band and
// computes it when the measurements allow.
func (s *Service) NutritionalIndicator(req NutritionalIndicatorRequest) calc.NutritionalIndicator {
	band := calc.NutritionalAgeBand(req.AgeMonths)
	return calc.NutritionalIndicatorFor(req.WeightKg, req.HeightCm, band)
}

// FluidPlan computes the fluid therapy plan. Returns nil when weight
// is missing or non-positive.
func (s *Service) FluidPlan(req FluidPlanRequest) *calc.FluidPlan {
	in := calc.FluidInput{WeightKg: req.WeightKg}
	if req.HeightCm != nil {
		in.HeightCm = *req.HeightCm
	}
	in.DehydrationPercent = req.DehydrationPercent
	return calc.PlanFluids(in)
}

// RubricCriteria returns the full definition of a scoring rubric.
func (s *Service) RubricCriteria(code string) (*calc.RubricDefinition, error) {
	return calc.RubricByCode(calc.Rubric(code))
}

// Score evaluates a severity score. A nil result with nil error means
// the selection is still incomplete.
func (s *Service) Score(code string, selection map[string]string) (*calc.ScoreResult, error) {
	return calc.Score(calc.Rubric(code), calc.Selection(selection))
}

// BloodPressure classifies a reading against age-based percentiles.
func (s *Service) BloodPressure(req BloodPressureRequest) *calc.BPResult {
	return calc.ClassifyBloodPressure(req.Systolic, req.Diastolic, req.AgeMonths)
}
