package calc

// Nutritional indicator types as displayed on the evolution form.
const (
	IndicatorWeightForAge    = "Peso/Edad"
	IndicatorWeightForHeight = "Peso/Talla"
	IndicatorBMI             = "IMC"
)

// NutritionalIndicator names the growth indicator that applies to a patient's
// age band. Value is nil when the indicator needs external percentile tables
// (weight-for-age) or when the required measurements are missing.
type NutritionalIndicator struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
	Note  string   `json:"note"`
}

// NutritionalIndicatorFor selects the growth indicator for the given age
// band. This is a pure dispatch on the band; no other branching.
func NutritionalIndicatorFor(weightKg, heightCm float64, band AgeBand) NutritionalIndicator {
	switch band {
	case BandInfant:
		return NutritionalIndicator{
			Type: IndicatorWeightForAge,
			Note: "Requiere tablas de percentiles peso/edad; se registra el indicador sin valor numérico.",
		}
	case BandToddlerPreschool:
		ind := NutritionalIndicator{
			Type: IndicatorWeightForHeight,
			Note: "Índice peso/talla: (peso(kg) / talla(cm)) × 100.",
		}
		if weightKg > 0 && heightCm > 0 {
			v := (weightKg / heightCm) * 100
			ind.Value = &v
		}
		return ind
	default:
		ind := NutritionalIndicator{
			Type: IndicatorBMI,
			Note: "IMC: peso(kg) / talla(m)².",
		}
		if v, ok := BMI(weightKg, heightCm); ok {
			ind.Value = &v
		}
		return ind
	}
}
