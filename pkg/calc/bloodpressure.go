package calc

// BPClassification labels for hypertension staging.
const (
	BPNormal        = "Normal"
	BPPrehyper      = "Prehipertensión"
	BPStage1        = "HTA Estadio 1"
	BPStage2        = "HTA Estadio 2"
	BPNotApplicable = "NoAplicable"
)

// referenceNote discloses that the classifier is a coarse bedside
// approximation, never a substitute for full percentile-curve lookup.
const referenceNote = "Aproximación lineal por edad con talla en percentil 50; " +
	"no reemplaza las tablas completas de percentiles (AAP/CDC)."

// BPReading is the per-axis result: the measured value, its approximate
// Z-score against the age-scaled P50, and a percentile band label.
type BPReading struct {
	Value           float64 `json:"value"`
	ZScore          float64 `json:"z_score"`
	PercentileLabel string  `json:"percentile_label"`
}

// BPResult is the outcome of blood pressure staging.
type BPResult struct {
	Systolic       *BPReading `json:"systolic,omitempty"`
	Diastolic      *BPReading `json:"diastolic,omitempty"`
	Classification string     `json:"classification"`
	ReferenceNote  string     `json:"reference_note"`
}

// bpReference holds the linear-in-age approximation for one axis:
// value(percentile) = base[percentile] + slope × ageYears.
type bpReference struct {
	slope   float64
	baseP50 float64
	baseP90 float64
	baseP95 float64
	baseP99 float64
}

var (
	systolicRef  = bpReference{slope: 2, baseP50: 90, baseP90: 97, baseP95: 100, baseP99: 107}
	diastolicRef = bpReference{slope: 1, baseP50: 54, baseP90: 61, baseP95: 64, baseP99: 71}
)

// ClassifyBloodPressure stages hypertension risk for ages 1 to 17 years
// (12..215 months). Outside that band it returns NoAplicable with an
// explanatory note and no readings.
func ClassifyBloodPressure(systolic, diastolic float64, ageMonths int) *BPResult {
	if BloodPressureAgeBand(ageMonths) != BPBandOneToSeventeen {
		return &BPResult{
			Classification: BPNotApplicable,
			ReferenceNote: "La clasificación por percentiles aplica entre 1 y 17 años; " +
				"fuera de ese rango use las referencias específicas de la edad.",
		}
	}

	ageYears := float64(ageMonths) / 12
	sysReading, sysStage := systolicRef.evaluate(systolic, ageYears)
	diaReading, diaStage := diastolicRef.evaluate(diastolic, ageYears)

	stage := sysStage
	if diaStage > stage {
		stage = diaStage
	}

	return &BPResult{
		Systolic:       sysReading,
		Diastolic:      diaReading,
		Classification: stageLabel(stage),
		ReferenceNote:  referenceNote,
	}
}

// stage ordinals, worse axis wins.
const (
	stageNormal = iota
	stagePrehyper
	stageOne
	stageTwo
)

func stageLabel(stage int) string {
	switch stage {
	case stagePrehyper:
		return BPPrehyper
	case stageOne:
		return BPStage1
	case stageTwo:
		return BPStage2
	default:
		return BPNormal
	}
}

func (r bpReference) evaluate(value, ageYears float64) (*BPReading, int) {
	p50 := r.baseP50 + r.slope*ageYears
	p90 := r.baseP90 + r.slope*ageYears
	p95 := r.baseP95 + r.slope*ageYears
	p99 := r.baseP99 + r.slope*ageYears

	// Approximate SD from the normal quantile of the 95th percentile.
	sd := (p95 - p50) / 1.645

	reading := &BPReading{
		Value:  value,
		ZScore: (value - p50) / sd,
	}

	var stage int
	switch {
	case value < p90:
		stage = stageNormal
		reading.PercentileLabel = "< P90"
	case value < p95:
		stage = stagePrehyper
		reading.PercentileLabel = "P90–P94"
	case value < p99:
		stage = stageOne
		reading.PercentileLabel = "P95–P98"
	default:
		stage = stageTwo
		reading.PercentileLabel = "≥ P99"
	}
	return reading, stage
}
