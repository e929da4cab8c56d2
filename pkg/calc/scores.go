package calc

import "fmt"

// Rubric identifies a respiratory severity scoring rubric.
type Rubric string

const (
	// RubricTAL is the TAL score for bronchoobstruction in children under 3.
	RubricTAL Rubric = "tal"
	// RubricWoodDownes is the Wood-Downes ("pulmonary") bronchiolitis score.
	RubricWoodDownes Rubric = "wood_downes"
)

// Severity bands for the aggregate score.
type Severity string

const (
	SeverityLeve     Severity = "leve"
	SeverityModerado Severity = "moderado"
	SeverityGrave    Severity = "grave"
	SeverityCritico  Severity = "crítico"
)

// CriterionOption is one selectable category of a criterion. The point value
// travels with the option rather than being inferred from a magnitude, so a
// band boundary change can never silently re-score old selections.
type CriterionOption struct {
	Code    string `json:"code"`
	Display string `json:"display"`
	Points  int    `json:"points"`
}

// Criterion is one ordinal axis of a rubric.
type Criterion struct {
	Code    string            `json:"code"`
	Display string            `json:"display"`
	Options []CriterionOption `json:"options"`
}

// SeverityBand maps an inclusive score range to a severity with its
// interpretation and protocol recommendations.
type SeverityBand struct {
	MinScore        int      `json:"min_score"`
	MaxScore        int      `json:"max_score"`
	Severity        Severity `json:"severity"`
	Interpretation  string   `json:"interpretation"`
	Recommendations []string `json:"recommendations"`
}

// RubricDefinition is the immutable description of a scoring rubric: its five
// criteria and the severity threshold table. Definitions are package data so
// the scorer can be tested against fixed fixtures.
type RubricDefinition struct {
	Code     Rubric         `json:"code"`
	Name     string         `json:"name"`
	Target   string         `json:"target"`
	Criteria []Criterion    `json:"criteria"`
	Bands    []SeverityBand `json:"bands"`
}

// Selection maps criterion code to the chosen option code.
type Selection map[string]string

// ScoreResult is the outcome of evaluating a complete selection.
type ScoreResult struct {
	Rubric          Rubric   `json:"rubric"`
	Score           int      `json:"score"`
	Severity        Severity `json:"severity"`
	Interpretation  string   `json:"interpretation"`
	Recommendations []string `json:"recommendations"`
}

var talDefinition = RubricDefinition{
	Code:   RubricTAL,
	Name:   "Score de TAL",
	Target: "Menores de 3 años con síndrome bronquial obstructivo",
	Criteria: []Criterion{
		{
			Code:    "frecuencia_respiratoria",
			Display: "Frecuencia respiratoria",
			Options: []CriterionOption{
				{Code: "menor_40", Display: "< 40/min (< 6 m) / < 30/min (≥ 6 m)", Points: 0},
				{Code: "41_55", Display: "41–55/min (< 6 m) / 31–45/min (≥ 6 m)", Points: 1},
				{Code: "56_70", Display: "56–70/min (< 6 m) / 46–60/min (≥ 6 m)", Points: 2},
				{Code: "mayor_70", Display: "> 70/min (< 6 m) / > 60/min (≥ 6 m)", Points: 3},
			},
		},
		{
			Code:    "sibilancias",
			Display: "Sibilancias",
			Options: []CriterionOption{
				{Code: "ausentes", Display: "Ausentes", Points: 0},
				{Code: "fin_espiracion", Display: "Al final de la espiración con fonendo", Points: 1},
				{Code: "toda_espiracion", Display: "Inspiración y espiración con fonendo", Points: 2},
				{Code: "audibles", Display: "Audibles sin fonendo", Points: 3},
			},
		},
		{
			Code:    "retraccion",
			Display: "Uso de musculatura accesoria",
			Options: []CriterionOption{
				{Code: "ausente", Display: "Sin retracción", Points: 0},
				{Code: "leve", Display: "Retracción subcostal leve", Points: 1},
				{Code: "moderada", Display: "Retracción subcostal e intercostal", Points: 2},
				{Code: "universal", Display: "Retracción universal con aleteo nasal", Points: 3},
			},
		},
		{
			Code:    "cianosis",
			Display: "Cianosis",
			Options: []CriterionOption{
				{Code: "ausente", Display: "Ausente", Points: 0},
				{Code: "perioral_llanto", Display: "Perioral al llanto", Points: 1},
				{Code: "perioral_reposo", Display: "Perioral en reposo", Points: 2},
				{Code: "generalizada", Display: "Generalizada en reposo", Points: 3},
			},
		},
		{
			Code:    "conciencia",
			Display: "Estado de conciencia",
			Options: []CriterionOption{
				{Code: "normal", Display: "Vigil, reactivo", Points: 0},
				{Code: "irritable", Display: "Irritable, consolable", Points: 1},
				{Code: "deprimido", Display: "Deprimido, hiporreactivo", Points: 2},
				{Code: "letargico", Display: "Letárgico o confuso", Points: 3},
			},
		},
	},
	Bands: respiratorySeverityBands,
}

var woodDownesDefinition = RubricDefinition{
	Code:   RubricWoodDownes,
	Name:   "Score de Wood-Downes (pulmonar)",
	Target: "Gravedad de bronquiolitis",
	Criteria: []Criterion{
		{
			Code:    "cianosis",
			Display: "Cianosis",
			// This axis deliberately skips the value 1.
			Options: []CriterionOption{
				{Code: "ausente", Display: "Ausente", Points: 0},
				{Code: "perioral", Display: "Perioral con aire ambiental", Points: 2},
				{Code: "generalizada", Display: "Generalizada pese a oxígeno", Points: 3},
			},
		},
		{
			Code:    "tiraje",
			Display: "Tiraje",
			Options: []CriterionOption{
				{Code: "ausente", Display: "Ausente", Points: 0},
				{Code: "leve", Display: "Subcostal e intercostal inferior", Points: 1},
				{Code: "moderado", Display: "Previo más supraclavicular y aleteo", Points: 2},
				{Code: "intenso", Display: "Previo más supraesternal e intercostal superior", Points: 3},
			},
		},
		{
			Code:    "sibilancias",
			Display: "Sibilancias",
			Options: []CriterionOption{
				{Code: "ausentes", Display: "Ausentes", Points: 0},
				{Code: "fin_espiracion", Display: "Al final de la espiración", Points: 1},
				{Code: "toda_espiracion", Display: "En toda la espiración", Points: 2},
				{Code: "inspiracion_espiracion", Display: "Inspiratorias y espiratorias", Points: 3},
			},
		},
		{
			Code:    "frecuencia_respiratoria",
			Display: "Frecuencia respiratoria",
			Options: []CriterionOption{
				{Code: "menor_30", Display: "< 30/min", Points: 0},
				{Code: "31_45", Display: "31–45/min", Points: 1},
				{Code: "46_60", Display: "46–60/min", Points: 2},
				{Code: "mayor_60", Display: "> 60/min", Points: 3},
			},
		},
		{
			Code:    "frecuencia_cardiaca",
			Display: "Frecuencia cardíaca",
			Options: []CriterionOption{
				{Code: "menor_120", Display: "< 120/min", Points: 0},
				{Code: "120_140", Display: "120–140/min", Points: 1},
				{Code: "141_160", Display: "141–160/min", Points: 2},
				{Code: "mayor_160", Display: "> 160/min", Points: 3},
			},
		},
	},
	Bands: respiratorySeverityBands,
}

// respiratorySeverityBands covers 0..15 without gaps or overlap. The cut
// points follow the SOCHIPE hospital protocol tables in clinical use.
var respiratorySeverityBands = []SeverityBand{
	{
		MinScore:       0,
		MaxScore:       5,
		Severity:       SeverityLeve,
		Interpretation: "Obstrucción bronquial leve.",
		Recommendations: []string{
			"Manejo ambulatorio u observación según contexto.",
			"Broncodilatador según indicación y control de signos vitales.",
			"Educación a cuidadores sobre signos de alarma.",
		},
	},
	{
		MinScore:       6,
		MaxScore:       8,
		Severity:       SeverityModerado,
		Interpretation: "Obstrucción bronquial moderada.",
		Recommendations: []string{
			"Hospitalización abreviada u observación dirigida.",
			"Broncodilatador en esquema horario y reevaluación en 1 hora.",
			"Oxígeno suplementario si la saturación es menor a 93%.",
		},
	},
	{
		MinScore:       9,
		MaxScore:       11,
		Severity:       SeverityGrave,
		Interpretation: "Obstrucción bronquial grave.",
		Recommendations: []string{
			"Hospitalización.",
			"Oxígeno suplementario y broncodilatador en esquema intensivo.",
			"Considerar corticoide sistémico.",
			"Reevaluación médica continua.",
		},
	},
	{
		MinScore:       12,
		MaxScore:       15,
		Severity:       SeverityCritico,
		Interpretation: "Insuficiencia respiratoria inminente.",
		Recommendations: []string{
			"Traslado inmediato a unidad de paciente crítico.",
			"Oxígeno a alto flujo y evaluación de soporte ventilatorio.",
			"Monitorización continua.",
		},
	},
}

var rubricDefinitions = map[Rubric]*RubricDefinition{
	RubricTAL:        &talDefinition,
	RubricWoodDownes: &woodDownesDefinition,
}

// Rubrics returns the definitions of every supported rubric.
func Rubrics() []*RubricDefinition {
	return []*RubricDefinition{&talDefinition, &woodDownesDefinition}
}

// RubricByCode returns the definition for a rubric code. Unknown codes are a
// caller error.
func RubricByCode(code Rubric) (*RubricDefinition, error) {
	def, ok := rubricDefinitions[code]
	if !ok {
		return nil, fmt.Errorf("unknown rubric %q", code)
	}
	return def, nil
}

// Score evaluates a selection against a rubric. While any of the five
// criteria is unselected it returns (nil, nil): no result, not an error and
// not a zero score. Unknown rubric, criterion or option codes are contract
// violations and return an error.
func Score(code Rubric, sel Selection) (*ScoreResult, error) {
	def, err := RubricByCode(code)
	if err != nil {
		return nil, err
	}

	valid := make(map[string]bool, len(def.Criteria))
	for _, c := range def.Criteria {
		valid[c.Code] = true
	}
	for key := range sel {
		if !valid[key] {
			return nil, fmt.Errorf("rubric %q has no criterion %q", code, key)
		}
	}

	total := 0
	for _, c := range def.Criteria {
		optCode, selected := sel[c.Code]
		if !selected {
			return nil, nil
		}
		pts, err := criterionPoints(code, c, optCode)
		if err != nil {
			return nil, err
		}
		total += pts
	}

	band := bandForScore(def.Bands, total)
	return &ScoreResult{
		Rubric:          code,
		Score:           total,
		Severity:        band.Severity,
		Interpretation:  band.Interpretation,
		Recommendations: band.Recommendations,
	}, nil
}

func criterionPoints(rubric Rubric, c Criterion, optCode string) (int, error) {
	for _, opt := range c.Options {
		if opt.Code == optCode {
			return opt.Points, nil
		}
	}
	return 0, fmt.Errorf("criterion %q of rubric %q has no option %q", c.Code, rubric, optCode)
}

func bandForScore(bands []SeverityBand, score int) SeverityBand {
	for _, b := range bands {
		if score >= b.MinScore && score <= b.MaxScore {
			return b
		}
	}
	// Bands partition 0..15; a five-criterion sum cannot land outside them.
	return bands[len(bands)-1]
}
