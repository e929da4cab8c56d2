package patient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func ptrFloat(f float64) *float64 { return &f }

func TestPatientJSONOmitsEmptyOptionals(t *testing.T) {
	p := Patient{
		ID:          uuid.New(),
		MRN:         "MRN-001",
		GivenName:   "Ana",
		FamilyName:  "Pérez",
		DateOfBirth: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		Sex:         "F",
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"guardian_name", "weight_kg", "height_cm", "discharged_at"} {
		if _, present := m[key]; present {
			t.Errorf("expected %q to be omitted when unset", key)
		}
	}
}

func TestPatientActive(t *testing.T) {
	p := Patient{}
	if !p.Active() {
		t.Error("patient without discharge date should be active")
	}
	now := time.Now()
	p.DischargedAt = &now
	if p.Active() {
		t.Error("discharged patient should not be active")
	}
}

func TestPatientIntakeMeasurements(t *testing.T) {
	p := Patient{WeightKg: ptrFloat(14.5), HeightCm: ptrFloat(95)}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Patient
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.WeightKg == nil || *decoded.WeightKg != 14.5 {
		t.Error("weight not preserved")
	}
	if decoded.HeightCm == nil || *decoded.HeightCm != 95 {
		t.Error("height not preserved")
	}
}
