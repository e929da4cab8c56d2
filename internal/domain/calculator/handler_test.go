package calculator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService())
	e := echo.New()
	return h, e
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Anthropometry(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"weight_kg":20,"height_cm":110}`)
	if err := h.Anthropometry(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var res AnthropometryResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.BMI == nil || res.BSAMosteller == nil {
		t.Error("expected BMI and BSA in response")
	}
}

func TestHandler_FluidPlan_PendingWithoutWeight(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{}`)
	if err := h.FluidPlan(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var res PendingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Status != "pending" {
		t.Errorf("status = %q, want pending", res.Status)
	}
}

func TestHandler_Score(t *testing.T) {
	h, e := newTestHandler()
	body := `{"selection":{
		"frecuencia_respiratoria":"menor_40",
		"sibilancias":"ausentes",
		"retraccion":"ausente",
		"cianosis":"ausente",
		"conciencia":"normal"}}`
	c, rec := postJSON(e, body)
	c.SetParamNames("rubric")
	c.SetParamValues("tal")
	if err := h.Score(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var res struct {
		Score    int    `json:"score"`
		Severity string `json:"severity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Score != 0 || res.Severity != "leve" {
		t.Errorf("score = %d severity = %q, want 0 leve", res.Score, res.Severity)
	}
}

func TestHandler_Score_IncompleteIsPending(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"selection":{"cianosis":"ausente"}}`)
	c.SetParamNames("rubric")
	c.SetParamValues("tal")
	if err := h.Score(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res PendingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Status != "pending" {
		t.Errorf("status = %q, want pending", res.Status)
	}
}

func TestHandler_Score_UnknownRubric(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"selection":{}}`)
	c.SetParamNames("rubric")
	c.SetParamValues("silverman")
	err := h.Score(c)
	if err == nil {
		t.Fatal("expected error for unknown rubric")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestHandler_Score_UnknownCriterion(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"selection":{"color_piel":"normal"}}`)
	c.SetParamNames("rubric")
	c.SetParamValues("tal")
	if err := h.Score(c); err == nil {
		t.Error("expected error for unknown criterion")
	}
}

func TestHandler_RubricCriteria(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("rubric")
	c.SetParamValues("wood_downes")
	if err := h.RubricCriteria(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var def struct {
		Code     string `json:"code"`
		Criteria []struct {
			Code string `json:"code"`
		} `json:"criteria"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &def); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if def.Code != "wood_downes" || len(def.Criteria) != 5 {
		t.Errorf("rubric %q with %d criteria, want wood_downes with 5", def.Code, len(def.Criteria))
	}
}

func TestHandler_RubricCriteria_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("rubric")
	c.SetParamValues("silverman")
	if err := h.RubricCriteria(c); err == nil {
		t.Error("expected error for unknown rubric")
	}
}

func TestHandler_BloodPressure(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"systolic":130,"diastolic":85,"age_months":120}`)
	if err := h.BloodPressure(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res struct {
		Classification string `json:"classification"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Classification != "HTA Estadio 2" {
		t.Errorf("classification = %q, want HTA Estadio 2", res.Classification)
	}
}
