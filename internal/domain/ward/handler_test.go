package ward

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestHandler_CreateWard(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Pediatría A","floor":2,"capacity":6}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.CreateWard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_CreateWard_BadRequest(t *testing.T) {
	h, e := newTestHandler()
	body := `{"floor":2}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.CreateWard(c); err == nil {
		t.Error("expected error for missing required fields")
	}
}

func TestHandler_AssignAndReleaseBed(t *testing.T) {
	h, e := newTestHandler()
	w := &Ward{Name: "Pediatría A", Floor: 2, Capacity: 4}
	if err := h.svc.CreateWard(nil, w); err != nil {
		t.Fatal(err)
	}
	b := &Bed{WardID: w.ID, Code: "A-01"}
	if err := h.svc.AddBed(nil, b); err != nil {
		t.Fatal(err)
	}

	body := `{"patient_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(b.ID.String())
	if err := h.AssignBed(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec2)
	c2.SetParamNames("id")
	c2.SetParamValues(b.ID.String())
	if err := h.ReleaseBed(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec2.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec2.Code)
	}
}

func TestHandler_AssignBed_Conflict(t *testing.T) {
	h, e := newTestHandler()
	w := &Ward{Name: "Pediatría A", Floor: 2, Capacity: 4}
	if err := h.svc.CreateWard(nil, w); err != nil {
		t.Fatal(err)
	}
	b := &Bed{WardID: w.ID, Code: "A-01"}
	if err := h.svc.AddBed(nil, b); err != nil {
		t.Fatal(err)
	}
	if _, err := h.svc.AssignBed(context.Background(), b.ID, uuid.New()); err != nil {
		t.Fatal(err)
	}

	body := `{"patient_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(b.ID.String())
	err := h.AssignBed(c)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Errorf("expected 409 HTTPError, got %v", err)
	}
}

func TestHandler_WardOccupancy(t *testing.T) {
	h, e := newTestHandler()
	w := &Ward{Name: "Pediatría A", Floor: 2, Capacity: 4}
	if err := h.svc.CreateWard(nil, w); err != nil {
		t.Fatal(err)
	}
	if err := h.svc.AddBed(nil, &Bed{WardID: w.ID, Code: "A-01"}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(w.ID.String())
	if err := h.WardOccupancy(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var occ Occupancy
	if err := json.Unmarshal(rec.Body.Bytes(), &occ); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if occ.TotalBeds != 1 || occ.Available != 1 {
		t.Errorf("occupancy = %+v, want 1 total, 1 available", occ)
	}
}
