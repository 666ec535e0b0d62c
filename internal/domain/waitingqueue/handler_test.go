package waitingqueue

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jannashin6/docease/internal/platform/validate"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	return e
}

func TestJoinQueue_Success(t *testing.T) {
	h := NewHandler(newTestService(loggedInSession()))
	e := newTestEcho()
	body := `{"doctor_id":"2","preferred_dates":["2025-03-13"],"preferred_time_slots":["morning"],"reason":"Migraines"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.JoinQueue(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var item Item
	json.Unmarshal(rec.Body.Bytes(), &item)
	if item.DoctorID != "2" {
		t.Errorf("expected doctor 2, got %s", item.DoctorID)
	}
}

func TestJoinQueue_ValidationFailure(t *testing.T) {
	h := NewHandler(newTestService(loggedInSession()))
	e := newTestEcho()
	body := `{"doctor_id":"2","reason":"Migraines"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.JoinQueue(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestJoinQueue_NotLoggedIn(t *testing.T) {
	h := NewHandler(newTestService(&mockSession{}))
	e := newTestEcho()
	body := `{"doctor_id":"2","preferred_dates":["2025-03-13"],"preferred_time_slots":["morning"],"reason":"Migraines"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.JoinQueue(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestListQueue_Success(t *testing.T) {
	h := NewHandler(newTestService(loggedInSession()))
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListQueue(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string][]Item
	json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body["items"]) != 1 {
		t.Errorf("expected 1 item for user1, got %d", len(body["items"]))
	}
}

func TestLeaveQueue_Success(t *testing.T) {
	h := NewHandler(newTestService(loggedInSession()))
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.LeaveQueue(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestLeaveQueue_NotFound(t *testing.T) {
	h := NewHandler(newTestService(loggedInSession()))
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.LeaveQueue(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}
