package validate

import (
	"testing"

	"github.com/labstack/echo/v4"
)

type payload struct {
	Name string `validate:"required"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()
	if err := v.Validate(&payload{Name: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FailsAsHTTPError(t *testing.T) {
	v := New()
	err := v.Validate(&payload{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, ok := err.(*echo.HTTPError); !ok {
		t.Errorf("expected *echo.HTTPError, got %T", err)
	}
}
