package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/catalog-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_TaxonomyMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: account not activated", domain.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: name is required", domain.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: role not found", domain.ErrInvalidReference), http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrRoleNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrRoleExists, http.StatusConflict},
	}

	for _, tc := range cases {
		code, body := render(t, tc.err)
		if code != tc.code {
			t.Errorf("%v: status = %d, want %d", tc.err, code, tc.code)
		}
		if success, _ := body["success"].(bool); success {
			t.Errorf("%v: success must be false", tc.err)
		}
		if msg, _ := body["message"].(string); msg == "" {
			t.Errorf("%v: missing message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsSanitized(t *testing.T) {
	code, body := render(t, errors.New("pq: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["message"])
	}
}

func TestHTTPErrorHandler_EchoErrorsKeepTheirCode(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["message"] != "Not Found" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponses(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)
	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
}
