package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Prajnahr-rao/green-volt-app/internal/testutil"
)

func TestPreflightRequest(t *testing.T) {
	app := testutil.NewApp(t)

	req := httptest.NewRequest("OPTIONS", "/products", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("preflight request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want reflected origin", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
	}
}

func TestCorsHeadersOnSimpleRequest(t *testing.T) {
	app := testutil.NewApp(t)

	req := httptest.NewRequest("GET", "/products", nil)
	req.Header.Set("Origin", "http://another.example")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://another.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want reflected origin", got)
	}
}

func TestErrorHandlerShape(t *testing.T) {
	app := testutil.NewApp(t)

	req := httptest.NewRequest("PUT", "/products/999", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	m := testutil.DecodeMap(t, resp)
	if _, ok := m["error"]; !ok {
		t.Errorf("error key missing from failure response: %v", m)
	}
}
