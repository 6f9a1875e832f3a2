// Package testutil wires a complete application over an in-memory
// SQLite database for handler tests.
package testutil

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Prajnahr-rao/green-volt-app/internal/database"
	"github.com/Prajnahr-rao/green-volt-app/internal/locations"
	"github.com/Prajnahr-rao/green-volt-app/internal/products"
	"github.com/Prajnahr-rao/green-volt-app/internal/router"
	"github.com/Prajnahr-rao/green-volt-app/internal/services"
	"github.com/Prajnahr-rao/green-volt-app/internal/users"
)

// NewApp returns a fiber app with all routes registered against a fresh
// in-memory database. A single connection keeps :memory: stable across
// queries.
func NewApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	database.Reset(db)

	app := router.NewApp()
	app.Use(router.CorsMiddleware(""))
	r := &router.Router{
		UserHandler:     users.NewHandler(users.NewRepository(db)),
		ProductHandler:  products.NewHandler(products.NewRepository(db)),
		ServiceHandler:  services.NewHandler(services.NewRepository(db)),
		LocationHandler: locations.NewHandler(locations.NewRepository(db)),
	}
	r.RegisterRoutes(app)
	return app
}

// Do sends a JSON request through the app and returns the response.
func Do(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// DecodeMap reads the response body as a JSON object.
func DecodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return m
}

// DecodeList reads the response body as a JSON array of objects.
func DecodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var list []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return list
}
