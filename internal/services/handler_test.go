package services_test

import (
	"net/http"
	"testing"

	"github.com/Prajnahr-rao/green-volt-app/internal/testutil"
)

func TestCreateService(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		app := testutil.NewApp(t)
		resp := testutil.Do(t, app, "POST", "/services",
			`{"name":"Fast charge","description":"DC charging","price":5.5,"imageUrl":"http://img"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if m["id"] != "1" || m["name"] != "Fast charge" || m["price"] != 5.5 {
			t.Errorf("unexpected fields: %v", m)
		}
		if m["imageUrl"] != "http://img" {
			t.Errorf("imageUrl = %v", m["imageUrl"])
		}
		if _, ok := m["createdAt"]; !ok {
			t.Error("createdAt missing from service response")
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "missing name", body: `{"price":5.5}`},
			{name: "missing price", body: `{"name":"Fast charge"}`},
			{name: "zero price counts as missing", body: `{"name":"Fast charge","price":0}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app := testutil.NewApp(t)
				resp := testutil.Do(t, app, "POST", "/services", tt.body)
				if resp.StatusCode != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", resp.StatusCode)
				}
				m := testutil.DecodeMap(t, resp)
				if m["error"] != "Name and price are required" {
					t.Errorf("error = %v", m["error"])
				}
			})
		}
	})
}

func TestListServices(t *testing.T) {
	app := testutil.NewApp(t)

	testutil.Do(t, app, "POST", "/services", `{"name":"Fast charge","price":5.5}`).Body.Close()

	resp := testutil.Do(t, app, "GET", "/services", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	list := testutil.DecodeList(t, resp)
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	s := list[0]
	if s["id"] != "1" || s["name"] != "Fast charge" || s["price"] != 5.5 {
		t.Errorf("unexpected service: %v", s)
	}
	if v, ok := s["description"]; !ok || v != nil {
		t.Errorf("description = %v (present=%v), want explicit null", v, ok)
	}
}

func TestUpdateService(t *testing.T) {
	app := testutil.NewApp(t)

	testutil.Do(t, app, "POST", "/services", `{"name":"Fast charge","price":5.5}`).Body.Close()

	t.Run("success", func(t *testing.T) {
		resp := testutil.Do(t, app, "PUT", "/services/1", `{"name":"Slow charge","price":2.5}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if m["name"] != "Slow charge" || m["price"] != 2.5 {
			t.Errorf("unexpected service: %v", m)
		}
	})

	t.Run("not found", func(t *testing.T) {
		resp := testutil.Do(t, app, "PUT", "/services/999", `{"name":"X","price":1}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if m["error"] != "Service not found" {
			t.Errorf("error = %v", m["error"])
		}
	})
}

func TestDeleteService(t *testing.T) {
	app := testutil.NewApp(t)

	testutil.Do(t, app, "POST", "/services", `{"name":"Fast charge","price":5.5}`).Body.Close()

	resp := testutil.Do(t, app, "DELETE", "/services/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	m := testutil.DecodeMap(t, resp)
	if m["message"] != "Service deleted successfully" {
		t.Errorf("message = %v", m["message"])
	}

	resp = testutil.Do(t, app, "DELETE", "/services/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
}
