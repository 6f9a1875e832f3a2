package products_test

import (
	"net/http"
	"testing"

	"github.com/Prajnahr-rao/green-volt-app/internal/testutil"
)

func TestCreateProduct(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		app := testutil.NewApp(t)
		resp := testutil.Do(t, app, "POST", "/products",
			`{"name":"Widget","description":"A widget","price":9.99,"stockQuantity":5,"imageUrl":"http://img","category":"Tools"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if m["id"] != "1" {
			t.Errorf("id = %v, want string \"1\"", m["id"])
		}
		if m["name"] != "Widget" || m["price"] != 9.99 || m["category"] != "Tools" {
			t.Errorf("unexpected fields: %v", m)
		}
		if m["stockQuantity"] != float64(5) {
			t.Errorf("stockQuantity = %v, want 5", m["stockQuantity"])
		}
		if _, ok := m["createdAt"]; ok {
			t.Error("product response should not carry createdAt")
		}
	})

	t.Run("optional fields omitted echo null", func(t *testing.T) {
		app := testutil.NewApp(t)
		resp := testutil.Do(t, app, "POST", "/products",
			`{"name":"Widget","price":9.99,"category":"Tools"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if v, ok := m["stockQuantity"]; !ok || v != nil {
			t.Errorf("stockQuantity = %v (present=%v), want explicit null", v, ok)
		}
		if v, ok := m["description"]; !ok || v != nil {
			t.Errorf("description = %v (present=%v), want explicit null", v, ok)
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "missing category", body: `{"name":"Widget","price":9.99}`},
			{name: "missing name", body: `{"price":9.99,"category":"Tools"}`},
			{name: "missing price", body: `{"name":"Widget","category":"Tools"}`},
			{name: "zero price counts as missing", body: `{"name":"Widget","price":0,"category":"Tools"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app := testutil.NewApp(t)
				resp := testutil.Do(t, app, "POST", "/products", tt.body)
				if resp.StatusCode != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", resp.StatusCode)
				}
				m := testutil.DecodeMap(t, resp)
				if m["error"] != "Name, price, and category are required" {
					t.Errorf("error = %v", m["error"])
				}
			})
		}
	})
}

func TestListProducts(t *testing.T) {
	app := testutil.NewApp(t)

	resp := testutil.Do(t, app, "GET", "/products", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if list := testutil.DecodeList(t, resp); len(list) != 0 {
		t.Fatalf("empty list len = %d, want 0", len(list))
	}

	testutil.Do(t, app, "POST", "/products",
		`{"name":"Widget","price":9.99,"stockQuantity":5,"category":"Tools"}`).Body.Close()

	resp = testutil.Do(t, app, "GET", "/products", "")
	list := testutil.DecodeList(t, resp)
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	p := list[0]
	if p["id"] != "1" || p["name"] != "Widget" || p["price"] != 9.99 ||
		p["stockQuantity"] != float64(5) || p["category"] != "Tools" {
		t.Errorf("unexpected product: %v", p)
	}
}

func TestUpdateProduct(t *testing.T) {
	app := testutil.NewApp(t)

	testutil.Do(t, app, "POST", "/products",
		`{"name":"Widget","price":9.99,"category":"Tools"}`).Body.Close()

	t.Run("success", func(t *testing.T) {
		resp := testutil.Do(t, app, "PUT", "/products/1",
			`{"name":"Widget v2","price":19.99,"stockQuantity":3,"category":"Tools"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if m["name"] != "Widget v2" || m["price"] != 19.99 || m["stockQuantity"] != float64(3) {
			t.Errorf("unexpected product: %v", m)
		}
	})

	t.Run("not found", func(t *testing.T) {
		resp := testutil.Do(t, app, "PUT", "/products/999",
			`{"name":"X","price":1,"category":"Y"}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		m := testutil.DecodeMap(t, resp)
		if m["error"] != "Product not found" {
			t.Errorf("error = %v", m["error"])
		}
	})

	t.Run("validation failure leaves row unchanged", func(t *testing.T) {
		resp := testutil.Do(t, app, "PUT", "/products/1", `{"name":"","price":1,"category":"Y"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		resp.Body.Close()

		resp = testutil.Do(t, app, "GET", "/products", "")
		list := testutil.DecodeList(t, resp)
		if list[0]["name"] != "Widget v2" {
			t.Errorf("name = %v, want unchanged Widget v2", list[0]["name"])
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	app := testutil.NewApp(t)

	testutil.Do(t, app, "POST", "/products",
		`{"name":"Widget","price":9.99,"category":"Tools"}`).Body.Close()

	resp := testutil.Do(t, app, "DELETE", "/products/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	m := testutil.DecodeMap(t, resp)
	if m["message"] != "Product deleted successfully" {
		t.Errorf("message = %v", m["message"])
	}

	resp = testutil.Do(t, app, "GET", "/products", "")
	if list := testutil.DecodeList(t, resp); len(list) != 0 {
		t.Errorf("list after delete len = %d, want 0", len(list))
	}

	resp = testutil.Do(t, app, "DELETE", "/products/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
}
