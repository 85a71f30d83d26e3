package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProductsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProducts())
	r.GET("/api/products/:slug", GetProduct())
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestGetProducts_ListsCatalog(t *testing.T) {
	r := newProductsRouter()
	w, body := getJSON(t, r, "/api/products")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("items missing or empty: %v", body["items"])
	}
	if body["total"].(float64) != float64(len(items)) {
		t.Errorf("total = %v, items = %d", body["total"], len(items))
	}
}

func TestGetProducts_CategoryFilter(t *testing.T) {
	r := newProductsRouter()
	_, body := getJSON(t, r, "/api/products?category=gum-resins")
	items := body["items"].([]any)
	if len(items) == 0 {
		t.Fatal("expected gum resins in catalog")
	}

	_, body = getJSON(t, r, "/api/products?category=no-such-category")
	if total := body["total"].(float64); total != 0 {
		t.Errorf("unknown category: total = %v, want 0", total)
	}
}

func TestGetProducts_DatasheetFilter(t *testing.T) {
	r := newProductsRouter()

	// no product currently has a datasheet on file
	_, body := getJSON(t, r, "/api/products?datasheet=true")
	if total := body["total"].(float64); total != 0 {
		t.Errorf("datasheet=true: total = %v, want 0", total)
	}

	_, body = getJSON(t, r, "/api/products?datasheet=false")
	if len(body["items"].([]any)) == 0 {
		t.Error("datasheet=false should match the whole catalog")
	}

	w, body := getJSON(t, r, "/api/products?datasheet=maybe")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body["error"] != "invalid datasheet filter" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestGetProducts_Pagination(t *testing.T) {
	r := newProductsRouter()
	_, body := getJSON(t, r, "/api/products?page=1&limit=2")
	items := body["items"].([]any)
	if len(items) != 2 {
		t.Errorf("page size = %d, want 2", len(items))
	}
}

func TestGetProducts_SortByMOQ(t *testing.T) {
	r := newProductsRouter()
	_, body := getJSON(t, r, "/api/products?sort=moq_asc")
	items := body["items"].([]any)
	prev := -1.0
	for _, it := range items {
		moq := it.(map[string]any)["moqKg"].(float64)
		if moq < prev {
			t.Fatalf("items not sorted by moq ascending")
		}
		prev = moq
	}
}

func TestGetProduct_BySlug(t *testing.T) {
	r := newProductsRouter()
	w, body := getJSON(t, r, "/api/products/arabic-gum-grade-one")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["id2"] != "EPRD-100500" {
		t.Errorf("id2 = %v, want EPRD-100500", body["id2"])
	}
}

func TestGetProduct_UnknownSlugIs404(t *testing.T) {
	r := newProductsRouter()
	w, _ := getJSON(t, r, "/api/products/no-such-slug")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
