package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/ifeoluwa-adewoyin/inventory-management/docs"
	api "github.com/ifeoluwa-adewoyin/inventory-management/internal/http"
)

func getSwagger(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSwaggerUIServed(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	w := getSwagger(r, "/swagger/index.html")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "swagger-ui") {
		t.Error("expected the Swagger UI page")
	}
}

func TestSwaggerDocServed(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	w := getSwagger(r, "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"Inventory Management API"`) {
		t.Error("expected the API title in the document")
	}
	for _, path := range []string{`"/items"`, `"/items/{id}/adjust"`, `"/stats"`, `"/alerts/low-stock"`} {
		if !strings.Contains(body, path) {
			t.Errorf("expected %s in the document", path)
		}
	}
}
