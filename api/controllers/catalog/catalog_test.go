package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	catalogsvc "github.com/hemteknik/storefront-backend/internal/catalog"
)

const testInventory = `{
	"items": [
		{
			"id": 1,
			"name": "Hue Color Starter Kit",
			"brand": "Philips",
			"price": "1299",
			"available": true,
			"weight": 0.8,
			"options": [
				{ "color": "white", "quantity": 0 },
				{ "color": "blue", "quantity": 4 }
			]
		},
		{
			"id": 2,
			"name": "Acton II",
			"brand": "Marshall",
			"price": "2499",
			"available": false,
			"weight": 2.9,
			"options": [
				{ "color": "black", "quantity": 7 }
			]
		}
	]
}`

func newTestService(t *testing.T) catalogsvc.Service {
	t.Helper()
	var inv catalogsvc.Inventory
	if err := json.Unmarshal([]byte(testInventory), &inv); err != nil {
		t.Fatalf("unmarshal inventory: %v", err)
	}
	svc, err := catalogsvc.NewService(inv)
	if err != nil {
		t.Fatalf("new catalog service: %v", err)
	}
	return svc
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := newTestService(t)
	r := chi.NewRouter()
	r.Get("/api/v1/products", ProductList(svc, nil))
	r.Get("/api/v1/products/{id}", ProductDetail(svc, nil))
	r.Post("/api/v1/products/{id}/resolve", ResolveVariant(svc, nil))
	return r
}

func TestProductListSummaries(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data productListView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(envelope.Data.Products))
	}

	first := envelope.Data.Products[0]
	if first.TotalStock != 4 {
		t.Fatalf("expected totalStock 4, got %d", first.TotalStock)
	}
	if !first.Purchasable {
		t.Fatalf("expected product 1 purchasable")
	}
	if first.DisplayPrice != "1 299" {
		t.Fatalf("unexpected display price %q", first.DisplayPrice)
	}

	second := envelope.Data.Products[1]
	if second.Purchasable {
		t.Fatalf("unavailable product must not be purchasable")
	}
	if second.TotalStock != 7 {
		t.Fatalf("expected totalStock 7, got %d", second.TotalStock)
	}
}

func TestProductDetailInitialSelection(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data productDetailView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.InitialSelection["color"] != "blue" {
		t.Fatalf("expected initial selection to skip the out-of-stock option, got %v", envelope.Data.InitialSelection)
	}
	if envelope.Data.SelectedOption == nil || envelope.Data.SelectedOption.Quantity != 4 {
		t.Fatalf("expected resolved option with stock 4, got %+v", envelope.Data.SelectedOption)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestProductDetailInvalidID(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestResolveVariantMatch(t *testing.T) {
	router := newTestRouter(t)
	body := `{"selection": {"color": "blue"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/1/resolve", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data resolveView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Matched || !envelope.Data.InStock {
		t.Fatalf("expected in-stock match, got %+v", envelope.Data)
	}
	if envelope.Data.VariantKey != `{"color":"blue"}` {
		t.Fatalf("unexpected variant key %q", envelope.Data.VariantKey)
	}
}

func TestResolveVariantNoMatchIsNotAnError(t *testing.T) {
	router := newTestRouter(t)
	body := `{"selection": {"color": "red"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/1/resolve", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data resolveView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Matched || envelope.Data.SelectedOption != nil {
		t.Fatalf("expected no match, got %+v", envelope.Data)
	}
}

func TestResolveVariantEmptySelectionMatchesFirstOption(t *testing.T) {
	router := newTestRouter(t)
	body := `{"selection": {}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/1/resolve", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data resolveView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Matched {
		t.Fatalf("expected vacuous match on first option")
	}
	if envelope.Data.InStock {
		t.Fatalf("first option has no stock, inStock must be false")
	}
	if envelope.Data.VariantKey != "{}" {
		t.Fatalf("unexpected variant key %q", envelope.Data.VariantKey)
	}
}
