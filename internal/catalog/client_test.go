package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const testAPIKey = "test-key"

// Mock server responses, shaped like the real API
const (
	mockCategoriesResponse = `[{"Category":"Succulent"},{"Category":"Fern"},{"Category":"Flower"}]`
	mockPlantsResponse     = `[{"id":"53417c12-4824-5995-8ad8-c5b2e8e5f9a2","Common name":["Boston fern"],"Latin name":"Nephrolepis exaltata","Family":"Polypodiaceae"},{"id":"a9a5c6b8-2b8a-5e6f-9b1e-7e0f7b1a3c44","Common name":["Maidenhair fern"],"Latin name":"Adiantum raddianum"}]`
)

// newTestServer returns a server that checks the RapidAPI headers and
// routes the two catalog endpoints.
func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderAPIKey) != testAPIKey || r.Header.Get(HeaderHost) != DefaultHost {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(RequestConfig{BaseURL: server.URL, APIKey: testAPIKey}, server.Client())
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(RequestConfig{APIKey: "k"}, nil)
	cfg := client.Config()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %s, want %s", cfg.Host, DefaultHost)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
	if client.doer == nil {
		t.Error("doer should not be nil")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient(RequestConfig{BaseURL: "http://localhost:8080/"}, nil)

	if got := client.CategoriesURL(); got != "http://localhost:8080/categories" {
		t.Errorf("CategoriesURL() = %s", got)
	}
}

func TestCategoryURL(t *testing.T) {
	client := NewClient(RequestConfig{BaseURL: "http://api.test"}, nil)

	tests := []struct {
		name     string
		category string
		expected string
	}{
		{"plain name", "Fern", "http://api.test/category/Fern"},
		{"space", "Cactus & Succulent", "http://api.test/category/Cactus%20&%20Succulent"},
		{"slash stays in one segment", "Palm/Tree", "http://api.test/category/Palm%2FTree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.CategoryURL(tt.category); got != tt.expected {
				t.Errorf("CategoryURL(%q) = %s, want %s", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCategories_Success(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Request method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/categories" {
			t.Errorf("Request path = %s, want /categories", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockCategoriesResponse))
	})

	categories, err := newTestClient(server).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v, want nil", err)
	}

	want := []string{"Succulent", "Fern", "Flower"}
	if len(categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(categories), len(want))
	}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("categories[%d] = %s, want %s", i, categories[i].Name, name)
		}
	}
}

func TestPlantsByCategory_Success(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/category/Fern" {
			t.Errorf("Request path = %s, want /category/Fern", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockPlantsResponse))
	})

	items, err := newTestClient(server).PlantsByCategory(context.Background(), "Fern")
	if err != nil {
		t.Fatalf("PlantsByCategory() error = %v, want nil", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "53417c12-4824-5995-8ad8-c5b2e8e5f9a2" {
		t.Errorf("items[0].ID = %s", items[0].ID)
	}
	if v, _ := items[1].Field("Latin name"); v != "Adiantum raddianum" {
		t.Errorf("items[1] Latin name = %v", v)
	}
}

func TestPlantsByCategory_EscapedPath(t *testing.T) {
	var gotPath string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[]`))
	})

	items, err := newTestClient(server).PlantsByCategory(context.Background(), "Hanging plant")
	if err != nil {
		t.Fatalf("PlantsByCategory() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
	if gotPath != "/category/Hanging%20plant" {
		t.Errorf("escaped path = %s, want /category/Hanging%%20plant", gotPath)
	}
}

func TestCategories_AuthFailure(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	client := NewClient(RequestConfig{BaseURL: server.URL, APIKey: "wrong"}, server.Client())

	_, err := client.Categories(context.Background())
	if err == nil {
		t.Fatal("Categories() should return error for auth failure")
	}
	if !IsAuthError(err) {
		t.Errorf("Categories() error should be auth error, got %T: %v", err, err)
	}
}

func TestCategories_HTTPError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newTestClient(server).Categories(context.Background())
	if !IsHTTPError(err) {
		t.Fatalf("Categories() error should be HTTP error, got %T: %v", err, err)
	}

	var catErr *CatalogError
	if !errors.As(err, &catErr) || catErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %v, want 500", catErr)
	}
}

func TestCategories_InvalidJSON(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not valid JSON at all"))
	})

	_, err := newTestClient(server).Categories(context.Background())
	if !IsParseError(err) {
		t.Errorf("Categories() error should be parse error, got %T: %v", err, err)
	}
}

func TestCategories_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(RequestConfig{BaseURL: baseURL, APIKey: testAPIKey}, nil)
	_, err := client.Categories(context.Background())

	if err == nil {
		t.Fatal("Categories() should return error for closed server")
	}
	if !IsNetworkError(err) {
		t.Errorf("Categories() error should be network error, got %T: %v", err, err)
	}
}

func TestPlantsByCategory_Canceled(t *testing.T) {
	release := make(chan struct{})
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := newTestClient(server).PlantsByCategory(ctx, "Fern")
	if !IsCanceled(err) {
		t.Errorf("PlantsByCategory() error should be canceled, got %T: %v", err, err)
	}
}

func TestPlantsByCategory_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := NewClient(RequestConfig{
		BaseURL: server.URL,
		APIKey:  testAPIKey,
		Timeout: 20 * time.Millisecond,
	}, server.Client())

	_, err := client.PlantsByCategory(context.Background(), "Fern")
	if !IsNetworkError(err) {
		t.Fatalf("PlantsByCategory() error should be network error, got %T: %v", err, err)
	}

	var catErr *CatalogError
	if errors.As(err, &catErr) && catErr.Type != ErrTypeTimeout {
		t.Errorf("Type = %v, want %v", catErr.Type, ErrTypeTimeout)
	}
}

func TestHeadersSentOnEveryRequest(t *testing.T) {
	var count atomic.Int32
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		if len(r.Header.Values(HeaderAPIKey)) != 1 {
			t.Errorf("expected exactly one %s header", HeaderAPIKey)
		}
		if r.URL.Path == "/categories" {
			w.Write([]byte(mockCategoriesResponse))
			return
		}
		w.Write([]byte(mockPlantsResponse))
	})

	client := newTestClient(server)
	ctx := context.Background()
	if _, err := client.Categories(ctx); err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	for _, name := range []string{"Fern", "Succulent"} {
		if _, err := client.PlantsByCategory(ctx, name); err != nil {
			t.Fatalf("PlantsByCategory(%q) error = %v", name, err)
		}
	}

	if count.Load() != 3 {
		t.Errorf("server saw %d authorized requests, want 3", count.Load())
	}
}

func BenchmarkPlantsByCategory(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockPlantsResponse))
	}))
	defer server.Close()

	client := NewClient(RequestConfig{BaseURL: server.URL}, server.Client())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		client.PlantsByCategory(ctx, "Fern")
	}
}
