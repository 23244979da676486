// Package testutil provides testing utilities for the catalog client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// BasePath is the path prefix the mock serves, mirroring the public catalog.
const BasePath = "/api/v2"

// MockRecord describes a record the mock catalog serves.
type MockRecord struct {
	Name           string
	Types          []string
	Abilities      []string
	Stats          map[string]int
	Moves          []string
	BaseExperience int
}

// MockCatalog is a configurable mock PokeAPI server for testing.
type MockCatalog struct {
	server *httptest.Server
	mu     sync.RWMutex

	order   []string
	records map[string][]byte
	status  map[string]int

	// Tracking
	RequestCount      int
	Paths             []string
	LastRequestHeader http.Header
}

// NewMockCatalog creates a new mock catalog server.
func NewMockCatalog() *MockCatalog {
	mock := &MockCatalog{
		records: make(map[string][]byte),
		status:  make(map[string]int),
	}
	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// URL returns the server root URL.
func (m *MockCatalog) URL() string {
	return m.server.URL
}

// BaseURL returns the catalog base URL to configure a client with.
func (m *MockCatalog) BaseURL() string {
	return m.server.URL + BasePath
}

// Close shuts down the mock server.
func (m *MockCatalog) Close() {
	m.server.Close()
}

// AddRecord registers a record, served at /pokemon/{name} and listed in
// insertion order.
func (m *MockCatalog) AddRecord(rec MockRecord) {
	m.AddRaw(rec.Name, RecordJSON(rec))
}

// AddRaw registers a raw record document under name.
func (m *MockCatalog) AddRaw(name string, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[name]; !ok {
		m.order = append(m.order, name)
	}
	m.records[name] = body
}

// SetStatus forces the response status for a record name, or for the
// listing when name is "".
func (m *MockCatalog) SetStatus(name string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[name] = status
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockCatalog) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetPaths returns the request paths in arrival order.
func (m *MockCatalog) GetPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.Paths...)
}

func (m *MockCatalog) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.RequestCount++
	m.Paths = append(m.Paths, r.URL.RequestURI())
	m.LastRequestHeader = r.Header.Clone()
	m.mu.Unlock()

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, BasePath), "/")
	switch {
	case path == "/pokemon":
		m.serveListing(w, r)
	case strings.HasPrefix(path, "/pokemon/"):
		m.serveRecord(w, strings.ToLower(strings.TrimPrefix(path, "/pokemon/")))
	default:
		http.NotFound(w, r)
	}
}

func (m *MockCatalog) serveListing(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if status, ok := m.status[""]; ok {
		w.WriteHeader(status)
		return
	}

	limit := len(m.order)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n < limit {
			limit = n
		}
	}

	type ref struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := make([]ref, 0, limit)
	for _, name := range m.order[:limit] {
		results = append(results, ref{Name: name, URL: fmt.Sprintf("%s/pokemon/%s/", m.BaseURL(), name)})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":   len(m.order),
		"results": results,
	})
}

func (m *MockCatalog) serveRecord(w http.ResponseWriter, name string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if status, ok := m.status[name]; ok {
		w.WriteHeader(status)
		return
	}

	body, ok := m.records[name]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(body)
}

// RecordJSON renders a MockRecord in the catalog's wire format.
func RecordJSON(rec MockRecord) []byte {
	type named struct {
		Name string `json:"name"`
	}
	doc := map[string]any{
		"name":            rec.Name,
		"base_experience": rec.BaseExperience,
	}

	abilities := make([]map[string]any, 0, len(rec.Abilities))
	for i, a := range rec.Abilities {
		abilities = append(abilities, map[string]any{"ability": named{a}, "slot": i + 1, "is_hidden": false})
	}
	doc["abilities"] = abilities

	types := make([]map[string]any, 0, len(rec.Types))
	for i, t := range rec.Types {
		types = append(types, map[string]any{"slot": i + 1, "type": named{t}})
	}
	doc["types"] = types

	// Stats follow the catalog's fixed order, then any extras alphabetically.
	stats := make([]map[string]any, 0, len(rec.Stats))
	seen := map[string]bool{}
	for _, name := range []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"} {
		if v, ok := rec.Stats[name]; ok {
			stats = append(stats, map[string]any{"base_stat": v, "effort": 0, "stat": named{name}})
			seen[name] = true
		}
	}
	extras := make([]string, 0)
	for name := range rec.Stats {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		stats = append(stats, map[string]any{"base_stat": rec.Stats[name], "effort": 0, "stat": named{name}})
	}
	doc["stats"] = stats

	moves := make([]map[string]any, 0, len(rec.Moves))
	for _, mv := range rec.Moves {
		moves = append(moves, map[string]any{"move": named{mv}})
	}
	doc["moves"] = moves

	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("marshal mock record: %v", err))
	}
	return data
}
