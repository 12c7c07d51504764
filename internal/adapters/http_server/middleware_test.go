package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func observedRouter(buf *bytes.Buffer) http.Handler {
	r := chi.NewRouter()
	r.Use(Observe(zerolog.New(buf)))
	r.Get("/v1/hotels", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("[]")) })
	r.Get("/v1/hotels/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })
	return r
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return m
}

func TestObserve_LogsListFilter(t *testing.T) {
	var buf bytes.Buffer
	h := observedRouter(&buf)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/hotels?hotel_ids=iJhz,+SjyX&destination_ids=5432", nil))

	m := lastLogLine(t, &buf)
	if m["route"] != "/v1/hotels" || m["status"] != float64(200) || m["bytes"] != float64(2) {
		t.Fatalf("unexpected access fields: %v", m)
	}
	if diff := cmp.Diff([]any{"iJhz", "SjyX"}, m["hotel_ids"]); diff != "" {
		t.Fatalf("hotel_ids (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"5432"}, m["destination_ids"]); diff != "" {
		t.Fatalf("destination_ids (-want +got):\n%s", diff)
	}
}

func TestObserve_LogsHotelIDAndRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	h := observedRouter(&buf)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/hotels/f8c9", nil))

	m := lastLogLine(t, &buf)
	if m["route"] != "/v1/hotels/{id}" || m["hotel_id"] != "f8c9" || m["status"] != float64(404) {
		t.Fatalf("unexpected fields: %v", m)
	}
	if _, ok := m["hotel_ids"]; ok {
		t.Fatalf("no filter was given, got %v", m["hotel_ids"])
	}
}
