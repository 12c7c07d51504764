package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel_merge/internal/amenity"
	"hotel_merge/internal/app"
	"hotel_merge/internal/domain"
	"hotel_merge/internal/suppliers"
)

// ---- fakes ----

type fakeFetcher struct {
	payloads map[string]string        // endpoint -> JSON array
	delays   map[string]time.Duration // simulate out-of-order completion
	fail     map[string]error
	mu       sync.Mutex
	calls    []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, endpoint string) ([]map[string]any, error) {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint)
	f.mu.Unlock()
	if d := f.delays[endpoint]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, &domain.FetchError{Endpoint: endpoint, Err: ctx.Err()}
		}
	}
	if err := f.fail[endpoint]; err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal([]byte(f.payloads[endpoint]), &out); err != nil {
		return nil, &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	return out, nil
}

type fakeSink struct {
	writes [][]domain.Hotel
}

func (s *fakeSink) Write(ctx context.Context, hs []domain.Hotel) error {
	s.writes = append(s.writes, hs)
	return nil
}

type failingSink struct{ err error }

func (s failingSink) Write(context.Context, []domain.Hotel) error { return s.err }

const base = "http://suppliers.test"

func threeSuppliers() []domain.Supplier {
	return suppliers.Default(base, amenity.Default())
}

func defaultPayloads() map[string]string {
	return map[string]string{
		base + "/acme":       `[{"Id":"iJhz","DestinationId":5432,"Name":"Beach Villas Singapore","Facilities":["Outdoor pool","Tennis Court"]},{"Name":"no id"}]`,
		base + "/paperflies": `[{"hotel_id":"iJhz","destination_id":5432,"hotel_name":"Beach Villas","details":"Surrounded by tropical gardens."}]`,
		base + "/patagonia":  `[{"id":"f8c9","destination":1122,"amenities":["Aircon"]}]`,
	}
}

// ---- tests ----

func TestPipeline_Run_MergesAndDropsInvalid(t *testing.T) {
	f := &fakeFetcher{payloads: defaultPayloads()}
	sink := &fakeSink{}
	p := app.NewPipeline(f, sink, threeSuppliers(), app.PipelineOptions{Workers: 2, FetchTimeout: time.Second})

	out, err := p.Run(context.Background(), app.Filter{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 merged hotels, got %d: %+v", len(out), out)
	}
	h := out[0]
	if h.ID != "iJhz" || h.Name != "Beach Villas Singapore" || deref(h.Description) != "Surrounded by tropical gardens." {
		t.Fatalf("unexpected merged hotel: %+v", h)
	}
	if h.Amenities == nil || len(h.Amenities.General) != 1 || h.Amenities.General[0] != "outdoor pool" {
		t.Fatalf("unexpected amenities: %+v", h.Amenities)
	}
	if out[1].ID != "f8c9" || out[1].Name != "1122" {
		t.Fatalf("unexpected second hotel: %+v", out[1])
	}
	if len(sink.writes) != 1 || len(sink.writes[0]) != 2 {
		t.Fatalf("sink should receive the merged set once, got %+v", sink.writes)
	}
}

// Paperflies finishing first must not change which record is the accumulator.
func TestPipeline_Run_OrderIndependentOfCompletion(t *testing.T) {
	payloads := map[string]string{
		base + "/acme":       `[{"Id":"x","Name":"Same len A","Latitude":1.0}]`,
		base + "/paperflies": `[{"hotel_id":"x","hotel_name":"Same len B","location":{"latitude":2.0}}]`,
		base + "/patagonia":  `[]`,
	}
	f := &fakeFetcher{payloads: payloads, delays: map[string]time.Duration{base + "/acme": 50 * time.Millisecond}}
	p := app.NewPipeline(f, &fakeSink{}, threeSuppliers(), app.PipelineOptions{})

	out, err := p.Run(context.Background(), app.Filter{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out[0].Name != "Same len A" {
		t.Fatalf("tie should keep the first supplier's name, got %q", out[0].Name)
	}
	if *out[0].Location.Latitude != 2.0 {
		t.Fatalf("later supplier's latitude should win, got %v", *out[0].Location.Latitude)
	}
}

func TestPipeline_Run_FetchErrorAbortsWithoutOutput(t *testing.T) {
	boom := &domain.FetchError{Endpoint: base + "/paperflies", Status: 503, Err: errors.New("remote 503")}
	f := &fakeFetcher{payloads: defaultPayloads(), fail: map[string]error{base + "/paperflies": boom}}
	sink := &fakeSink{}
	p := app.NewPipeline(f, sink, threeSuppliers(), app.PipelineOptions{Workers: 1})

	_, err := p.Run(context.Background(), app.Filter{})
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if len(sink.writes) != 0 {
		t.Fatalf("sink must not be written on fetch failure")
	}
}

func TestPipeline_Run_PlainErrorsBecomeFetchErrors(t *testing.T) {
	f := &fakeFetcher{payloads: defaultPayloads(), fail: map[string]error{base + "/acme": errors.New("dial tcp: refused")}}
	p := app.NewPipeline(f, &fakeSink{}, threeSuppliers(), app.PipelineOptions{})

	_, err := p.Run(context.Background(), app.Filter{})
	var fe *domain.FetchError
	if !errors.As(err, &fe) || fe.Endpoint != base+"/acme" {
		t.Fatalf("expected FetchError for acme, got %v", err)
	}
}

func TestPipeline_Run_FetchTimeout(t *testing.T) {
	f := &fakeFetcher{payloads: defaultPayloads(), delays: map[string]time.Duration{base + "/patagonia": time.Second}}
	p := app.NewPipeline(f, &fakeSink{}, threeSuppliers(), app.PipelineOptions{FetchTimeout: 20 * time.Millisecond})

	_, err := p.Run(context.Background(), app.Filter{})
	if !errors.Is(err, domain.ErrFetch) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected fetch timeout, got %v", err)
	}
}

func TestPipeline_Run_AppliesFilterAfterMerge(t *testing.T) {
	sink := &fakeSink{}
	p := app.NewPipeline(&fakeFetcher{payloads: defaultPayloads()}, sink, threeSuppliers(), app.PipelineOptions{})

	out, err := p.Run(context.Background(), app.Filter{DestinationIDs: []string{"1122"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 1 || out[0].ID != "f8c9" {
		t.Fatalf("unexpected filtered output: %+v", out)
	}
	if len(sink.writes[0]) != 1 {
		t.Fatalf("sink should receive the filtered set")
	}
}

func TestPipeline_Run_SinkError(t *testing.T) {
	sinkErr := errors.New("disk full")
	p := app.NewPipeline(&fakeFetcher{payloads: defaultPayloads()}, failingSink{err: sinkErr}, threeSuppliers(), app.PipelineOptions{})
	if _, err := p.Run(context.Background(), app.Filter{}); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestMultiSink_StopsAtFirstError(t *testing.T) {
	first, last := &fakeSink{}, &fakeSink{}
	boom := errors.New("boom")
	err := app.MultiSink{first, failingSink{err: boom}, last}.Write(context.Background(), []domain.Hotel{{ID: "a"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(first.writes) != 1 || len(last.writes) != 0 {
		t.Fatalf("unexpected writes: first=%d last=%d", len(first.writes), len(last.writes))
	}
}
