package domain

import "context"

// Supplier maps one supplier's raw payload shape onto the canonical Hotel.
type Supplier interface {
	Name() string
	// Endpoint is where the supplier's raw collection lives; retrieval is the Fetcher's job.
	Endpoint() string
	// Parse is pure: no I/O, no shared state.
	Parse(raw map[string]any) (Hotel, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) ([]map[string]any, error)
}

// Sink persists the final merged catalog.
type Sink interface {
	Write(ctx context.Context, hotels []Hotel) error
}

type HotelRepository interface {
	// Write path
	ReplaceHotels(ctx context.Context, hotels []Hotel) error

	// Read paths
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context, q HotelsQuery) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// HotelsQuery selects hotels by id and destination; empty lists mean "any".
type HotelsQuery struct {
	HotelIDs       []string
	DestinationIDs []string
}
