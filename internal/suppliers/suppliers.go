// Package suppliers holds one adapter per supplier payload shape. Each adapter
// names its raw keys explicitly so the mapping can be tested in isolation.
package suppliers

import (
	"strings"

	"hotel_merge/internal/amenity"
	"hotel_merge/internal/domain"
)

const DefaultBaseURL = "https://5f2be0b4ffc88500167b85a0.mockapi.io/suppliers"

// Default returns the adapters in the order their payloads are merged.
func Default(base string, norm *amenity.Normalizer) []domain.Supplier {
	base = strings.TrimRight(base, "/")
	return []domain.Supplier{
		NewAcme(base+"/acme", norm),
		NewPaperflies(base + "/paperflies"),
		NewPatagonia(base+"/patagonia", norm),
	}
}
