package app

import (
	"strings"

	"hotel_merge/internal/domain"
)

// Filter is a post-merge selection. An empty list places no constraint.
type Filter struct {
	HotelIDs       []string
	DestinationIDs []string
}

// ParseIDList splits a comma-delimited list, dropping blanks.
func ParseIDList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) Empty() bool { return len(f.HotelIDs) == 0 && len(f.DestinationIDs) == 0 }

func (f Filter) Query() domain.HotelsQuery {
	return domain.HotelsQuery{HotelIDs: f.HotelIDs, DestinationIDs: f.DestinationIDs}
}

// Apply keeps hotels matching both lists, preserving order.
func (f Filter) Apply(hotels []domain.Hotel) []domain.Hotel {
	if f.Empty() {
		return hotels
	}
	ids, dests := set(f.HotelIDs), set(f.DestinationIDs)
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if ids != nil {
			if _, ok := ids[h.ID]; !ok {
				continue
			}
		}
		if dests != nil {
			if _, ok := dests[h.DestinationID]; !ok {
				continue
			}
		}
		out = append(out, h)
	}
	return out
}

// key is stable for equal filters; used for cache keys.
func (f Filter) key() string {
	return strings.Join(f.HotelIDs, ",") + "|" + strings.Join(f.DestinationIDs, ",")
}

func set(xs []string) map[string]struct{} {
	if len(xs) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}
