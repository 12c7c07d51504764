package app

import (
	"context"
	"encoding/json"
	"time"

	"hotel_merge/internal/domain"
)

type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func hotelKey(id string) string { return "hotel:" + id }
func listKey(f Filter) string   { return "hotels:" + f.key() }

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := hotelKey(id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, cloneHotel(h), int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *QueryService) ListHotels(ctx context.Context, f Filter) ([]domain.Hotel, error) {
	key := listKey(f)
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	hs, err := s.repo.ListHotels(ctx, f.Query())
	if err != nil {
		return nil, err
	}
	// repo may filter coarsely; the filter is the source of truth
	hs = f.Apply(hs)

	// copy to avoid aliasing the repo's backing array
	cp := make([]domain.Hotel, len(hs))
	for i, h := range hs {
		cp[i] = cloneHotel(h)
	}

	// optional size guard
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return cp, nil
}
