package app

import (
	"context"

	"hotel_merge/internal/domain"
)

// MultiSink writes to each sink in order and stops at the first error.
type MultiSink []domain.Sink

func (m MultiSink) Write(ctx context.Context, hotels []domain.Hotel) error {
	for _, s := range m {
		if err := s.Write(ctx, hotels); err != nil {
			return err
		}
	}
	return nil
}

// CatalogSink stores the merged catalog in the repository and evicts cached
// reads so the API serves the new snapshot.
type CatalogSink struct {
	repo  domain.HotelRepository
	cache domain.Cache
}

func NewCatalogSink(r domain.HotelRepository, c domain.Cache) *CatalogSink {
	return &CatalogSink{repo: r, cache: c}
}

func (s *CatalogSink) Write(ctx context.Context, hotels []domain.Hotel) error {
	if err := s.repo.ReplaceHotels(ctx, hotels); err != nil {
		return err
	}
	if s.cache != nil {
		for _, h := range hotels {
			_ = s.cache.Del(ctx, hotelKey(h.ID))
		}
		_ = s.cache.Del(ctx, listKey(Filter{}))
	}
	return nil
}
