package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotel_merge/internal/adapters/observability"
	"hotel_merge/internal/domain"
)

type PipelineOptions struct {
	Workers      int           // concurrent supplier fetches; <=0 means one per supplier
	FetchTimeout time.Duration // per supplier; <=0 disables
}

type Pipeline struct {
	fetcher   domain.Fetcher
	sink      domain.Sink
	suppliers []domain.Supplier
	opts      PipelineOptions
}

func NewPipeline(f domain.Fetcher, sink domain.Sink, suppliers []domain.Supplier, opts PipelineOptions) *Pipeline {
	return &Pipeline{fetcher: f, sink: sink, suppliers: suppliers, opts: opts}
}

// Run fetches every supplier, parses and merges their records, applies the
// filter and writes the result to the sink. Any fetch failure aborts the run
// before the sink is touched.
func (p *Pipeline) Run(ctx context.Context, filter Filter) ([]domain.Hotel, error) {
	raws, err := p.fetchAll(ctx)
	if err != nil {
		observability.ObserveRun("fetch_error", err, 0)
		return nil, err
	}

	var parsed []domain.Hotel
	for i, s := range p.suppliers {
		parsed = append(parsed, p.parse(s, raws[i])...)
	}

	merged := filter.Apply(Merge(parsed))
	log.Info().
		Int("records", len(parsed)).
		Int("hotels", len(merged)).
		Msg("merge completed")

	if err := p.sink.Write(ctx, merged); err != nil {
		observability.ObserveRun("sink_error", err, 0)
		return nil, fmt.Errorf("write merged hotels: %w", err)
	}
	observability.ObserveRun("ok", nil, len(merged))
	return merged, nil
}

// fetchAll returns raw collections indexed like p.suppliers, whatever order
// the fetches complete in.
func (p *Pipeline) fetchAll(ctx context.Context) ([][]map[string]any, error) {
	out := make([][]map[string]any, len(p.suppliers))
	g, gctx := errgroup.WithContext(ctx)
	if p.opts.Workers > 0 {
		g.SetLimit(p.opts.Workers)
	}
	for i, s := range p.suppliers {
		i, s := i, s
		g.Go(func() error {
			fctx := gctx
			if p.opts.FetchTimeout > 0 {
				var cancel context.CancelFunc
				fctx, cancel = context.WithTimeout(gctx, p.opts.FetchTimeout)
				defer cancel()
			}
			recs, err := p.fetcher.Fetch(fctx, s.Endpoint())
			if err != nil {
				log.Error().Str("supplier", s.Name()).Err(err).Msg("supplier fetch failed")
				var fe *domain.FetchError
				if !errors.As(err, &fe) {
					err = &domain.FetchError{Endpoint: s.Endpoint(), Err: err}
				}
				return fmt.Errorf("supplier %s: %w", s.Name(), err)
			}
			log.Debug().Str("supplier", s.Name()).Int("records", len(recs)).Msg("supplier fetched")
			out[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// parse maps raw records through s, dropping those without a usable id.
func (p *Pipeline) parse(s domain.Supplier, raws []map[string]any) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raws))
	dropped := 0
	for i, raw := range raws {
		h, err := s.Parse(raw)
		if err != nil {
			dropped++
			observability.ObserveRecord(s.Name(), "dropped")
			log.Warn().Str("supplier", s.Name()).Int("index", i).Err(err).Msg("raw record dropped")
			continue
		}
		observability.ObserveRecord(s.Name(), "parsed")
		out = append(out, h)
	}
	if dropped > 0 {
		log.Info().Str("supplier", s.Name()).Int("dropped", dropped).Int("parsed", len(out)).Msg("supplier parsed with drops")
	}
	return out
}
