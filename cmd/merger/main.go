package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_merge/internal/adapters/jsonfile"
	"hotel_merge/internal/adapters/observability"
	redisad "hotel_merge/internal/adapters/redis"
	"hotel_merge/internal/adapters/supplierhttp"
	"hotel_merge/internal/amenity"
	"hotel_merge/internal/app"
	"hotel_merge/internal/domain"
	"hotel_merge/internal/shared"
	mysqlrepo "hotel_merge/internal/storage/mysql"
	"hotel_merge/internal/suppliers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("merge run failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var hotelIDs, destinationIDs, output string

	cmd := &cobra.Command{
		Use:   "merger [hotel_ids] [destination_ids]",
		Short: "Fetch supplier hotel data, merge it per hotel id and write the catalog",
		Long: `merger queries every configured supplier, normalizes their records into one
hotel shape, merges records sharing an id and writes the result as a JSON array.
Filters are comma-delimited id lists; "none" or an empty value means no filter.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := shared.Load()
			log.Logger = observability.NewLogger(cfg.AppEnv)
			observability.Serve(cfg.MetricsAddr, observability.InitRegistry())

			if len(args) > 0 && hotelIDs == "" {
				hotelIDs = args[0]
			}
			if len(args) > 1 && destinationIDs == "" {
				destinationIDs = args[1]
			}
			if output != "" {
				cfg.OutputPath = output
			}
			f := app.Filter{HotelIDs: parseFilterArg(hotelIDs), DestinationIDs: parseFilterArg(destinationIDs)}
			return run(cmd.Context(), cfg, f)
		},
	}
	cmd.Flags().StringVar(&hotelIDs, "hotel-ids", "", "comma-delimited hotel ids to keep")
	cmd.Flags().StringVar(&destinationIDs, "destination-ids", "", "comma-delimited destination ids to keep")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default $OUTPUT_PATH or ./output.json)")
	return cmd
}

func parseFilterArg(s string) []string {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil
	}
	return app.ParseIDList(s)
}

func run(ctx context.Context, cfg shared.Config, f app.Filter) error {
	log.Info().
		Str("base", cfg.SupplierBaseURL).
		Int("workers", cfg.FetchWorkers).
		Str("output", cfg.OutputPath).
		Msg("merger starting")

	var catalog domain.Sink
	if cfg.MySQLDSN != "" {
		c, closeFn, err := openCatalog(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		catalog = c
	}
	sinks := outputSinks(jsonfile.New(cfg.OutputPath), catalog)

	p := app.NewPipeline(
		supplierhttp.New(cfg.FetchTimeout, cfg.FetchRPS),
		sinks,
		suppliers.Default(cfg.SupplierBaseURL, amenity.Default()),
		app.PipelineOptions{Workers: cfg.FetchWorkers, FetchTimeout: cfg.FetchTimeout},
	)
	hotels, err := p.Run(ctx, f)
	if err != nil {
		return err
	}
	log.Info().Int("hotels", len(hotels)).Msg("merge run completed")
	return nil
}

// outputSinks puts the catalog ahead of the file so a failed catalog write
// leaves the previous output file in place.
func outputSinks(file, catalog domain.Sink) app.MultiSink {
	if catalog == nil {
		return app.MultiSink{file}
	}
	return app.MultiSink{catalog, file}
}

// openCatalog wires the MySQL catalog sink, evicting API cache entries when Redis is configured.
func openCatalog(ctx context.Context, cfg shared.Config) (*app.CatalogSink, func(), error) {
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db.Ping: %w", err)
	}
	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Info().Msg("catalog database ready")

	if cfg.RedisAddr == "" {
		return app.NewCatalogSink(repo, nil), func() { db.Close() }, nil
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	return app.NewCatalogSink(repo, cache), func() { cache.Close(); db.Close() }, nil
}
