package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"

	"hotel_merge/internal/domain"
)

const DefaultPath = "./output.json"

// Writer replaces the file at Path with one JSON array per call.
type Writer struct {
	Path string
}

func New(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{Path: path}
}

// Write is atomic: readers see either the previous file or the complete new one.
func (w *Writer) Write(ctx context.Context, hotels []domain.Hotel) error {
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(w.Path)
	if err != nil {
		return fmt.Errorf("create pending output file: %w", err)
	}
	defer func() {
		// no-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			log.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	enc := json.NewEncoder(pendingFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(hotels); err != nil {
		return fmt.Errorf("encode hotels: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace output file: %w", err)
	}
	log.Info().Str("path", w.Path).Int("hotels", len(hotels)).Msg("output written")
	return nil
}
