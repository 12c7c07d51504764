package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hotel_merge/internal/domain"
)

// insertBatch bounds placeholders per INSERT statement.
const insertBatch = 500

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the hotels table when missing.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createHotelsSQL)
	return err
}

// ReplaceHotels swaps the whole catalog in one transaction; positions keep merge order.
func (r *Repo) ReplaceHotels(ctx context.Context, hotels []domain.Hotel) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteHotelsSQL); err != nil {
		return fmt.Errorf("clear hotels: %w", err)
	}
	for start := 0; start < len(hotels); start += insertBatch {
		end := min(start+insertBatch, len(hotels))
		values := make([]string, 0, end-start)
		args := make([]any, 0, (end-start)*4) // 4 params per row
		for i, h := range hotels[start:end] {
			doc, mErr := json.Marshal(h)
			if mErr != nil {
				return fmt.Errorf("marshal hotel %s: %w", h.ID, mErr)
			}
			values = append(values, "(?,?,?,?)")
			args = append(args, h.ID, h.DestinationID, start+i, string(doc))
		}
		if _, err = tx.ExecContext(ctx, insertHotelsPrefix+strings.Join(values, ","), args...); err != nil {
			return fmt.Errorf("insert hotels: %w", err)
		}
	}
	return tx.Commit()
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var doc []byte
	if err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	var h domain.Hotel
	if err := json.Unmarshal(doc, &h); err != nil {
		return domain.Hotel{}, fmt.Errorf("decode hotel %s: %w", id, err)
	}
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	query, args := buildListQuery(q)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var h domain.Hotel
		if err := json.Unmarshal(doc, &h); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildListQuery(q domain.HotelsQuery) (string, []any) {
	var (
		where []string
		args  []any
	)
	in := func(col string, vals []string) {
		if len(vals) == 0 {
			return
		}
		where = append(where, col+" IN ("+strings.TrimSuffix(strings.Repeat("?,", len(vals)), ",")+")")
		for _, v := range vals {
			args = append(args, v)
		}
	}
	in("id", q.HotelIDs)
	in("destination_id", q.DestinationIDs)

	query := listHotelsPrefix
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	return query + " ORDER BY position", args
}
