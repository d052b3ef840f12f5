package listing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gothsec/centro-digital/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBSource reads the full business collection straight from Postgres with
// pgx. The scan is deliberately unfiltered: narrowing happens in-process in
// the engine.
type DBSource struct {
	pool *pgxpool.Pool
}

func NewDBSource(pool *pgxpool.Pool) *DBSource {
	return &DBSource{pool: pool}
}

func (s *DBSource) ListAll(ctx context.Context) ([]models.Business, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, slug, description, category, department, city, address,
		       opens_at, closes_at, active, contact, location, image_url, photos,
		       created_at, updated_at
		FROM businesses
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]models.Business, 0)
	for rows.Next() {
		var (
			b        models.Business
			contact  []byte
			location []byte
			photos   []byte
		)
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Slug, &b.Description, &b.Category, &b.Department,
			&b.City, &b.Address, &b.OpensAt, &b.ClosesAt, &b.Active,
			&contact, &location, &b.ImageURL, &photos, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		if len(contact) > 0 {
			if err := json.Unmarshal(contact, &b.Contact); err != nil {
				return nil, fmt.Errorf("failed to decode contact for %s: %w", b.ID, err)
			}
		}
		if len(location) > 0 {
			b.Location = &models.Location{}
			if err := json.Unmarshal(location, b.Location); err != nil {
				return nil, fmt.Errorf("failed to decode location for %s: %w", b.ID, err)
			}
		}
		if len(photos) > 0 {
			if err := json.Unmarshal(photos, &b.Photos); err != nil {
				return nil, fmt.Errorf("failed to decode photos for %s: %w", b.ID, err)
			}
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read businesses: %w", err)
	}
	return businesses, nil
}
