package mysql

import (
	"context"
	"database/sql"

	"local_travel/internal/domain"
)

type DestinationRepo struct{ db *sql.DB }

func NewDestinationRepo(db *sql.DB) *DestinationRepo { return &DestinationRepo{db: db} }

func (r *DestinationRepo) Put(ctx context.Context, d domain.Destination) error {
	var createdAt any
	if !d.CreatedAt.IsZero() {
		createdAt = d.CreatedAt
	}
	_, err := r.db.ExecContext(ctx, upsertDestinationSQL,
		d.ID, d.Name, d.Category, d.Image, d.Rating, d.ReviewCount,
		d.Description, d.Location, d.Coords.Lat, d.Coords.Lng,
		d.Price, d.BestTime, d.Weather, createdAt,
	)
	return err
}

func (r *DestinationRepo) Get(ctx context.Context, id string) (domain.Destination, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectDestinationCols+` FROM destinations WHERE id = ?`, id)
	d, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return domain.Destination{}, domain.ErrNotFound
	}
	return d, err
}

func (r *DestinationRepo) List(ctx context.Context, q domain.DestinationQuery) ([]domain.Destination, error) {
	query := `SELECT ` + selectDestinationCols + ` FROM destinations WHERE 1=1`
	var args []any
	if q.Category != "" && q.Category != "all" {
		query += ` AND category = ?`
		args = append(args, q.Category)
	}
	if q.Search != "" {
		query += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		needle := "%" + lowerLike(q.Search) + "%"
		args = append(args, needle, needle)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DestinationRepo) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	res, err := r.db.ExecContext(ctx, updateDestinationRatingSQL, rating, count, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// the row may exist with identical values; only report missing rows
		if exists, err := r.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *DestinationRepo) ReplaceAll(ctx context.Context, ds []domain.Destination) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM destinations`); err != nil {
		return err
	}
	for _, d := range ds {
		var createdAt any
		if !d.CreatedAt.IsZero() {
			createdAt = d.CreatedAt
		}
		if _, err := tx.ExecContext(ctx, upsertDestinationSQL,
			d.ID, d.Name, d.Category, d.Image, d.Rating, d.ReviewCount,
			d.Description, d.Location, d.Coords.Lat, d.Coords.Lng,
			d.Price, d.BestTime, d.Weather, createdAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *DestinationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n)
	return n, err
}

func (r *DestinationRepo) exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM destinations WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func scanDestination(row rowScanner) (domain.Destination, error) {
	var d domain.Destination
	err := row.Scan(
		&d.ID, &d.Name, &d.Category, &d.Image, &d.Rating, &d.ReviewCount,
		&d.Description, &d.Location, &d.Coords.Lat, &d.Coords.Lng,
		&d.Price, &d.BestTime, &d.Weather, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}
