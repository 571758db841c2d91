package mysql

import (
	"context"
	"database/sql"

	"local_travel/internal/domain"
)

type ReviewRepo struct{ db *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID, rv.UserID, rv.DestinationID, rv.Rating, rv.Comment,
		marshalJSON(rv.HelpfulVoters), rv.CreatedAt, rv.UpdatedAt,
	)
	if isDuplicate(err) {
		return domain.ErrDuplicateReview
	}
	return err
}

func (r *ReviewRepo) Update(ctx context.Context, rv domain.Review) error {
	res, err := r.db.ExecContext(ctx, updateReviewSQL,
		rv.Rating, rv.Comment, marshalJSON(rv.HelpfulVoters), rv.UpdatedAt, rv.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.Get(ctx, rv.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReviewRepo) Get(ctx context.Context, id string) (domain.Review, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectReviewCols+` FROM reviews WHERE id = ?`, id)
	rv, err := scanReview(row)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *ReviewRepo) GetOwned(ctx context.Context, id, userID string) (domain.Review, error) {
	// one query for both existence and ownership, so a foreign review is
	// indistinguishable from a missing one
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectReviewCols+` FROM reviews WHERE id = ? AND user_id = ?`, id, userID)
	rv, err := scanReview(row)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *ReviewRepo) ListByDestination(ctx context.Context, destinationID string) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT `+selectReviewCols+` FROM reviews WHERE destination_id = ? ORDER BY created_at DESC, id DESC`,
		destinationID)
}

func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT `+selectReviewCols+` FROM reviews WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
}

func (r *ReviewRepo) FindByUserAndDestination(ctx context.Context, userID, destinationID string) (domain.Review, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectReviewCols+` FROM reviews WHERE user_id = ? AND destination_id = ?`,
		userID, destinationID)
	rv, err := scanReview(row)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *ReviewRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&n)
	return n, err
}

func (r *ReviewRepo) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT `+selectReviewCols+` FROM reviews ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(row rowScanner) (domain.Review, error) {
	var rv domain.Review
	var helpful []byte
	err := row.Scan(
		&rv.ID, &rv.UserID, &rv.DestinationID, &rv.Rating, &rv.Comment,
		&helpful, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return domain.Review{}, err
	}
	unmarshalJSON(helpful, &rv.HelpfulVoters)
	return rv, nil
}
