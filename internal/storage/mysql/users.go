package mysql

import (
	"context"
	"database/sql"

	"local_travel/internal/domain"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Name, u.Email, u.Password, u.Avatar, u.Bio, u.Phone, u.Location,
		marshalJSON(u.Favorites), marshalJSON(u.Trip), u.CreatedAt,
	)
	if isDuplicate(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepo) Update(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx, updateUserSQL,
		u.Name, u.Avatar, u.Bio, u.Phone, u.Location,
		marshalJSON(u.Favorites), marshalJSON(u.Trip), u.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.Get(ctx, u.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectUserCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectUserCols+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrUnknownEmail
	}
	return u, err
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var favorites, trip []byte
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Avatar, &u.Bio, &u.Phone,
		&u.Location, &favorites, &trip, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Favorites = []string{}
	u.Trip = []domain.TripEntry{}
	unmarshalJSON(favorites, &u.Favorites)
	unmarshalJSON(trip, &u.Trip)
	return u, nil
}
