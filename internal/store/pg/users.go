package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

type userRepo struct{ pool *pgxpool.Pool }

const userColumns = `id, uid, email, password, salt, first_name, last_name,
	is_active, is_user_confirmed, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*core.User, error) {
	var u core.User
	err := row.Scan(
		&u.ID, &u.UID, &u.Email, &u.PasswordHash, &u.Salt, &u.FirstName, &u.LastName,
		&u.IsActive, &u.IsUserConfirmed, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*core.User, error) {
	const query = `SELECT ` + userColumns + ` FROM app_user WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByUID(ctx context.Context, uid string) (*core.User, error) {
	const query = `SELECT ` + userColumns + ` FROM app_user WHERE uid = $1`
	return scanUser(r.pool.QueryRow(ctx, query, uid))
}

func (r *userRepo) Create(ctx context.Context, u *core.User) error {
	const query = `
		INSERT INTO app_user (uid, email, password, salt, first_name, last_name,
			is_active, is_user_confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		u.UID, u.Email, u.PasswordHash, u.Salt, u.FirstName, u.LastName,
		u.IsActive, u.IsUserConfirmed,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return mapErr(err)
}

func (r *userRepo) Update(ctx context.Context, u *core.User) error {
	const query = `
		UPDATE app_user
		SET password = $2, first_name = $3, last_name = $4, is_active = $5,
			is_user_confirmed = $6, last_login = $7, updated_at = NOW()
		WHERE uid = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		u.UID, u.PasswordHash, u.FirstName, u.LastName, u.IsActive,
		u.IsUserConfirmed, u.LastLogin,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}
