// Package pg implementa los repositorios sobre Postgres (pgx).
package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

type Store struct {
	pool *pgxpool.Pool

	users    *userRepo
	posts    *postRepo
	comments *commentRepo
	likes    *likeRepo
}

// New crea el Store con un pool pgx y verifica la conexión.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping: %w", err)
	}
	return &Store{
		pool:     pool,
		users:    &userRepo{pool: pool},
		posts:    &postRepo{pool: pool},
		comments: &commentRepo{pool: pool},
		likes:    &likeRepo{pool: pool},
	}, nil
}

func (s *Store) Users() core.UserRepository       { return s.users }
func (s *Store) Posts() core.PostRepository       { return s.posts }
func (s *Store) Comments() core.CommentRepository { return s.comments }
func (s *Store) Likes() core.LikeRepository       { return s.likes }

// Pool expone el pool pgx para collectors de métricas.
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }
func (s *Store) Close()                         { s.pool.Close() }

// mapErr traduce errores pgx a los sentinels de core.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return core.ErrConflict
	}
	return err
}
