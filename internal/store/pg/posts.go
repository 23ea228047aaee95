package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

// ─── PostRepository ───

type postRepo struct{ pool *pgxpool.Pool }

const postColumns = `id, user_id, body, likes, COALESCE(image, ''), created_at, updated_at`

func scanPost(row pgx.Row) (*core.Post, error) {
	var p core.Post
	err := row.Scan(&p.ID, &p.UserID, &p.Body, &p.Likes, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]core.Post, error) {
	defer rows.Close()
	var out []core.Post
	for rows.Next() {
		var p core.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Body, &p.Likes, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postRepo) Create(ctx context.Context, p *core.Post) error {
	const query = `
		INSERT INTO post (user_id, body, likes, image, created_at, updated_at)
		VALUES ($1, $2, 0, NULLIF($3, ''), NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return mapErr(r.pool.QueryRow(ctx, query, p.UserID, p.Body, p.Image).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *postRepo) GetByID(ctx context.Context, id int64, withComments bool) (*core.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM post WHERE id = $1`
	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if withComments {
		comments, err := (&commentRepo{pool: r.pool}).ListByPost(ctx, id)
		if err != nil {
			return nil, err
		}
		p.Comments = comments
	}
	return p, nil
}

func (r *postRepo) ListAll(ctx context.Context) ([]core.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM post ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *postRepo) ListByUser(ctx context.Context, userID int64) ([]core.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM post WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *postRepo) Update(ctx context.Context, p *core.Post) error {
	const query = `UPDATE post SET body = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, p.ID, p.Body)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM post WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *postRepo) IncrementLikes(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE post SET likes = likes + $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ─── CommentRepository ───

type commentRepo struct{ pool *pgxpool.Pool }

func (r *commentRepo) Create(ctx context.Context, c *core.Comment) error {
	const query = `
		INSERT INTO comment (user_id, post_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return mapErr(r.pool.QueryRow(ctx, query, c.UserID, c.PostID, c.Body).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*core.Comment, error) {
	const query = `SELECT id, user_id, post_id, body, created_at, updated_at FROM comment WHERE id = $1`
	var c core.Comment
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.UserID, &c.PostID, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]core.Comment, error) {
	const query = `
		SELECT id, user_id, post_id, body, created_at, updated_at
		FROM comment WHERE post_id = $1 ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []core.Comment
	for rows.Next() {
		var c core.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comment WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ─── LikeRepository ───

type likeRepo struct{ pool *pgxpool.Pool }

func (r *likeRepo) Create(ctx context.Context, l *core.Like) error {
	const query = `
		INSERT INTO post_like (user_id, post_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	return mapErr(r.pool.QueryRow(ctx, query, l.UserID, l.PostID).Scan(&l.ID, &l.CreatedAt))
}

func (r *likeRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*core.Like, error) {
	const query = `SELECT id, user_id, post_id, created_at FROM post_like WHERE user_id = $1 AND post_id = $2`
	var l core.Like
	err := r.pool.QueryRow(ctx, query, userID, postID).Scan(&l.ID, &l.UserID, &l.PostID, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *likeRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM post_like WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
