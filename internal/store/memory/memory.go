// Package memory implementa los repositorios en memoria.
// Útil para desarrollo y para los tests de services.
package memory

import (
	"context"
	"sync"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

type Store struct {
	mu sync.RWMutex

	users    map[int64]*core.User
	posts    map[int64]*core.Post
	comments map[int64]*core.Comment
	likes    map[int64]*core.Like

	nextUserID    int64
	nextPostID    int64
	nextCommentID int64
	nextLikeID    int64
}

func New() *Store {
	return &Store{
		users:    map[int64]*core.User{},
		posts:    map[int64]*core.Post{},
		comments: map[int64]*core.Comment{},
		likes:    map[int64]*core.Like{},
	}
}

func (s *Store) Users() core.UserRepository       { return (*userRepo)(s) }
func (s *Store) Posts() core.PostRepository       { return (*postRepo)(s) }
func (s *Store) Comments() core.CommentRepository { return (*commentRepo)(s) }
func (s *Store) Likes() core.LikeRepository       { return (*likeRepo)(s) }

func (s *Store) Ping(ctx context.Context) error { return nil }
func (s *Store) Close()                         {}

// ─── UserRepository ───

type userRepo Store

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*core.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *userRepo) GetByUID(ctx context.Context, uid string) (*core.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.UID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, u *core.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.UID == u.UID {
			return core.ErrConflict
		}
	}
	r.nextUserID++
	u.ID = r.nextUserID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *userRepo) Update(ctx context.Context, u *core.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if existing.UID == u.UID {
			cp := *u
			cp.ID = id
			r.users[id] = &cp
			return nil
		}
	}
	return core.ErrNotFound
}

// ─── PostRepository ───

type postRepo Store

func (r *postRepo) Create(ctx context.Context, p *core.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextPostID++
	p.ID = r.nextPostID
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64, withComments bool) (*core.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *p
	if withComments {
		for _, c := range r.comments {
			if c.PostID == id {
				cp.Comments = append(cp.Comments, *c)
			}
		}
	}
	return &cp, nil
}

func (r *postRepo) ListAll(ctx context.Context) ([]core.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *postRepo) ListByUser(ctx context.Context, userID int64) ([]core.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []core.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *postRepo) Update(ctx context.Context, p *core.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[p.ID]
	if !ok {
		return core.ErrNotFound
	}
	existing.Body = p.Body
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return core.ErrNotFound
	}
	delete(r.posts, id)
	for cid, c := range r.comments {
		if c.PostID == id {
			delete(r.comments, cid)
		}
	}
	return nil
}

func (r *postRepo) IncrementLikes(ctx context.Context, id int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return core.ErrNotFound
	}
	p.Likes += delta
	return nil
}

// ─── CommentRepository ───

type commentRepo Store

func (r *commentRepo) Create(ctx context.Context, c *core.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextCommentID++
	c.ID = r.nextCommentID
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*core.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]core.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []core.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return core.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

// ─── LikeRepository ───

type likeRepo Store

func (r *likeRepo) Create(ctx context.Context, l *core.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextLikeID++
	l.ID = r.nextLikeID
	cp := *l
	r.likes[l.ID] = &cp
	return nil
}

func (r *likeRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*core.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *likeRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.likes, id)
	return nil
}
