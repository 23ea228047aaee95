package core

import "context"

// UserRepository persiste usuarios. Debe preservar unicidad de email y
// uid; Create retorna ErrConflict si se viola.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUID(ctx context.Context, uid string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
}

// PostRepository persiste posts.
type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	// GetByID carga un post; con withComments incluye sus comments.
	GetByID(ctx context.Context, id int64, withComments bool) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	ListByUser(ctx context.Context, userID int64) ([]Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
	// IncrementLikes ajusta el contador desnormalizado de likes.
	IncrementLikes(ctx context.Context, id int64, delta int) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
	Delete(ctx context.Context, id int64) error
}

type LikeRepository interface {
	Create(ctx context.Context, l *Like) error
	GetByUserAndPost(ctx context.Context, userID, postID int64) (*Like, error)
	Delete(ctx context.Context, id int64) error
}

// Store agrupa los repositorios sobre un mismo backend.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Comments() CommentRepository
	Likes() LikeRepository
	Ping(ctx context.Context) error
	Close()
}
