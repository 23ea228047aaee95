package core

import "time"

// User es la entidad de credenciales + perfil.
// El email es único e inmutable post-registro (no existe flujo de
// cambio de email). El salt se genera en el registro y nunca cambia.
type User struct {
	ID              int64      `json:"-"`
	UID             string     `json:"uid"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Salt            string     `json:"-"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	IsActive        bool       `json:"-"`
	IsUserConfirmed bool       `json:"isUserConfirmed"`
	LastLogin       *time.Time `json:"lastLogin"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
}

// PublicOwner es el subset del usuario que se adjunta a posts/comments.
type PublicOwner struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u *User) Owner() PublicOwner {
	return PublicOwner{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Body      string    `json:"post"`
	Likes     int       `json:"likes"`
	Image     string    `json:"image,omitempty"` // URL pública de la imagen
	Comments  []Comment `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	PostID    int64     `json:"-"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	PostID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
