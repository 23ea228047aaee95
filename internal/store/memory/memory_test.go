package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

func TestUsers_UniquenessAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := New()

	u := &core.User{UID: "uid-1", Email: "a@b.com"}
	if err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("Create no asignó ID")
	}

	// Email duplicado
	if err := s.Users().Create(ctx, &core.User{UID: "uid-2", Email: "a@b.com"}); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("email duplicado: quería ErrConflict, vino %v", err)
	}
	// UID duplicado
	if err := s.Users().Create(ctx, &core.User{UID: "uid-1", Email: "c@d.com"}); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("uid duplicado: quería ErrConflict, vino %v", err)
	}

	// Update de inexistente
	if err := s.Users().Update(ctx, &core.User{UID: "uid-zzz"}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update inexistente: %v", err)
	}

	u.FirstName = "Ada"
	if err := s.Users().Update(ctx, u); err != nil {
		t.Fatal(err)
	}
	got, err := s.Users().GetByUID(ctx, "uid-1")
	if err != nil || got.FirstName != "Ada" {
		t.Fatalf("GetByUID tras Update: (%+v, %v)", got, err)
	}
}

func TestUsers_CopyOnRead(t *testing.T) {
	ctx := context.Background()
	s := New()
	_ = s.Users().Create(ctx, &core.User{UID: "uid-1", Email: "a@b.com"})

	got, _ := s.Users().GetByUID(ctx, "uid-1")
	got.Email = "mutado@b.com" // no debe tocar el store

	again, _ := s.Users().GetByUID(ctx, "uid-1")
	if again.Email != "a@b.com" {
		t.Fatalf("mutación externa visible en el store: %q", again.Email)
	}
}

func TestPosts_DeleteCascadesComments(t *testing.T) {
	ctx := context.Background()
	s := New()

	p := &core.Post{UserID: 1, Body: "post"}
	if err := s.Posts().Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	c := &core.Comment{UserID: 2, PostID: p.ID, Body: "comment"}
	if err := s.Comments().Create(ctx, c); err != nil {
		t.Fatal(err)
	}

	if err := s.Posts().Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Comments().GetByID(ctx, c.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("comment sobrevivió al delete del post: %v", err)
	}
}
