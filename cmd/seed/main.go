// Siembra datos de desarrollo: un usuario demo confirmado y un par de
// posts, contra DATABASE_DSN. Idempotente: si el email ya existe no toca nada.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dropDatabas3/fauxbook/internal/security/password"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
	"github.com/dropDatabas3/fauxbook/internal/store/pg"
)

// ---------- helpers env ----------
func strEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()

	dsn := strEnv("DATABASE_DSN", "")
	if dsn == "" {
		log.Fatal("missing DATABASE_DSN")
	}
	email := strEnv("SEED_EMAIL", "demo@fauxbook.local")
	plain := strEnv("SEED_PASSWORD", "hunter22")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := pg.New(ctx, dsn)
	if err != nil {
		log.Fatalf("pg: %v", err)
	}
	defer store.Close()

	if _, err := store.Users().GetByEmail(ctx, email); err == nil {
		log.Printf("seed: %s ya existe, nada que hacer", email)
		return
	} else if !errors.Is(err, core.ErrNotFound) {
		log.Fatalf("seed: lookup %s: %v", email, err)
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		log.Fatalf("seed: salt: %v", err)
	}
	hash, err := password.Hash(password.Default, salt, plain)
	if err != nil {
		log.Fatalf("seed: hash: %v", err)
	}

	u := &core.User{
		UID:             uuid.NewString(),
		Email:           email,
		PasswordHash:    hash,
		Salt:            salt,
		FirstName:       "Demo",
		LastName:        "User",
		IsActive:        true,
		IsUserConfirmed: true, // listo para login sin pasar por el mail
	}
	if err := store.Users().Create(ctx, u); err != nil {
		log.Fatalf("seed: create user: %v", err)
	}
	log.Printf("seed: user %s (uid=%s) creado, password %q", email, u.UID, plain)

	for _, body := range []string{
		"Hola mundo, primer post del usuario demo.",
		"Segundo post: la base quedó sembrada.",
	} {
		p := &core.Post{UserID: u.ID, Body: body}
		if err := store.Posts().Create(ctx, p); err != nil {
			log.Fatalf("seed: create post: %v", err)
		}
		log.Printf("seed: post %d creado", p.ID)
	}
	log.Println("seed: completado")
}
