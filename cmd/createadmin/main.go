// Command createadmin seeds the initial ADMIN user. It is idempotent: if a
// user with the given e-mail already exists, nothing is changed.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/itlaf/fotostudio/internal/config"
	"github.com/itlaf/fotostudio/internal/db"
	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/store/postgres"
)

func main() {
	name := flag.String("name", "Administrador", "admin display name")
	email := flag.String("email", "admin@fotostudio.com", "admin e-mail")
	password := flag.String("password", "admin123", "admin password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbConn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer dbConn.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx, dbConn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := postgres.NewUserStore(dbConn)

	if _, err := users.GetByEmail(ctx, *email); err == nil {
		log.Printf("user %s already exists, nothing to do", *email)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Fatalf("lookup: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Name:     *name,
		Email:    *email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin %s created", *email)
}
