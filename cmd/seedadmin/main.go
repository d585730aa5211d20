// Command seedadmin creates the initial admin user. Intended for first-time
// setup: registration stays open through the API, but a fresh deployment
// usually wants a known account before the frontend is wired up.
//
//	go run ./cmd/seedadmin -name "Owner" -email owner@shop.in -password secret
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/harsh12garg/Kirana-billing-software/internal/config"
	"github.com/harsh12garg/Kirana-billing-software/internal/infra"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

func main() {
	name := flag.String("name", "Admin", "display name")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "login password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, *email); err == nil {
		log.Fatal().Str("email", *email).Msg("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	user := model.User{Name: *name, Email: *email, PasswordHash: string(hash)}
	if err := repo.Create(ctx, &user); err != nil {
		log.Fatal().Err(err).Msg("failed to create user")
	}

	log.Info().Str("email", *email).Str("id", user.ID.String()).Msg("admin user created")
}
