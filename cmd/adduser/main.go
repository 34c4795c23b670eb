package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tablero/internal/config"
	"tablero/internal/domain"
	"tablero/internal/repository/postgres"
)

// adduser creates a staff account. There is no self-registration; every
// account is provisioned from the command line.
func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "", "full name")
	role := flag.String("role", string(domain.RoleProduccion), "role: admin or produccion")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}
	userRole := domain.UserRole(*role)
	if userRole != domain.RoleAdmin && userRole != domain.RoleProduccion {
		log.Fatalf("invalid role: %s", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *name,
		Role:         userRole,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := postgres.NewUserRepo(db).Create(ctx, user); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Printf("created user %s (%s) with role %s", user.Email, user.ID, user.Role)
}
