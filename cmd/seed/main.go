package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	repo "github.com/artakjato/happy-thoughts-api/internal/adapters/repository/postgres"
	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/artakjato/happy-thoughts-api/internal/core/services"
	"github.com/artakjato/happy-thoughts-api/pkg/password"
)

var initialThoughts = []struct {
	message string
	hearts  int
}{
	{message: "Today is a great day to learn something new!"},
	{message: "I love coding with JavaScript", hearts: 5},
	{message: "Happy thoughts make the world go round", hearts: 12},
	{message: "Just finished a really cool project!", hearts: 3},
	{message: "Coffee and code is the best combo", hearts: 8},
	{message: "Never stop learning, never stop growing", hearts: 15},
	{message: "Sunshine and good vibes today", hearts: 6},
	{message: "Feeling grateful for amazing friends", hearts: 10},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "DELETE FROM thoughts"); err != nil {
		log.Fatalf("Failed to remove previous thoughts: %v", err)
	}
	fmt.Println("Previous thoughts removed")

	userRepo := repo.NewUserRepository(db)
	thoughtRepo := repo.NewThoughtRepository(db)

	seedUser, err := userRepo.GetByEmail(ctx, "seed@happythoughts.local")
	if err != nil {
		log.Fatal(err)
	}
	if seedUser == nil {
		authSvc := services.NewAuthService(userRepo, password.NewHasher())
		seedUser, err = authSvc.Signup(ctx, ports.SignupInput{
			Email:    "seed@happythoughts.local",
			Password: "happy-thoughts-seed",
		})
		if err != nil {
			log.Fatalf("Failed to create seed user: %v", err)
		}
	}

	for _, seed := range initialThoughts {
		thought := &domain.Thought{
			ID:        uuid.New(),
			Message:   seed.message,
			Hearts:    seed.hearts,
			Category:  "general",
			CreatedAt: time.Now(),
			UserID:    seedUser.ID,
		}
		if err := thoughtRepo.Insert(ctx, thought); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	fmt.Printf("Successfully seeded %d thoughts\n", len(initialThoughts))
	fmt.Println("Seeding complete!")
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
