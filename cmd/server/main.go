package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/artakjato/happy-thoughts-api/internal/adapters/handler/http"
	repo "github.com/artakjato/happy-thoughts-api/internal/adapters/repository/postgres"
	"github.com/artakjato/happy-thoughts-api/internal/core/services"
	"github.com/artakjato/happy-thoughts-api/pkg/password"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	userRepo := repo.NewUserRepository(db)
	thoughtRepo := repo.NewThoughtRepository(db)

	authSvc := services.NewAuthService(userRepo, password.NewHasher())
	thoughtSvc := services.NewThoughtService(thoughtRepo)

	thoughtHandler := http.NewThoughtHandler(thoughtSvc)
	userHandler := http.NewUserHandler(authSvc)
	handler := http.NewHandler(thoughtHandler, userHandler, authSvc, allowedOrigins())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func allowedOrigins() []string {
	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	return strings.Split(origins, ",")
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
