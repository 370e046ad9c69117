package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/artakjato/happy-thoughts-api/internal/adapters/handler/http"
	repo "github.com/artakjato/happy-thoughts-api/internal/adapters/repository/postgres"
	"github.com/artakjato/happy-thoughts-api/internal/core/services"
	"github.com/artakjato/happy-thoughts-api/pkg/password"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	pass := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(pass),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	thoughtRepo := repo.NewThoughtRepository(db)

	authSvc := services.NewAuthService(userRepo, password.NewHasher())
	thoughtSvc := services.NewThoughtService(thoughtRepo)

	thoughtHandler := handler.NewThoughtHandler(thoughtSvc)
	userHandler := handler.NewUserHandler(authSvc)
	router := handler.NewHandler(thoughtHandler, userHandler, authSvc, []string{"*"})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

type signedUpUser struct {
	ID    uuid.UUID
	Email string
	Token string
}

// signupUser registers a fresh user through the API and returns its id and
// access token.
func (app *TestApp) signupUser(t *testing.T) signedUpUser {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString())
	payload := map[string]string{"email": email, "password": "supersecret"}
	body, _ := json.Marshal(payload)

	resp, err := app.Client.Post(app.Server.URL+"/api/users/signup", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var decoded struct {
		Response struct {
			Email       string    `json:"email"`
			ID          uuid.UUID `json:"id"`
			AccessToken string    `json:"accessToken"`
		} `json:"response"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return signedUpUser{
		ID:    decoded.Response.ID,
		Email: email,
		Token: decoded.Response.AccessToken,
	}
}

func (app *TestApp) doJSON(t *testing.T, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// insertThought writes a thought directly, bypassing the API, so tests can
// control the hearts count and creation time.
func (app *TestApp) insertThought(t *testing.T, userID uuid.UUID, message, category string, hearts int, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := app.DB.Exec(
		`INSERT INTO thoughts (id, message, hearts, category, created_at, user_id) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, message, hearts, category, createdAt, userID,
	)
	require.NoError(t, err)
	return id
}
