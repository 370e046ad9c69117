package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AccessToken  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
