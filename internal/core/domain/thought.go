package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageMinLength = 5
	MessageMaxLength = 140
)

type Thought struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Hearts    int       `json:"hearts"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId"`
}
