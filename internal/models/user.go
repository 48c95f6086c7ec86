package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет учетную запись репортера опасностей
type User struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
