package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered parent/guardian account. Users are created at
// registration and never updated or deleted afterwards.
type User struct {
	Id           uuid.UUID
	Name         string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}
