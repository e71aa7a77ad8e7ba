package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleUser is the role of every self-registered account.
const RoleUser = "user"

// User is a registered account. Email is unique ignoring case.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
