package domain

import (
	"errors"
	"time"
)

// Operator roles control access to the admin API itself. They are distinct
// from the Role enumeration on managed user records.
const (
	OperatorAdmin  = "admin"
	OperatorViewer = "viewer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")

// Account models an operator who signs in to the admin API.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
