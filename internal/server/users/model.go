package users

import "time"

// User is an account record. Created on registration, immutable
// afterwards; the password is stored only as a bcrypt hash.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
