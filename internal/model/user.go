package model

import "time"

// User is an operator account in the `users` table. Only the bcrypt hash of
// the password is stored; the API never serializes this struct.
type User struct {
	ID           string    // users.id (UUID)
	Username     string    // users.username (unique)
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
