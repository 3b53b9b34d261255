package types

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier of the user, assigned by the store.
	ID int `json:"id" db:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// PasswordHash stores the salted one-way hash of the user's password.
	// The plaintext is never persisted and the hash is never rendered.
	PasswordHash string `json:"-" db:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created"`
}
