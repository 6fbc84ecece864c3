package models

import "time"

// User is a single account row of the identity store.
//
// PasswordHash holds the bcrypt output and is never serialized. Stats are kept
// inline because they are aggregates updated in place, not an event history.
type User struct {
	// UserID is assigned by the store on creation and never changes.
	UserID int64 `json:"id"`

	// Username is unique and case-sensitive, 1 to 80 characters.
	Username string `json:"username"`

	// PasswordHash is the salted bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time in UTC.
	CreatedAt time.Time `json:"created_at"`

	Stats
}

// Credentials is the username/password pair sent to /register and /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsEmpty reports whether either field is missing.
func (c Credentials) IsEmpty() bool {
	return c.Username == "" || c.Password == ""
}
