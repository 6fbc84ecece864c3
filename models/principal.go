package models

// Principal is the caller identity resolved from an optional bearer token.
// The zero value is the anonymous caller.
type Principal struct {
	UserID        int64
	Authenticated bool
}

// Anonymous is the principal of a request without a valid token.
var Anonymous = Principal{}

// NewPrincipal returns an authenticated principal for userID.
func NewPrincipal(userID int64) Principal {
	return Principal{UserID: userID, Authenticated: true}
}
