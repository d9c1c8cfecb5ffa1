package entities

// UserProfile is a registered account as stored in the credential store.
// PasswordHash never leaves the service boundary.
type UserProfile struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Identity is the authenticated principal attached to a request. It is
// always rebuilt from the current store record, never from token claims
// alone, so a role change takes effect on the next request.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
