package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// service layer.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Author is the display projection of a User embedded in blogs and comments.
type Author struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Identity is the acting user extracted from a verified bearer token.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// Author returns the display projection of the user.
func (u *User) Author() *Author {
	return &Author{ID: u.ID, Username: u.Username}
}

// Identity returns the acting identity for the user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

// Registration is the input of account creation.
type Registration struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Credentials is the input of a login attempt.
type Credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
