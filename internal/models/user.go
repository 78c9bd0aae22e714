package models

import (
	"strconv"
)

// PlaceholderEmail is the address given to every user synthesized from an id
const PlaceholderEmail = "test@example.com"

// User represents a user of the system
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUser creates a user from its two attributes
func NewUser(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
	}
}

// NewUserFromID synthesizes the user for a numeric id
func NewUserFromID(id uint64) *User {
	return NewUser("username_"+strconv.FormatUint(id, 10), PlaceholderEmail)
}
