package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models a registered actor. Role is always set explicitly; a user is an
// administrator only when Role equals RoleAdmin.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenClaims is the decoded identity carried by a verified token.
type TokenClaims struct {
	Email string
}
