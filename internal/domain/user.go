package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered shopper
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Password  *string       `bson:"password"` // bcrypt hash, nil for accounts registered without one
	CreatedAt time.Time     `bson:"createdAt"`
}

// HasPassword reports whether the user can authenticate with a password
func (u *User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}

// Claim derives the session claim carried by access tokens
func (u *User) Claim() SessionClaim {
	return SessionClaim{Name: u.Name, Email: u.Email}
}

// SessionClaim is the identity embedded inside an access token
type SessionClaim struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Owns reports whether the claim identifies the owner of a resource keyed by email.
// Emails compare exactly, as stored.
func (c SessionClaim) Owns(email string) bool {
	return c.Email != "" && c.Email == email
}
