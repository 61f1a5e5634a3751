package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasPassword(t *testing.T) {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	empty := ""

	tests := []struct {
		name     string
		password *string
		want     bool
	}{
		{"nil password", nil, false},
		{"empty password", &empty, false},
		{"hashed password", &hash, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Password: tt.password}
			assert.Equal(t, tt.want, u.HasPassword())
		})
	}
}

func TestUser_Claim(t *testing.T) {
	u := &User{Name: "A", Email: "a@x.com"}
	assert.Equal(t, SessionClaim{Name: "A", Email: "a@x.com"}, u.Claim())
}

func TestSessionClaim_Owns(t *testing.T) {
	claim := SessionClaim{Name: "A", Email: "a@x.com"}

	assert.True(t, claim.Owns("a@x.com"))
	assert.False(t, claim.Owns("b@x.com"))
	assert.False(t, claim.Owns("A@X.COM"), "emails compare as stored")
	assert.False(t, SessionClaim{}.Owns(""), "an empty claim owns nothing")
}
