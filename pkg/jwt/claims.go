package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims is the token payload: the subject is the platform user ID.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type Role string

const (
	RoleContestant Role = "contestant"
	RoleAdmin      Role = "admin"
)
