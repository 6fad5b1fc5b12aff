// Package tokenpkg provides access tokens for the HTTP API.
package tokenpkg

import (
	"fmt"
	"time"
)

// Supported token types.
const (
	TypePaseto = "paseto"
	TypeJWT    = "jwt"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific subject and duration.
	CreateToken(subject string, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// NewMaker returns the token maker for the token type.
func NewMaker(tokenType, key string) (Maker, error) {
	switch tokenType {
	case TypePaseto:
		return NewPasetoMaker(key)
	case TypeJWT:
		return NewJWTMaker(key)
	}

	return nil, fmt.Errorf("unsupported token type %q", tokenType)
}
