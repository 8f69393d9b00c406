package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode is returned when a credential cannot be decoded into a trusted
// identity. Callers treat it as "no identity", never as a fatal condition.
var ErrDecode = errors.New("credential decode failed")

// tokenClaims is the JWT payload shape issued by the career-fair API.
type tokenClaims struct {
	jwt.RegisteredClaims

	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// DecodeToken extracts the identity embedded in an upstream credential.
//
// The signature is deliberately not verified: trust is established by the
// upstream API, which validates the token on every privileged call. The
// decoded role only steers navigation, so a forged token buys nothing beyond
// seeing an empty screen. A malformed payload, a missing user id, or a role
// outside the closed set yields ErrDecode.
func DecodeToken(credential string) (Identity, error) {
	if credential == "" {
		return Identity{}, fmt.Errorf("%w: empty credential", ErrDecode)
	}

	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if claims.UserID == 0 {
		return Identity{}, fmt.Errorf("%w: missing user id", ErrDecode)
	}
	if !claims.Role.Valid() {
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrDecode, claims.Role)
	}

	return Identity{
		UserID:    claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Email:     claims.Email,
		Role:      claims.Role,
	}, nil
}
