package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a signed credentialed session token.
//
// The subject ("sub") holds the account id and DeviceID binds the token to
// the device that created it. Expiry is carried by the registered "exp"
// claim.
type SessionClaims struct {
	jwt.RegisteredClaims

	// DeviceID is the identifier of the device the session was issued to.
	DeviceID string `json:"did"`
}

// Token is a parsed session token.
type Token struct {
	// Claims are the verified claims of the token.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS form that is persisted on the device.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// UserID returns the account id carried in the subject claim.
func (t Token) UserID() string {
	return t.Claims.Subject
}
