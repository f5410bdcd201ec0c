package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/studytrack/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateSessionToken] when a
// required argument is empty.
var ErrInvalidTokenParams = errors.New("invalid params for generating session token")

// SessionTokenParams describes a session token to issue.
type SessionTokenParams struct {
	Issuer   string
	UserID   string
	DeviceID string
	IssuedAt time.Time
	Duration time.Duration
	SignKey  string
}

// GenerateSessionToken creates a signed HMAC-SHA256 JWT binding UserID to
// DeviceID.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the application that issued the token
//   - Subject   (sub): the account id
//   - did            : the device id
//   - IssuedAt  (iat): p.IssuedAt
//   - ExpiresAt (exp): p.IssuedAt plus p.Duration
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(utils.SessionTokenParams{
//	    Issuer: "studytrack", UserID: id, DeviceID: dev,
//	    IssuedAt: time.Now(), Duration: 30 * 24 * time.Hour, SignKey: key,
//	})
func GenerateSessionToken(p SessionTokenParams) (models.Token, error) {
	if p.Issuer == "" || p.UserID == "" || p.DeviceID == "" || p.Duration <= 0 || p.SignKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(p.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(p.IssuedAt.Add(p.Duration)),
		},
		DeviceID: p.DeviceID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed}, nil
}

// ParseSessionToken verifies the signature, issuer and expiry of
// tokenString against now and returns its claims.
//
// Expired tokens fail with an error wrapping [jwt.ErrTokenExpired].
func ParseSessionToken(tokenString, signKey, issuer string, now time.Time) (models.Token, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
