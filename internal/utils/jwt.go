package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-core/models"
)

// ParseBearerToken extracts the token part of an
// "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseSessionToken parses (without verifying) the identity provider's
// session JWT so its registered claims can be inspected. The identity
// provider is the trust anchor for its own tokens; the client only reads
// the expiry to decide between password re-entry and a full login.
func ParseSessionToken(tokenString string) (models.SessionToken, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.SessionToken{}, err
	}

	return models.SessionToken{Token: token, SignedString: tokenString}, nil
}

// SessionTokenLive reports whether the identity session token exists and
// has not expired. A token without an exp claim counts as live — expiry
// is then enforced solely by the identity provider.
func SessionTokenLive(tokenString string, now time.Time) bool {
	if tokenString == "" {
		return false
	}

	token, err := ParseSessionToken(tokenString)
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return err == nil
	}

	return now.Before(exp.Time)
}
