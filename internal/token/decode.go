// Package token decodes the payload of compact (header.payload.signature)
// tokens for display purposes. Signatures, expiry and issuer are never
// checked; decoded claims are informational and must not gate access.
package token

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const segmentCount = 3

// segmentParser decodes URL-safe base64 with or without trailing padding.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode returns the claims carried in the middle segment of raw.
// An empty token yields nil claims and a nil error.
func Decode(raw string) (jwt.MapClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ".")
	if len(parts) != segmentCount {
		return nil, apperrors.New(apperrors.ErrCodeMalformedToken, "Token JWT mal formado")
	}

	// Standard-alphabet characters are accepted the same way as their URL-safe forms.
	seg := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])
	payload, err := segmentParser.DecodeSegment(seg)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTokenDecode, "Error al decodificar el token")
	}

	if !utf8.Valid(payload) {
		return nil, apperrors.Wrap(errInvalidUTF8, apperrors.ErrCodeTokenDecode, "Error al decodificar el token")
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTokenDecode, "Error al decodificar el token")
	}
	if claims == nil {
		// JSON null decodes to a nil map without error.
		return nil, apperrors.Wrap(errNotObject, apperrors.ErrCodeTokenDecode, "Error al decodificar el token")
	}

	return claims, nil
}

// DecodePtr is Decode for optional token values; nil behaves like "".
func DecodePtr(raw *string) (jwt.MapClaims, error) {
	if raw == nil {
		return nil, nil
	}
	return Decode(*raw)
}

// ExpiresAt returns the exp claim, or the zero time when absent or unreadable.
func ExpiresAt(claims jwt.MapClaims) time.Time {
	if claims == nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// String reads a string claim, returning "" when absent or of another type.
func String(claims jwt.MapClaims, key string) string {
	if claims == nil {
		return ""
	}
	s, _ := claims[key].(string)
	return s
}

type decodeError string

func (e decodeError) Error() string { return string(e) }

const (
	errInvalidUTF8 decodeError = "payload is not valid UTF-8"
	errNotObject   decodeError = "payload is not a JSON object"
)
