package account

import (
	"time"

	"accounts/pkg/domain"
	"accounts/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueToken signs a new HS256 access token for the given user. The subject
// claim carries the user ID and the expiry is taken from Options.TokenTTL.
func (a accounts) IssueToken(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(userID).String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.options.TokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.options.TokenSecret))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return token, nil
}

// ParseToken validates the given access token and returns the user ID from its
// subject claim. Expired, malformed or wrongly signed tokens all map to an
// unauthorized error.
func (a accounts) ParseToken(token string) (domain.UserID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serrors.With(serrors.ErrUnauthorized, "unexpected signing method %q", t.Method.Alg())
		}

		return []byte(a.options.TokenSecret), nil
	})
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(id), nil
}
