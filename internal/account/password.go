package account

import (
	"unicode"

	"accounts/pkg/serrors"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// dummyHash is compared against when no account matches the login email, so
// failed lookups take roughly the same time as wrong-password attempts.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// ValidatePassword enforces the password policy: at least 8 characters with an
// uppercase letter, a lowercase letter and a digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return serrors.With(serrors.ErrBadRequest,
			"password must contain an uppercase letter, a lowercase letter and a digit")
	}

	return nil
}

// HashPassword returns the bcrypt hash of the given plain-text password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not hash password")
	}

	return string(hash), nil
}

// checkPassword reports whether the plain-text password matches the stored
// bcrypt hash.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
