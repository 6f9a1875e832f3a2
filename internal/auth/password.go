package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost matches the fixed cost the API has always used; changing it
// would not invalidate stored hashes but keep it stable anyway.
const BcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
// Each call produces a different hash for the same input.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
