package cryptox

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for all credential hashes.
// Raising it only affects newly stored hashes; existing ones keep the cost
// they were created with.
const PasswordCost = 10

// HashPassword produces a salted bcrypt hash of the plaintext password.
// The salt is embedded in the returned encoding.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash
// in constant time. A nil return means the password matches.
func VerifyPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}
