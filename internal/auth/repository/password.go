package repository

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored hashes.
const PasswordCost = bcrypt.DefaultCost

// DummyHash returns a hash at PasswordCost that matches no password. Compare
// against it when there is no stored hash so a miss costs the same as a
// wrong password.
var DummyHash = sync.OnceValue(func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("\x00no-such-user\x00"), PasswordCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
})

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash in constant time
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
