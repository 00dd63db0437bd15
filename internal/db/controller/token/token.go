// Package token records issued random strings so none is handed out twice.
// Strings are stored as BLAKE2b fingerprints, never in plain text.
package token

import (
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"

	"github.com/mormao/randstr/generator"
	"github.com/mormao/randstr/internal/db/models"
)

const (
	fingerprintQueryPattern = "fingerprint = ?"
)

var (
	// ErrTokenNotFound is returned when a token was never recorded.
	ErrTokenNotFound = errors.New("token not found")
	// ErrTokenEmpty is returned when attempting to record an empty string.
	ErrTokenEmpty = errors.New("token cannot be empty")
	// ErrTokenAlreadyIssued is returned when the token was recorded before.
	ErrTokenAlreadyIssued = errors.New("token already issued")
	// ErrAttemptsExhausted is returned when Issue only produced already issued tokens.
	ErrAttemptsExhausted = errors.New("no unused token found within the allowed attempts")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Fingerprint returns the hex encoded BLAKE2b-256 digest of value.
func Fingerprint(value string) string {
	sum := blake2b.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Get retrieves the record of a token.
func Get(db *gorm.DB, value string) (*models.Token, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if value == "" {
		return nil, ErrTokenEmpty
	}

	var token models.Token
	result := db.Where(fingerprintQueryPattern, Fingerprint(value)).First(&token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, result.Error
	}

	return &token, nil
}

// Exists reports whether the token was recorded.
func Exists(db *gorm.DB, value string) (bool, error) {
	_, err := Get(db, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTokenNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Count returns the number of recorded tokens.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Token{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Record stores the token. It fails with ErrTokenAlreadyIssued for a repeat.
func Record(db *gorm.DB, value string) (*models.Token, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if value == "" {
		return nil, ErrTokenEmpty
	}

	exists, err := Exists(db, value)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTokenAlreadyIssued
	}

	token := &models.Token{
		Fingerprint: Fingerprint(value),
		Length:      len([]rune(value)),
	}

	result := db.Create(token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrTokenAlreadyIssued
		}
		return nil, result.Error
	}

	return token, nil
}

// Delete forgets a token so it may be issued again.
func Delete(db *gorm.DB, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if value == "" {
		return ErrTokenEmpty
	}

	result := db.Where(fingerprintQueryPattern, Fingerprint(value)).Delete(&models.Token{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// Issue generates strings of the given size until one was never issued before,
// records it and returns it. It gives up after maxAttempts tries.
// The second return value is the number of collisions seen.
func Issue(db *gorm.DB, gen *generator.Generator, size, maxAttempts int) (string, int, error) {
	if db == nil {
		return "", 0, ErrDBNil
	}

	collisions := 0

	for range maxAttempts {
		value, err := gen.NewRandomString(size)
		if err != nil {
			return "", collisions, err
		}

		_, err = Record(db, value)
		switch {
		case err == nil:
			return value, collisions, nil
		case errors.Is(err, ErrTokenAlreadyIssued):
			collisions++
		default:
			return "", collisions, err
		}
	}

	return "", collisions, ErrAttemptsExhausted
}
