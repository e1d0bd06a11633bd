package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a singular lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a uniqueness constraint (tag name,
	// association pair) is violated.
	ErrConflict = errors.New("record already exists")
	// ErrReferentialIntegrity is returned when a referenced parent row
	// does not exist.
	ErrReferentialIntegrity = errors.New("referenced record does not exist")
	// ErrNoFieldsProvided is returned by partial updates given an empty
	// patch.
	ErrNoFieldsProvided = errors.New("no fields provided")
)

// Classify maps driver and ORM errors onto the store error taxonomy.
// Unrecognized errors pass through unchanged and surface as plain
// store failures.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferentialIntegrity
	}

	// Raw SQL paths bypass gorm's error translation, so fall back to
	// the sqlite extended result codes.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrConflict
		case sqlite3.ErrConstraintForeignKey:
			return ErrReferentialIntegrity
		}
	}

	return err
}
