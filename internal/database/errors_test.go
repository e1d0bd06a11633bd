package database

import (
	"errors"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Classify(nil))
	})

	t.Run("maps gorm record not found", func(t *testing.T) {
		assert.ErrorIs(t, Classify(gorm.ErrRecordNotFound), ErrNotFound)
	})

	t.Run("maps gorm duplicated key", func(t *testing.T) {
		assert.ErrorIs(t, Classify(gorm.ErrDuplicatedKey), ErrConflict)
	})

	t.Run("maps gorm foreign key violation", func(t *testing.T) {
		assert.ErrorIs(t, Classify(gorm.ErrForeignKeyViolated), ErrReferentialIntegrity)
	})

	t.Run("maps sqlite unique constraint code", func(t *testing.T) {
		err := sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintUnique,
		}
		assert.ErrorIs(t, Classify(err), ErrConflict)
	})

	t.Run("maps sqlite primary key constraint code", func(t *testing.T) {
		err := sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintPrimaryKey,
		}
		assert.ErrorIs(t, Classify(err), ErrConflict)
	})

	t.Run("maps sqlite foreign key constraint code", func(t *testing.T) {
		err := sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintForeignKey,
		}
		assert.ErrorIs(t, Classify(err), ErrReferentialIntegrity)
	})

	t.Run("unrecognized errors pass through unchanged", func(t *testing.T) {
		plain := errors.New("disk I/O error")
		assert.Equal(t, plain, Classify(plain))
	})
}
