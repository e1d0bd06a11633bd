// Package crossrefs provides database operations for the denormalized,
// vote-ranked cross-reference table.
package crossrefs

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

const insertBatchSize = 500

// Repository handles all cross-reference database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new cross-reference repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// View is a cross-reference row with both endpoints' book coordinates
// resolved against the local books table where possible. Unresolved
// books leave the id/abbr fields null; resolution never fails
// a lookup.
type View struct {
	entities.CrossReference
	FromBookAbbr *string `json:"from_book_abbr"`
	FromBookID   *uint   `json:"from_book_id"`
	ToBookAbbr   *string `json:"to_book_abbr"`
	ToBookID     *uint   `json:"to_book_id"`
}

const lookupSelect = `
	SELECT cr.*,
	       fb.book_abbr AS from_book_abbr, fb.book_id AS from_book_id,
	       tb.book_abbr AS to_book_abbr, tb.book_id AS to_book_id
	FROM cross_references_tbl cr
	LEFT JOIN books_tbl fb ON cr.from_book_name IN (fb.book_name, fb.book_abbr)
	LEFT JOIN books_tbl tb ON cr.to_book_name IN (tb.book_name, tb.book_abbr)`

// GetByCoordinate returns every cross-reference whose from coordinate
// matches the given (book name, chapter, verse) exactly, ranked by
// votes descending. Chapter and verse compare as strings.
func (r *Repository) GetByCoordinate(book, chapter, verse string) ([]View, error) {
	var refs []View
	err := r.db.Raw(lookupSelect+`
		WHERE cr.from_book_name = ? AND cr.from_chapter = ? AND cr.from_verse = ?
		ORDER BY cr.votes DESC`, book, chapter, verse).
		Scan(&refs).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if refs == nil {
		refs = []View{}
	}
	return refs, nil
}

// GetByBookID is the integer-keyed variant of GetByCoordinate: the book
// id is resolved to its row and matched against from coordinates stored
// under either the book's full name or its abbreviation.
func (r *Repository) GetByBookID(bookID uint, chapter, verse string) ([]View, error) {
	var book entities.Book
	if err := r.db.First(&book, bookID).Error; err != nil {
		return nil, database.Classify(err)
	}

	names := []string{book.Name}
	if book.Abbr != nil && *book.Abbr != "" {
		names = append(names, *book.Abbr)
	}

	var refs []View
	err := r.db.Raw(lookupSelect+`
		WHERE cr.from_book_name IN ? AND cr.from_chapter = ? AND cr.from_verse = ?
		ORDER BY cr.votes DESC`, names, chapter, verse).
		Scan(&refs).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if refs == nil {
		refs = []View{}
	}
	return refs, nil
}

// BulkInsert loads cross-reference rows in batches. Used by the import
// task, never on the request path.
func (r *Repository) BulkInsert(refs []entities.CrossReference) (int64, error) {
	if len(refs) == 0 {
		return 0, nil
	}
	result := r.db.CreateInBatches(refs, insertBatchSize)
	if result.Error != nil {
		return 0, database.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Coordinate is a parsed textual verse coordinate.
type Coordinate struct {
	Book    string
	Chapter string
	Verse   string
}

// ParseCoordinate parses a compact coordinate token in the form
// "Book.Chapter.Verse" (e.g. "Gen.1.1"). Range tokens such as
// "Gen.1.1-Gen.1.3" resolve to the range start.
func ParseCoordinate(token string) (Coordinate, error) {
	token = strings.TrimSpace(token)
	if i := strings.IndexByte(token, '-'); i > 0 {
		token = token[:i]
	}

	parts := strings.Split(token, ".")
	if len(parts) < 3 {
		return Coordinate{}, fmt.Errorf("malformed coordinate %q", token)
	}
	coord := Coordinate{
		Book:    strings.Join(parts[:len(parts)-2], "."),
		Chapter: parts[len(parts)-2],
		Verse:   parts[len(parts)-1],
	}
	if coord.Book == "" || coord.Chapter == "" || coord.Verse == "" {
		return Coordinate{}, fmt.Errorf("malformed coordinate %q", token)
	}
	return coord, nil
}
