// Package books provides database operations for book management.
package books

import (
	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Patch carries the fields of a partial update. Nil fields are left
// unchanged; only the fields explicitly present are written.
type Patch struct {
	Name        *string `json:"book_name"`
	Abbr        *string `json:"book_abbr"`
	HebrewName  *string `json:"hebrew_book_name"`
	TeluguName  *string `json:"telugu_book_name"`
	Description *string `json:"book_description"`
	Header      *string `json:"book_header"`
	Footer      *string `json:"book_footer"`
	Index       *int    `json:"book_index"`
	CategoryID  *uint   `json:"category_id"`
}

func (p Patch) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["book_name"] = *p.Name
	}
	if p.Abbr != nil {
		fields["book_abbr"] = *p.Abbr
	}
	if p.HebrewName != nil {
		fields["hebrew_book_name"] = *p.HebrewName
	}
	if p.TeluguName != nil {
		fields["telugu_book_name"] = *p.TeluguName
	}
	if p.Description != nil {
		fields["book_description"] = *p.Description
	}
	if p.Header != nil {
		fields["book_header"] = *p.Header
	}
	if p.Footer != nil {
		fields["book_footer"] = *p.Footer
	}
	if p.Index != nil {
		fields["book_index"] = *p.Index
	}
	if p.CategoryID != nil {
		fields["category_id"] = *p.CategoryID
	}
	return fields
}

// CreateBook inserts a new book and returns it with its assigned ID.
// Omitted optional fields are stored as NULL, never left undefined.
func (r *Repository) CreateBook(book *entities.Book) (*entities.Book, error) {
	if err := r.db.Create(book).Error; err != nil {
		return nil, database.Classify(err)
	}
	return book, nil
}

// GetBookByID retrieves a book by ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &book, nil
}

// GetAllBooks returns every book in display order: book_index first
// (rows without an index sort last), insertion recency breaking ties.
// Each row carries its chapter count.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Model(&entities.Book{}).
		Select("books_tbl.*, (SELECT COUNT(*) FROM chapters_tbl WHERE chapters_tbl.book_id = books_tbl.book_id) AS chapter_count").
		Order("books_tbl.book_index IS NULL, books_tbl.book_index ASC, books_tbl.dt_added DESC").
		Find(&books).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return books, nil
}

// UpdateBook applies a partial update. Returns ErrNoFieldsProvided for
// an empty patch and ErrNotFound when the id does not exist.
func (r *Repository) UpdateBook(id uint, patch Patch) (*entities.Book, error) {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil, database.ErrNoFieldsProvided
	}

	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	if err := r.db.Model(&book).Updates(fields).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &book, nil
}

// DeleteBook removes a book; its chapters and their verses cascade.
// Deleting a missing id is not an error.
func (r *Repository) DeleteBook(id uint) error {
	if err := r.db.Delete(&entities.Book{}, id).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// GetChaptersByBookID returns a book's chapters in insertion order.
func (r *Repository) GetChaptersByBookID(bookID uint) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Where("book_id = ?", bookID).
		Order("dt_added ASC, chapter_id ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return chapters, nil
}
