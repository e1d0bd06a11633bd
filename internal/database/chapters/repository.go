// Package chapters provides database operations for chapter management.
package chapters

import (
	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

// Repository handles all chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chapters repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Patch carries the fields of a partial chapter update.
type Patch struct {
	BookID      *uint   `json:"book_id"`
	Number      *string `json:"chapter_number"`
	Description *string `json:"chapter_description"`
	Notes       *string `json:"chapter_notes"`
}

func (p Patch) fields() map[string]any {
	fields := map[string]any{}
	if p.BookID != nil {
		fields["book_id"] = *p.BookID
	}
	if p.Number != nil {
		fields["chapter_number"] = *p.Number
	}
	if p.Description != nil {
		fields["chapter_description"] = *p.Description
	}
	if p.Notes != nil {
		fields["chapter_notes"] = *p.Notes
	}
	return fields
}

// CreateChapter inserts a chapter. Fails with ErrReferentialIntegrity
// when the book does not exist.
func (r *Repository) CreateChapter(chapter *entities.Chapter) (*entities.Chapter, error) {
	if err := r.db.Create(chapter).Error; err != nil {
		return nil, database.Classify(err)
	}
	return chapter, nil
}

// GetChapterByID retrieves a chapter by ID.
func (r *Repository) GetChapterByID(id uint) (*entities.Chapter, error) {
	var chapter entities.Chapter
	if err := r.db.First(&chapter, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &chapter, nil
}

// GetAllChapters returns every chapter, most recently modified first.
func (r *Repository) GetAllChapters() ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Order("dt_modified DESC").Find(&chapters).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return chapters, nil
}

// UpdateChapter applies a partial update.
func (r *Repository) UpdateChapter(id uint, patch Patch) (*entities.Chapter, error) {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil, database.ErrNoFieldsProvided
	}

	var chapter entities.Chapter
	if err := r.db.First(&chapter, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	if err := r.db.Model(&chapter).Updates(fields).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &chapter, nil
}

// DeleteChapter removes a chapter; its verses cascade. Idempotent.
func (r *Repository) DeleteChapter(id uint) error {
	if err := r.db.Delete(&entities.Chapter{}, id).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}
