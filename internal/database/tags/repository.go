// Package tags provides database operations for tags and the
// verse-tag association table.
package tags

import (
	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

// Repository handles all tag database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tags repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Patch carries the fields of a partial tag update.
type Patch struct {
	Name        *string `json:"tag_name"`
	Description *string `json:"tag_description"`
}

func (p Patch) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["tag_name"] = *p.Name
	}
	if p.Description != nil {
		fields["tag_description"] = *p.Description
	}
	return fields
}

// CreateTag inserts a tag. Tag names are unique; a duplicate yields
// ErrConflict.
func (r *Repository) CreateTag(tag *entities.Tag) (*entities.Tag, error) {
	if err := r.db.Create(tag).Error; err != nil {
		return nil, database.Classify(err)
	}
	return tag, nil
}

// GetTagByID retrieves a tag by ID.
func (r *Repository) GetTagByID(id uint) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &tag, nil
}

// GetAllTags returns every tag ordered by name.
func (r *Repository) GetAllTags() ([]entities.Tag, error) {
	var tags []entities.Tag
	if err := r.db.Order("tag_name ASC").Find(&tags).Error; err != nil {
		return nil, database.Classify(err)
	}
	return tags, nil
}

// UpdateTag applies a partial update. Renaming onto an existing tag
// name yields ErrConflict.
func (r *Repository) UpdateTag(id uint, patch Patch) (*entities.Tag, error) {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil, database.ErrNoFieldsProvided
	}

	var tag entities.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	if err := r.db.Model(&tag).Updates(fields).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &tag, nil
}

// DeleteTag removes a tag; its verse associations cascade. Idempotent.
func (r *Repository) DeleteTag(id uint) error {
	if err := r.db.Delete(&entities.Tag{}, id).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// LinkTagToVerse attaches a tag to a verse. Linking the same pair twice
// yields ErrConflict; a missing verse or tag yields
// ErrReferentialIntegrity.
func (r *Repository) LinkTagToVerse(verseID, tagID uint) (*entities.VerseTag, error) {
	verseTag := &entities.VerseTag{VerseID: verseID, TagID: tagID}
	if err := r.db.Create(verseTag).Error; err != nil {
		return nil, database.Classify(err)
	}
	return verseTag, nil
}

// UnlinkTagFromVerse removes an association row by its own id. Idempotent.
func (r *Repository) UnlinkTagFromVerse(verseTagID uint) error {
	if err := r.db.Delete(&entities.VerseTag{}, verseTagID).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// GetTagsByVerseID returns the tags attached to a verse, by name.
func (r *Repository) GetTagsByVerseID(verseID uint) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.Raw(`
		SELECT t.*
		FROM verse_tags_tbl vt
		JOIN tags_tbl t ON t.tag_id = vt.tag_id
		WHERE vt.verse_id = ?
		ORDER BY t.tag_name ASC`, verseID).
		Scan(&tags).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if tags == nil {
		tags = []entities.Tag{}
	}
	return tags, nil
}

// GetVerseIDsByTagID returns the ids of verses carrying a tag.
func (r *Repository) GetVerseIDsByTagID(tagID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.VerseTag{}).
		Where("tag_id = ?", tagID).
		Order("verse_id ASC").
		Pluck("verse_id", &ids).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}
