// Package notes provides database operations for notes and the
// verse-note association table.
package notes

import (
	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

// Repository handles all note database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Patch carries the fields of a partial note update.
type Patch struct {
	Title   *string `json:"note_title"`
	Content *string `json:"note_content"`
}

func (p Patch) fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["note_title"] = *p.Title
	}
	if p.Content != nil {
		fields["note_content"] = *p.Content
	}
	return fields
}

// NoteForVerse is a note joined with the association row that attaches
// it to a verse, so callers can detach it by verse_note_id.
type NoteForVerse struct {
	entities.Note
	VerseNoteID uint `json:"verse_note_id"`
}

// CreateNote inserts a standalone note.
func (r *Repository) CreateNote(note *entities.Note) (*entities.Note, error) {
	if err := r.db.Create(note).Error; err != nil {
		return nil, database.Classify(err)
	}
	return note, nil
}

// GetNoteByID retrieves a note by ID.
func (r *Repository) GetNoteByID(id uint) (*entities.Note, error) {
	var note entities.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &note, nil
}

// GetAllNotes returns every note, most recently modified first.
func (r *Repository) GetAllNotes() ([]entities.Note, error) {
	var notes []entities.Note
	if err := r.db.Order("dt_modified DESC").Find(&notes).Error; err != nil {
		return nil, database.Classify(err)
	}
	return notes, nil
}

// UpdateNote applies a partial update.
func (r *Repository) UpdateNote(id uint, patch Patch) (*entities.Note, error) {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil, database.ErrNoFieldsProvided
	}

	var note entities.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	if err := r.db.Model(&note).Updates(fields).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &note, nil
}

// DeleteNote removes a note; its verse associations cascade. Idempotent.
func (r *Repository) DeleteNote(id uint) error {
	if err := r.db.Delete(&entities.Note{}, id).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// LinkNoteToVerse attaches a note to a verse. Linking the same pair
// twice yields ErrConflict; a missing verse or note yields
// ErrReferentialIntegrity.
func (r *Repository) LinkNoteToVerse(verseID, noteID uint) (*entities.VerseNote, error) {
	verseNote := &entities.VerseNote{VerseID: verseID, NoteID: noteID}
	if err := r.db.Create(verseNote).Error; err != nil {
		return nil, database.Classify(err)
	}
	return verseNote, nil
}

// UnlinkNoteFromVerse removes an association row by its own id. Idempotent.
func (r *Repository) UnlinkNoteFromVerse(verseNoteID uint) error {
	if err := r.db.Delete(&entities.VerseNote{}, verseNoteID).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// GetNotesByVerseID returns the notes attached to a verse, most
// recently modified first.
func (r *Repository) GetNotesByVerseID(verseID uint) ([]NoteForVerse, error) {
	var notes []NoteForVerse
	err := r.db.Raw(`
		SELECT n.*, vn.verse_note_id
		FROM verse_notes_tbl vn
		JOIN notes_tbl n ON n.note_id = vn.note_id
		WHERE vn.verse_id = ?
		ORDER BY n.dt_modified DESC`, verseID).
		Scan(&notes).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if notes == nil {
		notes = []NoteForVerse{}
	}
	return notes, nil
}

// GetVerseIDsByNoteID returns the ids of verses a note is attached to.
func (r *Repository) GetVerseIDsByNoteID(noteID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.VerseNote{}).
		Where("note_id = ?", noteID).
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
