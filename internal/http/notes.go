package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/notes"
	"github.com/rstne/scriptura/internal/entities"
)

// NoteStore defines database operations for notes and verse-note
// associations.
type NoteStore interface {
	CreateNote(note *entities.Note) (*entities.Note, error)
	GetNoteByID(id uint) (*entities.Note, error)
	GetAllNotes() ([]entities.Note, error)
	UpdateNote(id uint, patch notes.Patch) (*entities.Note, error)
	DeleteNote(id uint) error
	LinkNoteToVerse(verseID, noteID uint) (*entities.VerseNote, error)
	UnlinkNoteFromVerse(verseNoteID uint) error
	GetNotesByVerseID(verseID uint) ([]notes.NoteForVerse, error)
	GetVerseIDsByNoteID(noteID uint) ([]uint, error)
}

type NotesController struct {
	store NoteStore
}

func NewNotesController(store NoteStore) *NotesController {
	return &NotesController{store: store}
}

// GetAllNotes returns all notes, most recently modified first
// GET /api/notes
func (nc *NotesController) GetAllNotes(c *gin.Context) {
	allNotes, err := nc.store.GetAllNotes()
	if err != nil {
		respondStoreError(c, err, "get all notes")
		return
	}
	c.JSON(http.StatusOK, allNotes)
}

// GetNote returns a single note
// GET /api/notes/:id
func (nc *NotesController) GetNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	note, err := nc.store.GetNoteByID(id)
	if err != nil {
		respondStoreError(c, err, "get note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote creates a standalone note
// POST /api/notes
func (nc *NotesController) CreateNote(c *gin.Context) {
	var req struct {
		Title   *string `json:"note_title"`
		Content string  `json:"note_content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "note_content is required")
		return
	}

	note, err := nc.store.CreateNote(&entities.Note{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondStoreError(c, err, "create note")
		return
	}
	respondCreated(c, note)
}

// UpdateNote applies a partial update to a note
// PUT /api/notes/:id
func (nc *NotesController) UpdateNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch notes.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	note, err := nc.store.UpdateNote(id, patch)
	if err != nil {
		respondStoreError(c, err, "update note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note and its verse associations
// DELETE /api/notes/:id
func (nc *NotesController) DeleteNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := nc.store.DeleteNote(id); err != nil {
		respondStoreError(c, err, "delete note")
		return
	}
	respondSuccess(c, "note deleted")
}

// GetVerseNotes returns the notes attached to a verse
// GET /api/verses/:id/notes
func (nc *NotesController) GetVerseNotes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	verseNotes, err := nc.store.GetNotesByVerseID(id)
	if err != nil {
		respondStoreError(c, err, "get verse notes")
		return
	}
	c.JSON(http.StatusOK, verseNotes)
}

// GetNoteVerses returns the ids of verses a note is attached to
// GET /api/notes/:id/verses
func (nc *NotesController) GetNoteVerses(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	verseIDs, err := nc.store.GetVerseIDsByNoteID(id)
	if err != nil {
		respondStoreError(c, err, "get note verses")
		return
	}
	c.JSON(http.StatusOK, verseIDs)
}

// LinkNote attaches a note to a verse
// POST /api/verse-notes
func (nc *NotesController) LinkNote(c *gin.Context) {
	var req struct {
		VerseID uint `json:"verse_id" binding:"required"`
		NoteID  uint `json:"note_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "verse_id and note_id are required")
		return
	}

	verseNote, err := nc.store.LinkNoteToVerse(req.VerseID, req.NoteID)
	if err != nil {
		respondStoreError(c, err, "link note to verse")
		return
	}
	respondCreated(c, verseNote)
}

// UnlinkNote removes a verse-note association by its id
// DELETE /api/verse-notes/:id
func (nc *NotesController) UnlinkNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := nc.store.UnlinkNoteFromVerse(id); err != nil {
		respondStoreError(c, err, "unlink note from verse")
		return
	}
	respondSuccess(c, "note unlinked")
}
