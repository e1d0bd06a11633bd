package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/verses"
	"github.com/rstne/scriptura/internal/entities"
)

// VerseStore defines database operations for verse management and the
// verse-level search and replace operations.
type VerseStore interface {
	CreateVerse(verse *entities.Verse) (*entities.Verse, error)
	GetVerseByID(id uint) (*entities.Verse, error)
	GetAllVerses() ([]entities.Verse, error)
	UpdateVerse(id uint, patch verses.Patch) (*entities.Verse, error)
	DeleteVerse(id uint) error
	GetVersesByChapterID(chapterID uint) ([]verses.VerseWithLinks, error)
	TextSearch(query string) ([]verses.SearchResult, error)
	SearchByBookName(query string) ([]verses.Stub, error)
	ReplaceText(search, replacement string, caseSensitive bool, targets []verses.ReplaceTarget) (int64, error)
}

type VersesController struct {
	store VerseStore
}

func NewVersesController(store VerseStore) *VersesController {
	return &VersesController{store: store}
}

// GetAllVerses returns all verses, most recently modified first
// GET /api/verses
func (vc *VersesController) GetAllVerses(c *gin.Context) {
	allVerses, err := vc.store.GetAllVerses()
	if err != nil {
		respondStoreError(c, err, "get all verses")
		return
	}
	c.JSON(http.StatusOK, allVerses)
}

// GetVerse returns a single verse
// GET /api/verses/:id
func (vc *VersesController) GetVerse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	verse, err := vc.store.GetVerseByID(id)
	if err != nil {
		respondStoreError(c, err, "get verse")
		return
	}
	c.JSON(http.StatusOK, verse)
}

// CreateVerse creates a new verse under an existing chapter
// POST /api/verses
func (vc *VersesController) CreateVerse(c *gin.Context) {
	var req struct {
		ChapterID  uint    `json:"chapter_id" binding:"required"`
		Index      *int    `json:"verse_index"`
		Text       string  `json:"verse" binding:"required"`
		TeluguText *string `json:"telugu_verse"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "chapter_id and verse are required")
		return
	}

	verse, err := vc.store.CreateVerse(&entities.Verse{
		ChapterID:  req.ChapterID,
		Index:      req.Index,
		Text:       req.Text,
		TeluguText: req.TeluguText,
	})
	if err != nil {
		respondStoreError(c, err, "create verse")
		return
	}
	respondCreated(c, verse)
}

// UpdateVerse applies a partial update to a verse
// PUT /api/verses/:id
func (vc *VersesController) UpdateVerse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch verses.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	verse, err := vc.store.UpdateVerse(id, patch)
	if err != nil {
		respondStoreError(c, err, "update verse")
		return
	}
	c.JSON(http.StatusOK, verse)
}

// DeleteVerse removes a verse and its association rows
// DELETE /api/verses/:id
func (vc *VersesController) DeleteVerse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := vc.store.DeleteVerse(id); err != nil {
		respondStoreError(c, err, "delete verse")
		return
	}
	respondSuccess(c, "verse deleted")
}

// GetChapterVerses returns a chapter's verses enriched with their
// bidirectional link sets and attached notes
// GET /api/chapters/:id/verses
func (vc *VersesController) GetChapterVerses(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	enriched, err := vc.store.GetVersesByChapterID(id)
	if err != nil {
		respondStoreError(c, err, "get chapter verses")
		return
	}
	c.JSON(http.StatusOK, enriched)
}

// SearchVerses resolves a book-name prefix query into verse stubs,
// used when authoring links
// GET /api/verses/search?q=
func (vc *VersesController) SearchVerses(c *gin.Context) {
	query, ok := requireQuery(c, "q")
	if !ok {
		return
	}

	stubs, err := vc.store.SearchByBookName(query)
	if err != nil {
		respondStoreError(c, err, "search verses")
		return
	}
	c.JSON(http.StatusOK, stubs)
}

// TextSearch scans verse text, secondary text, and note content for a
// case-insensitive substring
// GET /api/verses/text-search?q=  (also served at /api/verses/search-text)
func (vc *VersesController) TextSearch(c *gin.Context) {
	query, ok := requireQuery(c, "q")
	if !ok {
		return
	}

	results, err := vc.store.TextSearch(query)
	if err != nil {
		respondStoreError(c, err, "text search")
		return
	}
	c.JSON(http.StatusOK, results)
}

// ReplaceText runs the batch find & replace and reports how many rows
// actually changed
// POST /api/verses/replace-text
func (vc *VersesController) ReplaceText(c *gin.Context) {
	var req struct {
		Search        string                 `json:"search" binding:"required"`
		Replace       string                 `json:"replace"`
		CaseSensitive bool                   `json:"case_sensitive"`
		Targets       []verses.ReplaceTarget `json:"targets" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "search and targets are required")
		return
	}

	replaced, err := vc.store.ReplaceText(req.Search, req.Replace, req.CaseSensitive, req.Targets)
	if err != nil {
		respondStoreError(c, err, "replace text")
		return
	}
	c.JSON(http.StatusOK, gin.H{"replacedCount": replaced})
}
