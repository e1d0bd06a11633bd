package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/chapters"
	"github.com/rstne/scriptura/internal/entities"
)

// ChapterStore defines database operations for chapter management.
type ChapterStore interface {
	CreateChapter(chapter *entities.Chapter) (*entities.Chapter, error)
	GetChapterByID(id uint) (*entities.Chapter, error)
	GetAllChapters() ([]entities.Chapter, error)
	UpdateChapter(id uint, patch chapters.Patch) (*entities.Chapter, error)
	DeleteChapter(id uint) error
}

type ChaptersController struct {
	store ChapterStore
}

func NewChaptersController(store ChapterStore) *ChaptersController {
	return &ChaptersController{store: store}
}

// GetAllChapters returns all chapters, most recently modified first
// GET /api/chapters
func (cc *ChaptersController) GetAllChapters(c *gin.Context) {
	allChapters, err := cc.store.GetAllChapters()
	if err != nil {
		respondStoreError(c, err, "get all chapters")
		return
	}
	c.JSON(http.StatusOK, allChapters)
}

// GetChapter returns a single chapter
// GET /api/chapters/:id
func (cc *ChaptersController) GetChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapter, err := cc.store.GetChapterByID(id)
	if err != nil {
		respondStoreError(c, err, "get chapter")
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// CreateChapter creates a new chapter under an existing book
// POST /api/chapters
func (cc *ChaptersController) CreateChapter(c *gin.Context) {
	var req struct {
		BookID      uint    `json:"book_id" binding:"required"`
		Number      string  `json:"chapter_number" binding:"required"`
		Description *string `json:"chapter_description"`
		Notes       *string `json:"chapter_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book_id and chapter_number are required")
		return
	}

	chapter, err := cc.store.CreateChapter(&entities.Chapter{
		BookID:      req.BookID,
		Number:      req.Number,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		respondStoreError(c, err, "create chapter")
		return
	}
	respondCreated(c, chapter)
}

// UpdateChapter applies a partial update to a chapter
// PUT /api/chapters/:id
func (cc *ChaptersController) UpdateChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch chapters.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	chapter, err := cc.store.UpdateChapter(id, patch)
	if err != nil {
		respondStoreError(c, err, "update chapter")
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// DeleteChapter removes a chapter and, through cascades, its verses
// DELETE /api/chapters/:id
func (cc *ChaptersController) DeleteChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.DeleteChapter(id); err != nil {
		respondStoreError(c, err, "delete chapter")
		return
	}
	respondSuccess(c, "chapter deleted")
}
