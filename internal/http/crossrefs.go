package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/crossrefs"
)

// CrossRefStore defines database operations for cross-reference lookup.
type CrossRefStore interface {
	GetByCoordinate(book, chapter, verse string) ([]crossrefs.View, error)
	GetByBookID(bookID uint, chapter, verse string) ([]crossrefs.View, error)
}

// CrossRefImporter enqueues background bulk imports of cross-reference
// data files.
type CrossRefImporter interface {
	EnqueueImport(path string) error
}

type CrossRefsController struct {
	store    CrossRefStore
	importer CrossRefImporter
}

func NewCrossRefsController(store CrossRefStore, importer CrossRefImporter) *CrossRefsController {
	return &CrossRefsController{store: store, importer: importer}
}

// GetCrossReferences returns the vote-ranked cross-references for a
// coordinate. The book may be keyed by integer id (bookId) or by name
// (book); both resolve to the same rows.
// GET /api/cross-references?bookId=&chapter=&verse=
func (xc *CrossRefsController) GetCrossReferences(c *gin.Context) {
	chapter, ok := requireQuery(c, "chapter")
	if !ok {
		return
	}
	verse, ok := requireQuery(c, "verse")
	if !ok {
		return
	}

	if bookIDStr := c.Query("bookId"); bookIDStr != "" {
		bookID, err := strconv.ParseUint(bookIDStr, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid bookId")
			return
		}
		refs, err := xc.store.GetByBookID(uint(bookID), chapter, verse)
		if err != nil {
			respondStoreError(c, err, "get cross-references by book id")
			return
		}
		c.JSON(http.StatusOK, refs)
		return
	}

	book := c.Query("book")
	if book == "" {
		respondBadRequest(c, "bookId or book is required")
		return
	}
	refs, err := xc.store.GetByCoordinate(book, chapter, verse)
	if err != nil {
		respondStoreError(c, err, "get cross-references")
		return
	}
	c.JSON(http.StatusOK, refs)
}

// ImportCrossReferences enqueues a background bulk import of a
// tab-separated cross-reference data file
// POST /api/cross-references/import
func (xc *CrossRefsController) ImportCrossReferences(c *gin.Context) {
	if xc.importer == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue is disabled"})
		return
	}

	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "path is required")
		return
	}

	if err := xc.importer.EnqueueImport(req.Path); err != nil {
		respondStoreError(c, err, "enqueue cross-reference import")
		return
	}
	respondAccepted(c, "cross-reference import queued")
}
