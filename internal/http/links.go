package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/links"
	"github.com/rstne/scriptura/internal/entities"
)

// LinkStore defines database operations for verse links.
type LinkStore interface {
	CreateLink(link *entities.VerseLink) (*entities.VerseLink, error)
	GetLinkByID(id uint) (*entities.VerseLink, error)
	GetAllLinks() ([]entities.VerseLink, error)
	DeleteLink(id uint) error
	GetLinksForVerse(verseID uint) ([]links.ResolvedLink, error)
}

type LinksController struct {
	store LinkStore
}

func NewLinksController(store LinkStore) *LinksController {
	return &LinksController{store: store}
}

// GetAllLinks returns every stored link row
// GET /api/verse-links
func (lc *LinksController) GetAllLinks(c *gin.Context) {
	allLinks, err := lc.store.GetAllLinks()
	if err != nil {
		respondStoreError(c, err, "get all verse links")
		return
	}
	c.JSON(http.StatusOK, allLinks)
}

// GetLink returns a single link row
// GET /api/verse-links/:id
func (lc *LinksController) GetLink(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	link, err := lc.store.GetLinkByID(id)
	if err != nil {
		respondStoreError(c, err, "get verse link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// CreateLink creates a directed verse link; the pair is unique
// POST /api/verse-links
func (lc *LinksController) CreateLink(c *gin.Context) {
	var req struct {
		SourceVerseID uint    `json:"source_verse_id" binding:"required"`
		TargetVerseID uint    `json:"target_verse_id" binding:"required"`
		Type          *string `json:"link_type"`
		Description   *string `json:"link_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "source_verse_id and target_verse_id are required")
		return
	}

	link, err := lc.store.CreateLink(&entities.VerseLink{
		SourceVerseID: req.SourceVerseID,
		TargetVerseID: req.TargetVerseID,
		Type:          req.Type,
		Description:   req.Description,
	})
	if err != nil {
		respondStoreError(c, err, "create verse link")
		return
	}
	respondCreated(c, link)
}

// DeleteLink removes a link row
// DELETE /api/verse-links/:id
func (lc *LinksController) DeleteLink(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := lc.store.DeleteLink(id); err != nil {
		respondStoreError(c, err, "delete verse link")
		return
	}
	respondSuccess(c, "verse link deleted")
}

// GetVerseLinks returns a verse's undirected link set, each edge
// resolved to the other endpoint's location
// GET /api/verses/:id/links
func (lc *LinksController) GetVerseLinks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resolved, err := lc.store.GetLinksForVerse(id)
	if err != nil {
		respondStoreError(c, err, "get verse links")
		return
	}
	c.JSON(http.StatusOK, resolved)
}
