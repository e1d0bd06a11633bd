package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/tags"
	"github.com/rstne/scriptura/internal/entities"
)

// TagStore defines database operations for tags and verse-tag
// associations.
type TagStore interface {
	CreateTag(tag *entities.Tag) (*entities.Tag, error)
	GetTagByID(id uint) (*entities.Tag, error)
	GetAllTags() ([]entities.Tag, error)
	UpdateTag(id uint, patch tags.Patch) (*entities.Tag, error)
	DeleteTag(id uint) error
	LinkTagToVerse(verseID, tagID uint) (*entities.VerseTag, error)
	UnlinkTagFromVerse(verseTagID uint) error
	GetTagsByVerseID(verseID uint) ([]entities.Tag, error)
	GetVerseIDsByTagID(tagID uint) ([]uint, error)
}

type TagsController struct {
	store TagStore
}

func NewTagsController(store TagStore) *TagsController {
	return &TagsController{store: store}
}

// GetAllTags returns all tags ordered by name
// GET /api/tags
func (tc *TagsController) GetAllTags(c *gin.Context) {
	allTags, err := tc.store.GetAllTags()
	if err != nil {
		respondStoreError(c, err, "get all tags")
		return
	}
	c.JSON(http.StatusOK, allTags)
}

// GetTag returns a single tag
// GET /api/tags/:id
func (tc *TagsController) GetTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tag, err := tc.store.GetTagByID(id)
	if err != nil {
		respondStoreError(c, err, "get tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// CreateTag creates a new tag; tag names are unique
// POST /api/tags
func (tc *TagsController) CreateTag(c *gin.Context) {
	var req struct {
		Name        string  `json:"tag_name" binding:"required"`
		Description *string `json:"tag_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "tag_name is required")
		return
	}

	tag, err := tc.store.CreateTag(&entities.Tag{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondStoreError(c, err, "create tag")
		return
	}
	respondCreated(c, tag)
}

// UpdateTag applies a partial update to a tag
// PUT /api/tags/:id
func (tc *TagsController) UpdateTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch tags.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	tag, err := tc.store.UpdateTag(id, patch)
	if err != nil {
		respondStoreError(c, err, "update tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag and its verse associations
// DELETE /api/tags/:id
func (tc *TagsController) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.store.DeleteTag(id); err != nil {
		respondStoreError(c, err, "delete tag")
		return
	}
	respondSuccess(c, "tag deleted")
}

// GetVerseTags returns the tags attached to a verse
// GET /api/verses/:id/tags
func (tc *TagsController) GetVerseTags(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	verseTags, err := tc.store.GetTagsByVerseID(id)
	if err != nil {
		respondStoreError(c, err, "get verse tags")
		return
	}
	c.JSON(http.StatusOK, verseTags)
}

// GetTagVerses returns the ids of verses carrying a tag
// GET /api/tags/:id/verses
func (tc *TagsController) GetTagVerses(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	verseIDs, err := tc.store.GetVerseIDsByTagID(id)
	if err != nil {
		respondStoreError(c, err, "get tag verses")
		return
	}
	c.JSON(http.StatusOK, verseIDs)
}

// LinkTag attaches a tag to a verse
// POST /api/verse-tags
func (tc *TagsController) LinkTag(c *gin.Context) {
	var req struct {
		VerseID uint `json:"verse_id" binding:"required"`
		TagID   uint `json:"tag_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "verse_id and tag_id are required")
		return
	}

	verseTag, err := tc.store.LinkTagToVerse(req.VerseID, req.TagID)
	if err != nil {
		respondStoreError(c, err, "link tag to verse")
		return
	}
	respondCreated(c, verseTag)
}

// UnlinkTag removes a verse-tag association by its id
// DELETE /api/verse-tags/:id
func (tc *TagsController) UnlinkTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.store.UnlinkTagFromVerse(id); err != nil {
		respondStoreError(c, err, "unlink tag from verse")
		return
	}
	respondSuccess(c, "tag unlinked")
}
