// Package links provides database operations for the directed
// verse-link table and its undirected traversal.
package links

import (
	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

// Repository handles all verse-link database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new links repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ResolvedLink is one edge of a verse's undirected link set, oriented
// so the queried verse is the source. The target fields locate the
// other endpoint.
type ResolvedLink struct {
	LinkID              uint    `json:"link_id"`
	SourceVerseID       uint    `json:"source_verse_id"`
	TargetVerseID       uint    `json:"target_verse_id"`
	LinkType            *string `json:"link_type"`
	LinkDescription     *string `json:"link_description"`
	TargetVerseIndex    *int    `json:"target_verse_index"`
	TargetChapterNumber string  `json:"target_chapter_number"`
	TargetBookName      string  `json:"target_book_name"`
	TargetBookID        uint    `json:"target_book_id"`
	TargetChapterID     uint    `json:"target_chapter_id"`
}

// CreateLink inserts a directed edge. The directed pair is unique; a
// duplicate yields ErrConflict, a missing endpoint
// ErrReferentialIntegrity.
func (r *Repository) CreateLink(link *entities.VerseLink) (*entities.VerseLink, error) {
	if err := r.db.Create(link).Error; err != nil {
		return nil, database.Classify(err)
	}
	return link, nil
}

// GetLinkByID retrieves a link row by ID.
func (r *Repository) GetLinkByID(id uint) (*entities.VerseLink, error) {
	var link entities.VerseLink
	if err := r.db.First(&link, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &link, nil
}

// GetAllLinks returns every link row in insertion order.
func (r *Repository) GetAllLinks() ([]entities.VerseLink, error) {
	var links []entities.VerseLink
	if err := r.db.Order("link_id ASC").Find(&links).Error; err != nil {
		return nil, database.Classify(err)
	}
	return links, nil
}

// DeleteLink removes a link row. Idempotent.
func (r *Repository) DeleteLink(id uint) error {
	if err := r.db.Delete(&entities.VerseLink{}, id).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// GetLinksForVerse returns a verse's undirected link set: every edge
// where it is source plus every edge where it is target, each resolved
// to the other endpoint's book, chapter, and verse index.
func (r *Repository) GetLinksForVerse(verseID uint) ([]ResolvedLink, error) {
	var links []ResolvedLink
	err := r.db.Raw(`
		SELECT l.link_id,
		       ? AS source_verse_id,
		       v.verse_id AS target_verse_id,
		       l.link_type, l.link_description,
		       v.verse_index AS target_verse_index,
		       c.chapter_number AS target_chapter_number,
		       b.book_name AS target_book_name,
		       b.book_id AS target_book_id,
		       c.chapter_id AS target_chapter_id
		FROM verse_links_tbl l
		JOIN verses_tbl v
		  ON v.verse_id = CASE WHEN l.source_verse_id = ? THEN l.target_verse_id ELSE l.source_verse_id END
		JOIN chapters_tbl c ON c.chapter_id = v.chapter_id
		JOIN books_tbl b ON b.book_id = c.book_id
		WHERE l.source_verse_id = ? OR l.target_verse_id = ?
		ORDER BY l.link_id ASC`,
		verseID, verseID, verseID, verseID).
		Scan(&links).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if links == nil {
		links = []ResolvedLink{}
	}
	return links, nil
}
