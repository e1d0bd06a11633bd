// Package verses provides database operations for verse management,
// including the chapter link/note traversal, text search, and the
// batch find & replace operation.
package verses

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

const (
	textSearchLimit      = 500
	referenceSearchLimit = 100
	bookSearchLimit      = 50
	previewLength        = 100
)

// referencePattern recognizes compact citation tokens such as "Yoch3:16":
// a letter prefix, chapter digits, a colon, verse digits.
var referencePattern = regexp.MustCompile(`^[A-Za-z]+\d+:\d+$`)

// chapterNumericOrder sorts purely-numeric chapter labels numerically so
// that chapter "10" follows chapter "2". Non-numeric labels fall back to
// the lexicographic tie-break that follows it in every ORDER BY below.
const chapterNumericOrder = "CASE WHEN c.chapter_number NOT GLOB '*[^0-9]*' THEN CAST(c.chapter_number AS INTEGER) END"

// Repository handles all verse database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new verses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Patch carries the fields of a partial verse update.
type Patch struct {
	ChapterID  *uint   `json:"chapter_id"`
	Index      *int    `json:"verse_index"`
	Text       *string `json:"verse"`
	TeluguText *string `json:"telugu_verse"`
}

func (p Patch) fields() map[string]any {
	fields := map[string]any{}
	if p.ChapterID != nil {
		fields["chapter_id"] = *p.ChapterID
	}
	if p.Index != nil {
		fields["verse_index"] = *p.Index
	}
	if p.Text != nil {
		fields["verse"] = *p.Text
	}
	if p.TeluguText != nil {
		fields["telugu_verse"] = *p.TeluguText
	}
	return fields
}

// LinkView is a verse link oriented so the local verse is always the
// source, regardless of which side of the stored edge it was on. The
// target fields describe the resolved location of the other endpoint.
type LinkView struct {
	LinkID              uint   `json:"link_id"`
	SourceVerseID       uint   `json:"source_verse_id"`
	TargetVerseID       uint   `json:"target_verse_id"`
	TargetVerseIndex    *int   `json:"target_verse_index"`
	TargetChapterNumber string `json:"target_chapter_number"`
	TargetBookName      string `json:"target_book_name"`
	TargetBookID        uint   `json:"target_book_id"`
	TargetChapterID     uint   `json:"target_chapter_id"`
}

// NoteView is a note attached to a verse via the verse_notes table.
type NoteView struct {
	VerseNoteID uint      `json:"verse_note_id"`
	VerseID     uint      `json:"verse_id"`
	NoteID      uint      `json:"note_id"`
	NoteTitle   *string   `json:"note_title"`
	NoteContent string    `json:"note_content"`
	ModifiedAt  time.Time `json:"dt_modified"`
}

// VerseWithLinks is a verse annotated with its bidirectional link set
// and its attached notes.
type VerseWithLinks struct {
	entities.Verse
	Links []LinkView `json:"links"`
	Notes []NoteView `json:"notes"`
}

// SearchResult is a verse enriched with its resolved book and chapter.
type SearchResult struct {
	entities.Verse
	BookName      string `json:"book_name"`
	BookID        uint   `json:"book_id"`
	ChapterNumber string `json:"chapter_number"`
}

// Stub is a truncated verse preview used by the link-authoring search.
type Stub struct {
	VerseID       uint   `json:"verse_id"`
	ChapterID     uint   `json:"chapter_id"`
	VerseIndex    *int   `json:"verse_index"`
	Text          string `json:"verse"`
	ChapterNumber string `json:"chapter_number"`
	BookName      string `json:"book_name"`
	BookIndex     *int   `json:"book_index"`
}

// ReplaceTarget names one (verse, field) pair for the batch replace.
type ReplaceTarget struct {
	VerseID uint   `json:"verse_id"`
	Field   string `json:"field"`
}

// CreateVerse inserts a verse. Fails with ErrReferentialIntegrity when
// the chapter does not exist.
func (r *Repository) CreateVerse(verse *entities.Verse) (*entities.Verse, error) {
	if err := r.db.Create(verse).Error; err != nil {
		return nil, database.Classify(err)
	}
	return verse, nil
}

// GetVerseByID retrieves a verse by ID.
func (r *Repository) GetVerseByID(id uint) (*entities.Verse, error) {
	var verse entities.Verse
	if err := r.db.First(&verse, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &verse, nil
}

// GetAllVerses returns every verse, most recently modified first.
func (r *Repository) GetAllVerses() ([]entities.Verse, error) {
	var verses []entities.Verse
	if err := r.db.Order("dt_modified DESC").Find(&verses).Error; err != nil {
		return nil, database.Classify(err)
	}
	return verses, nil
}

// UpdateVerse applies a partial update.
func (r *Repository) UpdateVerse(id uint, patch Patch) (*entities.Verse, error) {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil, database.ErrNoFieldsProvided
	}

	var verse entities.Verse
	if err := r.db.First(&verse, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	if err := r.db.Model(&verse).Updates(fields).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &verse, nil
}

// DeleteVerse removes a verse and its association rows. Idempotent.
func (r *Repository) DeleteVerse(id uint) error {
	if err := r.db.Delete(&entities.Verse{}, id).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

// linkEndpointRow is one resolved endpoint of one stored link. The
// traversal query yields one row per (link, endpoint) pair.
type linkEndpointRow struct {
	LinkID        uint
	SourceVerseID uint
	TargetVerseID uint
	VerseID       uint
	VerseIndex    *int
	ChapterID     uint
	ChapterNumber string
	BookID        uint
	BookName      string
}

// GetVersesByChapterID returns a chapter's verses in index order, each
// annotated with its bidirectional link set and attached notes. Links
// are grouped per verse: the result is never a flat join.
func (r *Repository) GetVersesByChapterID(chapterID uint) ([]VerseWithLinks, error) {
	var verses []entities.Verse
	err := r.db.Where("chapter_id = ?", chapterID).
		Order("verse_index IS NULL, verse_index ASC, verse_id ASC").
		Find(&verses).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	result := make([]VerseWithLinks, len(verses))
	for i, v := range verses {
		result[i] = VerseWithLinks{Verse: v, Links: []LinkView{}, Notes: []NoteView{}}
	}
	if len(verses) == 0 {
		return result, nil
	}

	verseIDs := make([]uint, len(verses))
	for i, v := range verses {
		verseIDs[i] = v.ID
	}

	// One row per (link, endpoint): every edge touching the chapter,
	// with each endpoint's location resolved through its chapter and book.
	var rows []linkEndpointRow
	err = r.db.Raw(`
		SELECT l.link_id, l.source_verse_id, l.target_verse_id,
		       v.verse_id, v.verse_index,
		       c.chapter_id, c.chapter_number,
		       b.book_id, b.book_name
		FROM verse_links_tbl l
		JOIN verses_tbl v ON v.verse_id IN (l.source_verse_id, l.target_verse_id)
		JOIN chapters_tbl c ON c.chapter_id = v.chapter_id
		JOIN books_tbl b ON b.book_id = c.book_id
		WHERE l.source_verse_id IN ? OR l.target_verse_id IN ?
		ORDER BY l.link_id`, verseIDs, verseIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	// endpoint data keyed by (link, verse) so each local verse can look
	// up the resolved location of the other end of its edges.
	type linkKey struct{ linkID, verseID uint }
	endpoints := make(map[linkKey]linkEndpointRow, len(rows))
	edgesByVerse := make(map[uint][]linkEndpointRow)
	seenEdge := make(map[linkKey]bool)
	for _, row := range rows {
		endpoints[linkKey{row.LinkID, row.VerseID}] = row
	}
	for _, row := range rows {
		for _, localID := range []uint{row.SourceVerseID, row.TargetVerseID} {
			key := linkKey{row.LinkID, localID}
			if seenEdge[key] {
				continue
			}
			seenEdge[key] = true
			edgesByVerse[localID] = append(edgesByVerse[localID], row)
		}
	}

	for i := range result {
		verseID := result[i].ID
		for _, edge := range edgesByVerse[verseID] {
			otherID := edge.SourceVerseID
			if otherID == verseID {
				otherID = edge.TargetVerseID
			}
			other, ok := endpoints[linkKey{edge.LinkID, otherID}]
			if !ok {
				continue
			}
			result[i].Links = append(result[i].Links, LinkView{
				LinkID:              edge.LinkID,
				SourceVerseID:       verseID,
				TargetVerseID:       otherID,
				TargetVerseIndex:    other.VerseIndex,
				TargetChapterNumber: other.ChapterNumber,
				TargetBookName:      other.BookName,
				TargetBookID:        other.BookID,
				TargetChapterID:     other.ChapterID,
			})
		}
	}

	var noteRows []NoteView
	err = r.db.Raw(`
		SELECT vn.verse_note_id, vn.verse_id, vn.note_id,
		       n.note_title, n.note_content, n.dt_modified AS modified_at
		FROM verse_notes_tbl vn
		JOIN notes_tbl n ON n.note_id = vn.note_id
		WHERE vn.verse_id IN ?
		ORDER BY n.dt_modified DESC`, verseIDs).
		Scan(&noteRows).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	notesByVerse := make(map[uint][]NoteView)
	for _, n := range noteRows {
		notesByVerse[n.VerseID] = append(notesByVerse[n.VerseID], n)
	}
	for i := range result {
		if notes, ok := notesByVerse[result[i].ID]; ok {
			result[i].Notes = notes
		}
	}

	return result, nil
}

// TextSearch scans verse text, secondary-language text, and attached
// note content for a case-insensitive substring. When the query looks
// like a compact citation token it instead finds verses that embed that
// literal citation, with a tighter result cap.
func (r *Repository) TextSearch(query string) ([]SearchResult, error) {
	limit := textSearchLimit
	if referencePattern.MatchString(query) {
		limit = referenceSearchLimit
	}
	pattern := "%" + query + "%"

	var results []SearchResult
	err := r.db.Raw(fmt.Sprintf(`
		SELECT DISTINCT v.*, b.book_name, b.book_id, c.chapter_number
		FROM verses_tbl v
		JOIN chapters_tbl c ON c.chapter_id = v.chapter_id
		JOIN books_tbl b ON b.book_id = c.book_id
		LEFT JOIN verse_notes_tbl vn ON vn.verse_id = v.verse_id
		LEFT JOIN notes_tbl n ON n.note_id = vn.note_id
		WHERE LOWER(v.verse) LIKE LOWER(?)
		   OR LOWER(v.telugu_verse) LIKE LOWER(?)
		   OR LOWER(n.note_content) LIKE LOWER(?)
		ORDER BY b.book_index IS NULL, b.book_index,
		         %s, c.chapter_number,
		         v.verse_index IS NULL, v.verse_index
		LIMIT ?`, chapterNumericOrder),
		pattern, pattern, pattern, limit).
		Scan(&results).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results, nil
}

// SearchByBookName resolves a "book-name prefix [chapter number]" query
// into a bounded list of verse stubs with truncated preview text. Used
// by the link-authoring UI.
func (r *Repository) SearchByBookName(query string) ([]Stub, error) {
	prefix, chapter := splitBookQuery(query)
	if prefix == "" {
		return []Stub{}, nil
	}

	sql := `
		SELECT v.verse_id, v.chapter_id, v.verse_index,
		       SUBSTR(v.verse, 1, ?) AS text,
		       c.chapter_number, b.book_name, b.book_index
		FROM verses_tbl v
		JOIN chapters_tbl c ON c.chapter_id = v.chapter_id
		JOIN books_tbl b ON b.book_id = c.book_id
		WHERE LOWER(b.book_name) LIKE LOWER(?)`
	args := []any{previewLength, prefix + "%"}
	if chapter != "" {
		sql += " AND c.chapter_number = ?"
		args = append(args, chapter)
	}
	sql += fmt.Sprintf(`
		ORDER BY b.book_index IS NULL, b.book_index,
		         %s, c.chapter_number,
		         v.verse_index IS NULL, v.verse_index
		LIMIT ?`, chapterNumericOrder)
	args = append(args, bookSearchLimit)

	var stubs []Stub
	if err := r.db.Raw(sql, args...).Scan(&stubs).Error; err != nil {
		return nil, database.Classify(err)
	}
	if stubs == nil {
		stubs = []Stub{}
	}
	return stubs, nil
}

// splitBookQuery tokenizes a query into a book-name prefix and an
// optional trailing chapter number ("Yochanan 3" -> "Yochanan", "3").
func splitBookQuery(query string) (prefix, chapter string) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return "", ""
	}
	last := tokens[len(tokens)-1]
	if len(tokens) > 1 && isDigits(last) {
		return strings.Join(tokens[:len(tokens)-1], " "), last
	}
	return strings.Join(tokens, " "), ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ReplaceText performs the batch find & replace over the given
// (verse, field) targets and returns the number of rows actually
// modified. Each write commits independently: a failure partway through
// leaves earlier writes in place.
func (r *Repository) ReplaceText(search, replacement string, caseSensitive bool, targets []ReplaceTarget) (int64, error) {
	if search == "" {
		return 0, nil
	}

	var pattern *regexp.Regexp
	if !caseSensitive {
		pattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(search))
	}

	var replaced int64
	for _, target := range targets {
		if target.Field != "verse" && target.Field != "telugu_verse" {
			return replaced, fmt.Errorf("unknown replace field %q", target.Field)
		}

		var verse entities.Verse
		if err := r.db.First(&verse, target.VerseID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return replaced, database.Classify(err)
		}

		var content string
		switch target.Field {
		case "verse":
			content = verse.Text
		case "telugu_verse":
			if verse.TeluguText == nil {
				continue
			}
			content = *verse.TeluguText
		}

		var updated string
		if caseSensitive {
			updated = strings.ReplaceAll(content, search, replacement)
		} else {
			updated = pattern.ReplaceAllLiteralString(content, replacement)
		}
		if updated == content {
			continue
		}

		if err := r.db.Model(&verse).Update(target.Field, updated).Error; err != nil {
			return replaced, database.Classify(err)
		}
		replaced++
	}
	return replaced, nil
}
