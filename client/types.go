package client

import "time"

// The types below mirror the JSON shapes served by the API. They are
// declared here rather than shared with the server so that importing
// the client never drags in the server's database layer.

type BookCategory struct {
	ID      uint      `json:"category_id"`
	Name    string    `json:"category_name"`
	Order   int       `json:"category_order"`
	AddedAt time.Time `json:"dt_added"`
}

type Book struct {
	ID           uint      `json:"book_id"`
	Name         string    `json:"book_name"`
	Abbr         *string   `json:"book_abbr"`
	HebrewName   *string   `json:"hebrew_book_name"`
	TeluguName   *string   `json:"telugu_book_name"`
	Description  *string   `json:"book_description"`
	Header       *string   `json:"book_header"`
	Footer       *string   `json:"book_footer"`
	Index        *int      `json:"book_index"`
	CategoryID   *uint     `json:"category_id"`
	ChapterCount int64     `json:"chapter_count"`
	AddedAt      time.Time `json:"dt_added"`
}

type Chapter struct {
	ID          uint      `json:"chapter_id"`
	BookID      uint      `json:"book_id"`
	Number      string    `json:"chapter_number"`
	Description *string   `json:"chapter_description"`
	Notes       *string   `json:"chapter_notes"`
	AddedAt     time.Time `json:"dt_added"`
	ModifiedAt  time.Time `json:"dt_modified"`
}

type Verse struct {
	ID         uint      `json:"verse_id"`
	ChapterID  uint      `json:"chapter_id"`
	Index      *int      `json:"verse_index"`
	Text       string    `json:"verse"`
	TeluguText *string   `json:"telugu_verse"`
	AddedAt    time.Time `json:"dt_added"`
	ModifiedAt time.Time `json:"dt_modified"`
}

// VerseLinkView is a link oriented so the requested verse is always
// the source endpoint.
type VerseLinkView struct {
	LinkID              uint   `json:"link_id"`
	SourceVerseID       uint   `json:"source_verse_id"`
	TargetVerseID       uint   `json:"target_verse_id"`
	TargetVerseIndex    *int   `json:"target_verse_index"`
	TargetChapterNumber string `json:"target_chapter_number"`
	TargetBookName      string `json:"target_book_name"`
	TargetBookID        uint   `json:"target_book_id"`
	TargetChapterID     uint   `json:"target_chapter_id"`
}

type VerseNoteView struct {
	VerseNoteID uint      `json:"verse_note_id"`
	VerseID     uint      `json:"verse_id"`
	NoteID      uint      `json:"note_id"`
	NoteTitle   *string   `json:"note_title"`
	NoteContent string    `json:"note_content"`
	ModifiedAt  time.Time `json:"dt_modified"`
}

// ChapterVerse is a verse in chapter context, annotated with its
// bidirectional link set and attached notes.
type ChapterVerse struct {
	Verse
	Links []VerseLinkView `json:"links"`
	Notes []VerseNoteView `json:"notes"`
}

// VerseSearchResult is a text-search hit with its resolved location.
type VerseSearchResult struct {
	Verse
	BookName      string `json:"book_name"`
	BookID        uint   `json:"book_id"`
	ChapterNumber string `json:"chapter_number"`
}

// VerseStub is a truncated verse preview from the reference search.
type VerseStub struct {
	VerseID       uint    `json:"verse_id"`
	ChapterID     uint    `json:"chapter_id"`
	VerseIndex    *int    `json:"verse_index"`
	Text          string  `json:"verse"`
	ChapterNumber string  `json:"chapter_number"`
	BookName      string  `json:"book_name"`
	BookIndex     *int    `json:"book_index"`
}

type Note struct {
	ID         uint      `json:"note_id"`
	Title      *string   `json:"note_title"`
	Content    string    `json:"note_content"`
	AddedAt    time.Time `json:"dt_added"`
	ModifiedAt time.Time `json:"dt_modified"`
}

type NoteForVerse struct {
	Note
	VerseNoteID uint `json:"verse_note_id"`
}

type VerseNote struct {
	ID      uint      `json:"verse_note_id"`
	VerseID uint      `json:"verse_id"`
	NoteID  uint      `json:"note_id"`
	AddedAt time.Time `json:"dt_added"`
}

type Tag struct {
	ID          uint      `json:"tag_id"`
	Name        string    `json:"tag_name"`
	Description *string   `json:"tag_description"`
	AddedAt     time.Time `json:"dt_added"`
}

type VerseTag struct {
	ID      uint      `json:"verse_tag_id"`
	VerseID uint      `json:"verse_id"`
	TagID   uint      `json:"tag_id"`
	AddedAt time.Time `json:"dt_added"`
}

type VerseLink struct {
	ID            uint      `json:"link_id"`
	SourceVerseID uint      `json:"source_verse_id"`
	TargetVerseID uint      `json:"target_verse_id"`
	Type          *string   `json:"link_type"`
	Description   *string   `json:"link_description"`
	AddedAt       time.Time `json:"dt_added"`
}

// ResolvedLink is a link for a specific verse with the other endpoint's
// location resolved.
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

type CrossReference struct {
	ID           uint      `json:"cross_ref_id"`
	FromBook     string    `json:"from_book_name"`
	FromChapter  string    `json:"from_chapter"`
	FromVerse    string    `json:"from_verse"`
	ToBook       string    `json:"to_book_name"`
	ToChapter    string    `json:"to_chapter"`
	ToVerse      string    `json:"to_verse"`
	Votes        int       `json:"votes"`
	AddedAt      time.Time `json:"dt_added"`
	FromBookAbbr *string   `json:"from_book_abbr"`
	FromBookID   *uint     `json:"from_book_id"`
	ToBookAbbr   *string   `json:"to_book_abbr"`
	ToBookID     *uint     `json:"to_book_id"`
}

type Stats struct {
	TotalBooks           int64 `json:"totalBooks"`
	TotalChapters        int64 `json:"totalChapters"`
	TotalVerses          int64 `json:"totalVerses"`
	TotalNotes           int64 `json:"totalNotes"`
	TotalTags            int64 `json:"totalTags"`
	TotalVerseLinks      int64 `json:"totalVerseLinks"`
	TotalCrossReferences int64 `json:"totalCrossReferences"`
}
