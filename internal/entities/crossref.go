package entities

import "time"

// CrossReference is a denormalized, vote-ranked suggested association
// between two textual coordinates. Unlike VerseLink it references
// verses by (book, chapter, verse) strings, which may not resolve to
// rows that exist locally.
type CrossReference struct {
	ID          uint      `gorm:"column:cross_ref_id;primaryKey" json:"cross_ref_id"`
	FromBook    string    `gorm:"column:from_book_name;size:100;not null;index:ix_cross_refs_from,priority:1" json:"from_book_name"`
	FromChapter string    `gorm:"column:from_chapter;size:20;not null;index:ix_cross_refs_from,priority:2" json:"from_chapter"`
	FromVerse   string    `gorm:"column:from_verse;size:20;not null;index:ix_cross_refs_from,priority:3" json:"from_verse"`
	ToBook      string    `gorm:"column:to_book_name;size:100;not null" json:"to_book_name"`
	ToChapter   string    `gorm:"column:to_chapter;size:20;not null" json:"to_chapter"`
	ToVerse     string    `gorm:"column:to_verse;size:20;not null" json:"to_verse"`
	Votes       int       `gorm:"column:votes" json:"votes"`
	AddedAt     time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`
}

func (CrossReference) TableName() string {
	return "cross_references_tbl"
}
