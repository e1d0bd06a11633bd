package entities

import "time"

// BookCategory groups books for display (e.g., "First Covenant").
// Categories are seeded at startup and read-only through the API.
type BookCategory struct {
	ID      uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name    string    `gorm:"column:category_name;size:100;not null" json:"category_name"`
	Order   int       `gorm:"column:category_order" json:"category_order"`
	AddedAt time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`
}

func (BookCategory) TableName() string {
	return "book_categories_tbl"
}

type Book struct {
	ID          uint      `gorm:"column:book_id;primaryKey" json:"book_id"`
	Name        string    `gorm:"column:book_name;size:255;not null" json:"book_name"`
	Abbr        *string   `gorm:"column:book_abbr;size:20" json:"book_abbr"`
	HebrewName  *string   `gorm:"column:hebrew_book_name;size:255" json:"hebrew_book_name"`
	TeluguName  *string   `gorm:"column:telugu_book_name;size:255" json:"telugu_book_name"`
	Description *string   `gorm:"column:book_description;type:text" json:"book_description"`
	Header      *string   `gorm:"column:book_header;type:text" json:"book_header"`
	Footer      *string   `gorm:"column:book_footer;type:text" json:"book_footer"`
	Index       *int      `gorm:"column:book_index;index" json:"book_index"`
	CategoryID  *uint     `gorm:"column:category_id" json:"category_id"`
	AddedAt     time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`

	Category *BookCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Chapters []Chapter     `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`

	// Populated by the list query, not a stored column.
	ChapterCount int64 `gorm:"->;-:migration" json:"chapter_count"`
}

func (Book) TableName() string {
	return "books_tbl"
}

// Chapter numbers are strings on purpose: labels like "6a" exist in the data.
type Chapter struct {
	ID          uint      `gorm:"column:chapter_id;primaryKey" json:"chapter_id"`
	BookID      uint      `gorm:"column:book_id;index;not null" json:"book_id"`
	Number      string    `gorm:"column:chapter_number;size:20;not null" json:"chapter_number"`
	Description *string   `gorm:"column:chapter_description;type:text" json:"chapter_description"`
	Notes       *string   `gorm:"column:chapter_notes;type:text" json:"chapter_notes"`
	AddedAt     time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`
	ModifiedAt  time.Time `gorm:"column:dt_modified;autoUpdateTime" json:"dt_modified"`

	Verses []Verse `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Chapter) TableName() string {
	return "chapters_tbl"
}

type Verse struct {
	ID         uint      `gorm:"column:verse_id;primaryKey" json:"verse_id"`
	ChapterID  uint      `gorm:"column:chapter_id;index;not null" json:"chapter_id"`
	Index      *int      `gorm:"column:verse_index" json:"verse_index"`
	Text       string    `gorm:"column:verse;type:text;not null" json:"verse"`
	TeluguText *string   `gorm:"column:telugu_verse;type:text" json:"telugu_verse"`
	AddedAt    time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`
	ModifiedAt time.Time `gorm:"column:dt_modified;autoUpdateTime" json:"dt_modified"`
}

func (Verse) TableName() string {
	return "verses_tbl"
}
