package entities

import "time"

// Note is a standalone annotation; it belongs to no verse until a
// VerseNote row links it.
type Note struct {
	ID         uint      `gorm:"column:note_id;primaryKey" json:"note_id"`
	Title      *string   `gorm:"column:note_title;size:255" json:"note_title"`
	Content    string    `gorm:"column:note_content;type:text;not null" json:"note_content"`
	AddedAt    time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`
	ModifiedAt time.Time `gorm:"column:dt_modified;autoUpdateTime" json:"dt_modified"`
}

func (Note) TableName() string {
	return "notes_tbl"
}

type VerseNote struct {
	ID      uint      `gorm:"column:verse_note_id;primaryKey" json:"verse_note_id"`
	VerseID uint      `gorm:"column:verse_id;not null;uniqueIndex:ux_verse_note_pair" json:"verse_id"`
	NoteID  uint      `gorm:"column:note_id;not null;uniqueIndex:ux_verse_note_pair" json:"note_id"`
	AddedAt time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`

	Verse Verse `gorm:"foreignKey:VerseID;constraint:OnDelete:CASCADE" json:"-"`
	Note  Note  `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VerseNote) TableName() string {
	return "verse_notes_tbl"
}

// VerseLink is stored as a directed edge but displayed undirected: a
// verse's linked set is the union of edges where it is source and
// edges where it is target.
type VerseLink struct {
	ID            uint      `gorm:"column:link_id;primaryKey" json:"link_id"`
	SourceVerseID uint      `gorm:"column:source_verse_id;not null;uniqueIndex:ux_verse_link_pair" json:"source_verse_id"`
	TargetVerseID uint      `gorm:"column:target_verse_id;not null;uniqueIndex:ux_verse_link_pair" json:"target_verse_id"`
	Type          *string   `gorm:"column:link_type;size:50" json:"link_type"`
	Description   *string   `gorm:"column:link_description;type:text" json:"link_description"`
	AddedAt       time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`

	SourceVerse Verse `gorm:"foreignKey:SourceVerseID;constraint:OnDelete:CASCADE" json:"-"`
	TargetVerse Verse `gorm:"foreignKey:TargetVerseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VerseLink) TableName() string {
	return "verse_links_tbl"
}

type Tag struct {
	ID          uint      `gorm:"column:tag_id;primaryKey" json:"tag_id"`
	Name        string    `gorm:"column:tag_name;size:100;not null;uniqueIndex" json:"tag_name"`
	Description *string   `gorm:"column:tag_description;type:text" json:"tag_description"`
	AddedAt     time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`
}

func (Tag) TableName() string {
	return "tags_tbl"
}

type VerseTag struct {
	ID      uint      `gorm:"column:verse_tag_id;primaryKey" json:"verse_tag_id"`
	VerseID uint      `gorm:"column:verse_id;not null;uniqueIndex:ux_verse_tag_pair" json:"verse_id"`
	TagID   uint      `gorm:"column:tag_id;not null;uniqueIndex:ux_verse_tag_pair" json:"tag_id"`
	AddedAt time.Time `gorm:"column:dt_added;autoCreateTime" json:"dt_added"`

	Verse Verse `gorm:"foreignKey:VerseID;constraint:OnDelete:CASCADE" json:"-"`
	Tag   Tag   `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VerseTag) TableName() string {
	return "verse_tags_tbl"
}
