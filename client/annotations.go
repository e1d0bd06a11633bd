package client

import (
	"context"
	"fmt"
)

// NewNote is the payload for creating a note. Content is required.
type NewNote struct {
	Title   *string `json:"note_title,omitempty"`
	Content string  `json:"note_content"`
}

// NotePatch carries the fields of a partial note update.
type NotePatch struct {
	Title   *string `json:"note_title,omitempty"`
	Content *string `json:"note_content,omitempty"`
}

// GetNotes lists every note.
func (c *Client) GetNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.get(ctx, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote fetches one note by id.
func (c *Client) GetNote(ctx context.Context, id uint) (*Note, error) {
	var note Note
	if err := c.get(ctx, fmt.Sprintf("/api/notes/%d", id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateNote creates a standalone note; attach it to verses with
// LinkNoteToVerse.
func (c *Client) CreateNote(ctx context.Context, payload NewNote) (*Note, error) {
	var note Note
	if err := c.send(ctx, "POST", "/api/notes", payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial update and returns the updated row.
func (c *Client) UpdateNote(ctx context.Context, id uint, patch NotePatch) (*Note, error) {
	var note Note
	if err := c.send(ctx, "PUT", fmt.Sprintf("/api/notes/%d", id), patch, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes a note and its verse attachments.
func (c *Client) DeleteNote(ctx context.Context, id uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/notes/%d", id), nil, nil)
}

// GetVerseNotes lists the notes attached to a verse, most recently
// modified first.
func (c *Client) GetVerseNotes(ctx context.Context, verseID uint) ([]NoteForVerse, error) {
	var notes []NoteForVerse
	if err := c.get(ctx, fmt.Sprintf("/api/verses/%d/notes", verseID), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNoteVerses lists the ids of verses a note is attached to.
func (c *Client) GetNoteVerses(ctx context.Context, noteID uint) ([]uint, error) {
	var verseIDs []uint
	if err := c.get(ctx, fmt.Sprintf("/api/notes/%d/verses", noteID), nil, &verseIDs); err != nil {
		return nil, err
	}
	return verseIDs, nil
}

// LinkNoteToVerse attaches a note to a verse. Attaching the same pair
// twice is a conflict.
func (c *Client) LinkNoteToVerse(ctx context.Context, verseID, noteID uint) (*VerseNote, error) {
	payload := struct {
		VerseID uint `json:"verse_id"`
		NoteID  uint `json:"note_id"`
	}{VerseID: verseID, NoteID: noteID}

	var link VerseNote
	if err := c.send(ctx, "POST", "/api/verse-notes", payload, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// UnlinkNoteFromVerse removes a note attachment by its own id; the
// note itself survives.
func (c *Client) UnlinkNoteFromVerse(ctx context.Context, verseNoteID uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/verse-notes/%d", verseNoteID), nil, nil)
}

// NewTag is the payload for creating a tag. Names are unique.
type NewTag struct {
	Name        string  `json:"tag_name"`
	Description *string `json:"tag_description,omitempty"`
}

// TagPatch carries the fields of a partial tag update.
type TagPatch struct {
	Name        *string `json:"tag_name,omitempty"`
	Description *string `json:"tag_description,omitempty"`
}

// GetTags lists every tag in name order.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, "/api/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag fetches one tag by id.
func (c *Client) GetTag(ctx context.Context, id uint) (*Tag, error) {
	var tag Tag
	if err := c.get(ctx, fmt.Sprintf("/api/tags/%d", id), nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a tag. A duplicate name is a conflict.
func (c *Client) CreateTag(ctx context.Context, payload NewTag) (*Tag, error) {
	var tag Tag
	if err := c.send(ctx, "POST", "/api/tags", payload, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag applies a partial update and returns the updated row.
func (c *Client) UpdateTag(ctx context.Context, id uint, patch TagPatch) (*Tag, error) {
	var tag Tag
	if err := c.send(ctx, "PUT", fmt.Sprintf("/api/tags/%d", id), patch, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag deletes a tag and its verse assignments.
func (c *Client) DeleteTag(ctx context.Context, id uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/tags/%d", id), nil, nil)
}

// GetVerseTags lists the tags assigned to a verse.
func (c *Client) GetVerseTags(ctx context.Context, verseID uint) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, fmt.Sprintf("/api/verses/%d/tags", verseID), nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagVerses lists the ids of verses carrying a tag.
func (c *Client) GetTagVerses(ctx context.Context, tagID uint) ([]uint, error) {
	var verseIDs []uint
	if err := c.get(ctx, fmt.Sprintf("/api/tags/%d/verses", tagID), nil, &verseIDs); err != nil {
		return nil, err
	}
	return verseIDs, nil
}

// TagVerse assigns a tag to a verse. Assigning the same pair twice is
// a conflict.
func (c *Client) TagVerse(ctx context.Context, verseID, tagID uint) (*VerseTag, error) {
	payload := struct {
		VerseID uint `json:"verse_id"`
		TagID   uint `json:"tag_id"`
	}{VerseID: verseID, TagID: tagID}

	var assignment VerseTag
	if err := c.send(ctx, "POST", "/api/verse-tags", payload, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UntagVerse removes a tag assignment by its own id.
func (c *Client) UntagVerse(ctx context.Context, verseTagID uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/verse-tags/%d", verseTagID), nil, nil)
}

// NewVerseLink is the payload for linking two verses.
type NewVerseLink struct {
	SourceVerseID uint    `json:"source_verse_id"`
	TargetVerseID uint    `json:"target_verse_id"`
	Type          *string `json:"link_type,omitempty"`
	Description   *string `json:"link_description,omitempty"`
}

// GetVerseLinksAll lists every stored link edge.
func (c *Client) GetVerseLinksAll(ctx context.Context) ([]VerseLink, error) {
	var links []VerseLink
	if err := c.get(ctx, "/api/verse-links", nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// GetVerseLink fetches one link by id.
func (c *Client) GetVerseLink(ctx context.Context, id uint) (*VerseLink, error) {
	var link VerseLink
	if err := c.get(ctx, fmt.Sprintf("/api/verse-links/%d", id), nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateVerseLink links two verses. The stored edge is directed but
// traversal treats it as undirected; repeating the same ordered pair
// is a conflict.
func (c *Client) CreateVerseLink(ctx context.Context, payload NewVerseLink) (*VerseLink, error) {
	var link VerseLink
	if err := c.send(ctx, "POST", "/api/verse-links", payload, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteVerseLink removes a link edge; both verses survive.
func (c *Client) DeleteVerseLink(ctx context.Context, id uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/verse-links/%d", id), nil, nil)
}

// GetVerseLinks lists a verse's links from either direction, with the
// other endpoint's location resolved.
func (c *Client) GetVerseLinks(ctx context.Context, verseID uint) ([]ResolvedLink, error) {
	var links []ResolvedLink
	if err := c.get(ctx, fmt.Sprintf("/api/verses/%d/links", verseID), nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}
