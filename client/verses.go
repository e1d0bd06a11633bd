package client

import (
	"context"
	"fmt"
	"net/url"
)

// NewVerse is the payload for creating a verse.
type NewVerse struct {
	ChapterID  uint    `json:"chapter_id"`
	Index      *int    `json:"verse_index,omitempty"`
	Text       string  `json:"verse"`
	TeluguText *string `json:"telugu_verse,omitempty"`
}

// VersePatch carries the fields of a partial verse update.
type VersePatch struct {
	ChapterID  *uint   `json:"chapter_id,omitempty"`
	Index      *int    `json:"verse_index,omitempty"`
	Text       *string `json:"verse,omitempty"`
	TeluguText *string `json:"telugu_verse,omitempty"`
}

// ReplaceTarget names one (verse, field) pair for the batch replace.
// Field is "verse" or "telugu_verse".
type ReplaceTarget struct {
	VerseID uint   `json:"verse_id"`
	Field   string `json:"field"`
}

// GetVerses lists every verse.
func (c *Client) GetVerses(ctx context.Context) ([]Verse, error) {
	var verses []Verse
	if err := c.get(ctx, "/api/verses", nil, &verses); err != nil {
		return nil, err
	}
	return verses, nil
}

// GetVerse fetches one verse by id.
func (c *Client) GetVerse(ctx context.Context, id uint) (*Verse, error) {
	var verse Verse
	if err := c.get(ctx, fmt.Sprintf("/api/verses/%d", id), nil, &verse); err != nil {
		return nil, err
	}
	return &verse, nil
}

// CreateVerse creates a verse under an existing chapter.
func (c *Client) CreateVerse(ctx context.Context, payload NewVerse) (*Verse, error) {
	var verse Verse
	if err := c.send(ctx, "POST", "/api/verses", payload, &verse); err != nil {
		return nil, err
	}
	return &verse, nil
}

// UpdateVerse applies a partial update and returns the updated row.
func (c *Client) UpdateVerse(ctx context.Context, id uint, patch VersePatch) (*Verse, error) {
	var verse Verse
	if err := c.send(ctx, "PUT", fmt.Sprintf("/api/verses/%d", id), patch, &verse); err != nil {
		return nil, err
	}
	return &verse, nil
}

// DeleteVerse deletes a verse and its annotations through cascades.
func (c *Client) DeleteVerse(ctx context.Context, id uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/verses/%d", id), nil, nil)
}

// GetChapterVerses returns a chapter's verses in reading order, each
// annotated with its bidirectional links and attached notes.
func (c *Client) GetChapterVerses(ctx context.Context, chapterID uint) ([]ChapterVerse, error) {
	var verses []ChapterVerse
	if err := c.get(ctx, fmt.Sprintf("/api/chapters/%d/verses", chapterID), nil, &verses); err != nil {
		return nil, err
	}
	return verses, nil
}

// SearchVerses runs the book-name reference search (e.g. "Bereshith 1")
// and returns truncated verse previews for link authoring.
func (c *Client) SearchVerses(ctx context.Context, query string) ([]VerseStub, error) {
	var stubs []VerseStub
	params := url.Values{"q": {query}}
	if err := c.get(ctx, "/api/verses/search", params, &stubs); err != nil {
		return nil, err
	}
	return stubs, nil
}

// TextSearch runs the full-text search over verse text, translations,
// and attached notes, returning hits with their resolved locations.
func (c *Client) TextSearch(ctx context.Context, query string) ([]VerseSearchResult, error) {
	var results []VerseSearchResult
	params := url.Values{"q": {query}}
	if err := c.get(ctx, "/api/verses/text-search", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ReplaceText runs a batch find & replace over the named targets and
// returns the number of rows that actually changed.
func (c *Client) ReplaceText(ctx context.Context, search, replace string, caseSensitive bool, targets []ReplaceTarget) (int64, error) {
	payload := struct {
		Search        string          `json:"search"`
		Replace       string          `json:"replace"`
		CaseSensitive bool            `json:"case_sensitive"`
		Targets       []ReplaceTarget `json:"targets"`
	}{
		Search:        search,
		Replace:       replace,
		CaseSensitive: caseSensitive,
		Targets:       targets,
	}

	var resp struct {
		ReplacedCount int64 `json:"replacedCount"`
	}
	if err := c.send(ctx, "POST", "/api/verses/replace-text", payload, &resp); err != nil {
		return 0, err
	}
	return resp.ReplacedCount, nil
}
