package client

import (
	"context"
	"fmt"
)

// NewBook is the payload for creating a book. Name is the only
// required field.
type NewBook struct {
	Name        string  `json:"book_name"`
	Abbr        *string `json:"book_abbr,omitempty"`
	HebrewName  *string `json:"hebrew_book_name,omitempty"`
	TeluguName  *string `json:"telugu_book_name,omitempty"`
	Description *string `json:"book_description,omitempty"`
	Header      *string `json:"book_header,omitempty"`
	Footer      *string `json:"book_footer,omitempty"`
	Index       *int    `json:"book_index,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
}

// BookPatch carries the fields of a partial book update. Nil fields
// are left untouched; an all-nil patch is rejected by the server.
type BookPatch struct {
	Name        *string `json:"book_name,omitempty"`
	Abbr        *string `json:"book_abbr,omitempty"`
	HebrewName  *string `json:"hebrew_book_name,omitempty"`
	TeluguName  *string `json:"telugu_book_name,omitempty"`
	Description *string `json:"book_description,omitempty"`
	Header      *string `json:"book_header,omitempty"`
	Footer      *string `json:"book_footer,omitempty"`
	Index       *int    `json:"book_index,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
}

// GetBooks lists every book in display order with chapter counts.
func (c *Client) GetBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.get(ctx, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches one book by id.
func (c *Client) GetBook(ctx context.Context, id uint) (*Book, error) {
	var book Book
	if err := c.get(ctx, fmt.Sprintf("/api/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook creates a book and returns the stored row.
func (c *Client) CreateBook(ctx context.Context, payload NewBook) (*Book, error) {
	var book Book
	if err := c.send(ctx, "POST", "/api/books", payload, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook applies a partial update and returns the updated row.
func (c *Client) UpdateBook(ctx context.Context, id uint, patch BookPatch) (*Book, error) {
	var book Book
	if err := c.send(ctx, "PUT", fmt.Sprintf("/api/books/%d", id), patch, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook deletes a book and, through cascades, its chapters and
// verses. Deleting an absent book is not an error.
func (c *Client) DeleteBook(ctx context.Context, id uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/books/%d", id), nil, nil)
}

// GetBookChapters lists a book's chapters in insertion order.
func (c *Client) GetBookChapters(ctx context.Context, bookID uint) ([]Chapter, error) {
	var chapters []Chapter
	if err := c.get(ctx, fmt.Sprintf("/api/books/%d/chapters", bookID), nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetBookCategories lists the seeded display categories.
func (c *Client) GetBookCategories(ctx context.Context) ([]BookCategory, error) {
	var categories []BookCategory
	if err := c.get(ctx, "/api/book-categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// NewChapter is the payload for creating a chapter.
type NewChapter struct {
	BookID      uint    `json:"book_id"`
	Number      string  `json:"chapter_number"`
	Description *string `json:"chapter_description,omitempty"`
	Notes       *string `json:"chapter_notes,omitempty"`
}

// ChapterPatch carries the fields of a partial chapter update.
type ChapterPatch struct {
	BookID      *uint   `json:"book_id,omitempty"`
	Number      *string `json:"chapter_number,omitempty"`
	Description *string `json:"chapter_description,omitempty"`
	Notes       *string `json:"chapter_notes,omitempty"`
}

// GetChapters lists every chapter, most recently modified first.
func (c *Client) GetChapters(ctx context.Context) ([]Chapter, error) {
	var chapters []Chapter
	if err := c.get(ctx, "/api/chapters", nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetChapter fetches one chapter by id.
func (c *Client) GetChapter(ctx context.Context, id uint) (*Chapter, error) {
	var chapter Chapter
	if err := c.get(ctx, fmt.Sprintf("/api/chapters/%d", id), nil, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

// CreateChapter creates a chapter under an existing book.
func (c *Client) CreateChapter(ctx context.Context, payload NewChapter) (*Chapter, error) {
	var chapter Chapter
	if err := c.send(ctx, "POST", "/api/chapters", payload, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

// UpdateChapter applies a partial update and returns the updated row.
func (c *Client) UpdateChapter(ctx context.Context, id uint, patch ChapterPatch) (*Chapter, error) {
	var chapter Chapter
	if err := c.send(ctx, "PUT", fmt.Sprintf("/api/chapters/%d", id), patch, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeleteChapter deletes a chapter and, through cascades, its verses.
func (c *Client) DeleteChapter(ctx context.Context, id uint) error {
	return c.send(ctx, "DELETE", fmt.Sprintf("/api/chapters/%d", id), nil, nil)
}
