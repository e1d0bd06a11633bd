package client

import (
	"context"
	"net/url"
	"strconv"
)

// GetCrossReferencesByBookID fetches cross-references originating at
// the given (book id, chapter, verse) coordinate, ranked by votes.
func (c *Client) GetCrossReferencesByBookID(ctx context.Context, bookID uint, chapter, verse string) ([]CrossReference, error) {
	params := url.Values{
		"bookId":  {strconv.FormatUint(uint64(bookID), 10)},
		"chapter": {chapter},
		"verse":   {verse},
	}
	var refs []CrossReference
	if err := c.get(ctx, "/api/cross-references", params, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// GetCrossReferencesByBook is the name-keyed variant: book is matched
// against the stored from-book names as-is.
func (c *Client) GetCrossReferencesByBook(ctx context.Context, book, chapter, verse string) ([]CrossReference, error) {
	params := url.Values{
		"book":    {book},
		"chapter": {chapter},
		"verse":   {verse},
	}
	var refs []CrossReference
	if err := c.get(ctx, "/api/cross-references", params, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// ImportCrossReferences asks the server to import a cross-reference
// file from a path on the server's filesystem. The import runs in the
// background; a nil error means it was accepted, not that it finished.
func (c *Client) ImportCrossReferences(ctx context.Context, path string) error {
	payload := struct {
		Path string `json:"path"`
	}{Path: path}
	return c.send(ctx, "POST", "/api/cross-references/import", payload, nil)
}
