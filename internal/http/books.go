package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database/books"
	"github.com/rstne/scriptura/internal/entities"
)

// BookStore defines database operations for book management.
type BookStore interface {
	CreateBook(book *entities.Book) (*entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	UpdateBook(id uint, patch books.Patch) (*entities.Book, error)
	DeleteBook(id uint) error
	GetChaptersByBookID(bookID uint) ([]entities.Chapter, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// GetAllBooks returns all books in display order with chapter counts
// GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	allBooks, err := bc.store.GetAllBooks()
	if err != nil {
		respondStoreError(c, err, "get all books")
		return
	}
	c.JSON(http.StatusOK, allBooks)
}

// GetBook returns a single book
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook creates a new book
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req struct {
		Name        string  `json:"book_name" binding:"required"`
		Abbr        *string `json:"book_abbr"`
		HebrewName  *string `json:"hebrew_book_name"`
		TeluguName  *string `json:"telugu_book_name"`
		Description *string `json:"book_description"`
		Header      *string `json:"book_header"`
		Footer      *string `json:"book_footer"`
		Index       *int    `json:"book_index"`
		CategoryID  *uint   `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book_name is required")
		return
	}

	book, err := bc.store.CreateBook(&entities.Book{
		Name:        req.Name,
		Abbr:        req.Abbr,
		HebrewName:  req.HebrewName,
		TeluguName:  req.TeluguName,
		Description: req.Description,
		Header:      req.Header,
		Footer:      req.Footer,
		Index:       req.Index,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondStoreError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// UpdateBook applies a partial update to a book
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch books.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.store.UpdateBook(id, patch)
	if err != nil {
		respondStoreError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book and, through cascades, its chapters and verses
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBook(id); err != nil {
		respondStoreError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}

// GetBookChapters returns a book's chapters in insertion order
// GET /api/books/:id/chapters
func (bc *BooksController) GetBookChapters(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapters, err := bc.store.GetChaptersByBookID(id)
	if err != nil {
		respondStoreError(c, err, "get book chapters")
		return
	}
	c.JSON(http.StatusOK, chapters)
}

// CategoryStore defines the read-only category listing.
type CategoryStore interface {
	GetAllCategories() ([]entities.BookCategory, error)
}

type CategoriesController struct {
	store CategoryStore
}

func NewCategoriesController(store CategoryStore) *CategoriesController {
	return &CategoriesController{store: store}
}

// GetAllCategories returns all book categories in display order
// GET /api/book-categories
func (cc *CategoriesController) GetAllCategories(c *gin.Context) {
	categories, err := cc.store.GetAllCategories()
	if err != nil {
		respondStoreError(c, err, "get book categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
