package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig receives all store dependencies for the router,
// improving testability and reducing parameter count.
type RouterConfig struct {
	Books      BookStore
	Categories CategoryStore
	Chapters   ChapterStore
	Verses     VerseStore
	Notes      NoteStore
	Tags       TagStore
	Links      LinkStore
	CrossRefs  CrossRefStore
	Importer   CrossRefImporter
	Stats      StatsStore
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	booksController := NewBooksController(cfg.Books)
	categoriesController := NewCategoriesController(cfg.Categories)
	chaptersController := NewChaptersController(cfg.Chapters)
	versesController := NewVersesController(cfg.Verses)
	notesController := NewNotesController(cfg.Notes)
	tagsController := NewTagsController(cfg.Tags)
	linksController := NewLinksController(cfg.Links)
	crossRefsController := NewCrossRefsController(cfg.CrossRefs, cfg.Importer)
	statsController := NewStatsController(cfg.Stats)

	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.GetAllBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
		api.GET("/books/:id/chapters", booksController.GetBookChapters)

		api.GET("/book-categories", categoriesController.GetAllCategories)

		api.GET("/chapters", chaptersController.GetAllChapters)
		api.POST("/chapters", chaptersController.CreateChapter)
		api.GET("/chapters/:id", chaptersController.GetChapter)
		api.PUT("/chapters/:id", chaptersController.UpdateChapter)
		api.DELETE("/chapters/:id", chaptersController.DeleteChapter)
		api.GET("/chapters/:id/verses", versesController.GetChapterVerses)

		// The static search paths must register before /verses/:id so
		// the router never captures "search" as a path parameter.
		api.GET("/verses/search", versesController.SearchVerses)
		api.GET("/verses/text-search", versesController.TextSearch)
		api.GET("/verses/search-text", versesController.TextSearch)
		api.POST("/verses/replace-text", versesController.ReplaceText)

		api.GET("/verses", versesController.GetAllVerses)
		api.POST("/verses", versesController.CreateVerse)
		api.GET("/verses/:id", versesController.GetVerse)
		api.PUT("/verses/:id", versesController.UpdateVerse)
		api.DELETE("/verses/:id", versesController.DeleteVerse)
		api.GET("/verses/:id/notes", notesController.GetVerseNotes)
		api.GET("/verses/:id/tags", tagsController.GetVerseTags)
		api.GET("/verses/:id/links", linksController.GetVerseLinks)

		api.GET("/notes", notesController.GetAllNotes)
		api.POST("/notes", notesController.CreateNote)
		api.GET("/notes/:id", notesController.GetNote)
		api.PUT("/notes/:id", notesController.UpdateNote)
		api.DELETE("/notes/:id", notesController.DeleteNote)
		api.GET("/notes/:id/verses", notesController.GetNoteVerses)

		api.POST("/verse-notes", notesController.LinkNote)
		api.DELETE("/verse-notes/:id", notesController.UnlinkNote)

		api.GET("/tags", tagsController.GetAllTags)
		api.POST("/tags", tagsController.CreateTag)
		api.GET("/tags/:id", tagsController.GetTag)
		api.PUT("/tags/:id", tagsController.UpdateTag)
		api.DELETE("/tags/:id", tagsController.DeleteTag)
		api.GET("/tags/:id/verses", tagsController.GetTagVerses)

		api.POST("/verse-tags", tagsController.LinkTag)
		api.DELETE("/verse-tags/:id", tagsController.UnlinkTag)

		api.GET("/verse-links", linksController.GetAllLinks)
		api.POST("/verse-links", linksController.CreateLink)
		api.GET("/verse-links/:id", linksController.GetLink)
		api.DELETE("/verse-links/:id", linksController.DeleteLink)

		api.GET("/cross-references", crossRefsController.GetCrossReferences)
		api.POST("/cross-references/import", crossRefsController.ImportCrossReferences)

		api.GET("/stats", statsController.GetStats)
	}

	return router
}
