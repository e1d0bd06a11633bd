package verses

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()

	dbPath := "./test_verses_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Chapter{},
		&entities.Verse{},
		&entities.Note{},
		&entities.VerseNote{},
		&entities.VerseLink{},
	)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db), db, cleanup
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func createBook(t *testing.T, db *gorm.DB, name string, index int) *entities.Book {
	t.Helper()
	book := &entities.Book{Name: name, Index: intPtr(index)}
	require.NoError(t, db.Create(book).Error)
	return book
}

func createChapter(t *testing.T, db *gorm.DB, bookID uint, number string) *entities.Chapter {
	t.Helper()
	chapter := &entities.Chapter{BookID: bookID, Number: number}
	require.NoError(t, db.Create(chapter).Error)
	return chapter
}

func createVerse(t *testing.T, db *gorm.DB, chapterID uint, index int, text string) *entities.Verse {
	t.Helper()
	verse := &entities.Verse{ChapterID: chapterID, Index: intPtr(index), Text: text}
	require.NoError(t, db.Create(verse).Error)
	return verse
}

func TestRepository_CreateVerse(t *testing.T) {
	t.Run("creates a verse under an existing chapter", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")

		verse, err := repo.CreateVerse(&entities.Verse{
			ChapterID: chapter.ID,
			Index:     intPtr(1),
			Text:      "In the beginning",
		})
		require.NoError(t, err)
		assert.NotZero(t, verse.ID)
		assert.Equal(t, "In the beginning", verse.Text)
	})

	t.Run("rejects a verse for a missing chapter", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.CreateVerse(&entities.Verse{ChapterID: 9999, Text: "orphan"})
		assert.ErrorIs(t, err, database.ErrReferentialIntegrity)
	})
}

func TestRepository_UpdateVerse(t *testing.T) {
	t.Run("updates only provided fields", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		verse := createVerse(t, db, chapter.ID, 1, "In the begining")

		updated, err := repo.UpdateVerse(verse.ID, Patch{Text: strPtr("In the beginning")})
		require.NoError(t, err)
		assert.Equal(t, "In the beginning", updated.Text)
		require.NotNil(t, updated.Index)
		assert.Equal(t, 1, *updated.Index)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		verse := createVerse(t, db, chapter.ID, 1, "text")

		_, err := repo.UpdateVerse(verse.ID, Patch{})
		assert.ErrorIs(t, err, database.ErrNoFieldsProvided)
	})

	t.Run("missing verse yields not found", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.UpdateVerse(9999, Patch{Text: strPtr("ghost")})
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_DeleteVerse(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, db, "Bereshith", 1)
	chapter := createChapter(t, db, book.ID, "1")
	verse := createVerse(t, db, chapter.ID, 1, "text")

	require.NoError(t, repo.DeleteVerse(verse.ID))
	_, err := repo.GetVerseByID(verse.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.NoError(t, repo.DeleteVerse(verse.ID), "second delete is a no-op")
}

func TestRepository_GetVersesByChapterID(t *testing.T) {
	t.Run("orders verses by index with unindexed last", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")

		createVerse(t, db, chapter.ID, 2, "second")
		createVerse(t, db, chapter.ID, 1, "first")
		unindexed := &entities.Verse{ChapterID: chapter.ID, Text: "colophon"}
		require.NoError(t, db.Create(unindexed).Error)

		verses, err := repo.GetVersesByChapterID(chapter.ID)
		require.NoError(t, err)
		require.Len(t, verses, 3)
		assert.Equal(t, "first", verses[0].Text)
		assert.Equal(t, "second", verses[1].Text)
		assert.Equal(t, "colophon", verses[2].Text)
	})

	t.Run("resolves links from both directions", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		genesis := createBook(t, db, "Bereshith", 1)
		genesisOne := createChapter(t, db, genesis.ID, "1")
		local := createVerse(t, db, genesisOne.ID, 1, "In the beginning Elohim created")

		john := createBook(t, db, "Yochanan", 43)
		johnOne := createChapter(t, db, john.ID, "1")
		outgoing := createVerse(t, db, johnOne.ID, 1, "In the beginning was the Word")
		incoming := createVerse(t, db, johnOne.ID, 3, "All things were made by Him")

		// One edge stored with the local verse as source, one with it
		// as target; both must surface oriented from the local verse.
		require.NoError(t, db.Create(&entities.VerseLink{
			SourceVerseID: local.ID, TargetVerseID: outgoing.ID,
		}).Error)
		require.NoError(t, db.Create(&entities.VerseLink{
			SourceVerseID: incoming.ID, TargetVerseID: local.ID,
		}).Error)

		verses, err := repo.GetVersesByChapterID(genesisOne.ID)
		require.NoError(t, err)
		require.Len(t, verses, 1)
		require.Len(t, verses[0].Links, 2)

		for _, link := range verses[0].Links {
			assert.Equal(t, local.ID, link.SourceVerseID)
			assert.Equal(t, "Yochanan", link.TargetBookName)
			assert.Equal(t, "1", link.TargetChapterNumber)
			assert.Equal(t, john.ID, link.TargetBookID)
		}
		targets := []uint{verses[0].Links[0].TargetVerseID, verses[0].Links[1].TargetVerseID}
		assert.ElementsMatch(t, []uint{outgoing.ID, incoming.ID}, targets)
	})

	t.Run("an edge inside the chapter appears on both endpoints", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		first := createVerse(t, db, chapter.ID, 1, "first")
		second := createVerse(t, db, chapter.ID, 2, "second")

		require.NoError(t, db.Create(&entities.VerseLink{
			SourceVerseID: first.ID, TargetVerseID: second.ID,
		}).Error)

		verses, err := repo.GetVersesByChapterID(chapter.ID)
		require.NoError(t, err)
		require.Len(t, verses, 2)
		require.Len(t, verses[0].Links, 1)
		require.Len(t, verses[1].Links, 1)
		assert.Equal(t, second.ID, verses[0].Links[0].TargetVerseID)
		assert.Equal(t, first.ID, verses[1].Links[0].TargetVerseID)
	})

	t.Run("attaches notes to their verses", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		annotated := createVerse(t, db, chapter.ID, 1, "annotated")
		plain := createVerse(t, db, chapter.ID, 2, "plain")

		note := &entities.Note{Title: strPtr("Bereshith"), Content: "in the beginning"}
		require.NoError(t, db.Create(note).Error)
		require.NoError(t, db.Create(&entities.VerseNote{VerseID: annotated.ID, NoteID: note.ID}).Error)

		verses, err := repo.GetVersesByChapterID(chapter.ID)
		require.NoError(t, err)
		require.Len(t, verses, 2)
		require.Len(t, verses[0].Notes, 1)
		assert.Equal(t, "in the beginning", verses[0].Notes[0].NoteContent)
		assert.Equal(t, annotated.ID, verses[0].Notes[0].VerseID)
		assert.Empty(t, verses[1].Notes)
		assert.Equal(t, plain.ID, verses[1].ID)
	})

	t.Run("empty chapter returns an empty slice", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")

		verses, err := repo.GetVersesByChapterID(chapter.ID)
		require.NoError(t, err)
		assert.NotNil(t, verses)
		assert.Empty(t, verses)
	})
}

func TestRepository_TextSearch(t *testing.T) {
	t.Run("matches verse text case-insensitively", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		createVerse(t, db, chapter.ID, 3, "And Elohim said, Let there be Light")
		createVerse(t, db, chapter.ID, 1, "In the beginning")

		results, err := repo.TextSearch("light")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Bereshith", results[0].BookName)
		assert.Equal(t, "1", results[0].ChapterNumber)
	})

	t.Run("matches secondary-language text", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		verse := &entities.Verse{
			ChapterID:  chapter.ID,
			Index:      intPtr(1),
			Text:       "In the beginning",
			TeluguText: strPtr("adilo devudu"),
		}
		require.NoError(t, db.Create(verse).Error)

		results, err := repo.TextSearch("devudu")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, verse.ID, results[0].ID)
	})

	t.Run("matches attached note content without duplicating the verse", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		verse := createVerse(t, db, chapter.ID, 1, "In the beginning")

		for _, content := range []string{"creation themes", "creation parallels"} {
			note := &entities.Note{Content: content}
			require.NoError(t, db.Create(note).Error)
			require.NoError(t, db.Create(&entities.VerseNote{VerseID: verse.ID, NoteID: note.ID}).Error)
		}

		results, err := repo.TextSearch("creation")
		require.NoError(t, err)
		require.Len(t, results, 1, "a verse with several matching notes appears once")
		assert.Equal(t, verse.ID, results[0].ID)
	})

	t.Run("orders numeric chapter labels numerically", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Tehillim", 19)
		for _, number := range []string{"10", "2", "1"} {
			chapter := createChapter(t, db, book.ID, number)
			createVerse(t, db, chapter.ID, 1, "praise in chapter "+number)
		}

		results, err := repo.TextSearch("praise")
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "1", results[0].ChapterNumber)
		assert.Equal(t, "2", results[1].ChapterNumber)
		assert.Equal(t, "10", results[2].ChapterNumber, "chapter 10 sorts after chapter 2")
	})

	t.Run("citation-shaped queries match embedded citations", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Yochanan", 43)
		chapter := createChapter(t, db, book.ID, "1")
		createVerse(t, db, chapter.ID, 1, "compare Yoch3:16 on this theme")
		createVerse(t, db, chapter.ID, 2, "no citation here")

		results, err := repo.TextSearch("Yoch3:16")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Text, "Yoch3:16")
	})

	t.Run("no match returns an empty slice", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		results, err := repo.TextSearch("nothing")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestSplitBookQuery(t *testing.T) {
	tests := []struct {
		query   string
		prefix  string
		chapter string
	}{
		{"Yochanan", "Yochanan", ""},
		{"Yochanan 3", "Yochanan", "3"},
		{"Shir HaShirim 2", "Shir HaShirim", "2"},
		{"2 Melachim", "2 Melachim", ""},
		{"2 Melachim 4", "2 Melachim", "4"},
		{"", "", ""},
		{"   ", "", ""},
	}
	for _, tt := range tests {
		prefix, chapter := splitBookQuery(tt.query)
		assert.Equal(t, tt.prefix, prefix, "query %q", tt.query)
		assert.Equal(t, tt.chapter, chapter, "query %q", tt.query)
	}
}

func TestRepository_SearchByBookName(t *testing.T) {
	t.Run("matches by book-name prefix", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		createVerse(t, db, chapter.ID, 1, "In the beginning")

		other := createBook(t, db, "Tehillim", 19)
		otherChapter := createChapter(t, db, other.ID, "1")
		createVerse(t, db, otherChapter.ID, 1, "Blessed is the man")

		stubs, err := repo.SearchByBookName("Beresh")
		require.NoError(t, err)
		require.Len(t, stubs, 1)
		assert.Equal(t, "Bereshith", stubs[0].BookName)
	})

	t.Run("trailing number narrows to one chapter", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		one := createChapter(t, db, book.ID, "1")
		two := createChapter(t, db, book.ID, "2")
		createVerse(t, db, one.ID, 1, "chapter one verse")
		createVerse(t, db, two.ID, 1, "chapter two verse")

		stubs, err := repo.SearchByBookName("Bereshith 2")
		require.NoError(t, err)
		require.Len(t, stubs, 1)
		assert.Equal(t, "2", stubs[0].ChapterNumber)
	})

	t.Run("previews are truncated", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		long := strings.Repeat("word ", 40)
		createVerse(t, db, chapter.ID, 1, long)

		stubs, err := repo.SearchByBookName("Bereshith")
		require.NoError(t, err)
		require.Len(t, stubs, 1)
		assert.Len(t, stubs[0].Text, previewLength)
	})

	t.Run("unknown book returns an empty slice", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		stubs, err := repo.SearchByBookName("Atlantis")
		require.NoError(t, err)
		assert.NotNil(t, stubs)
		assert.Empty(t, stubs)
	})

	t.Run("blank query returns an empty slice", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		stubs, err := repo.SearchByBookName("   ")
		require.NoError(t, err)
		assert.Empty(t, stubs)
	})
}

func TestRepository_ReplaceText(t *testing.T) {
	setupVerses := func(t *testing.T) (*Repository, *gorm.DB, *entities.Verse, *entities.Verse, func()) {
		repo, db, cleanup := setupTestDB(t)
		book := createBook(t, db, "Bereshith", 1)
		chapter := createChapter(t, db, book.ID, "1")
		first := createVerse(t, db, chapter.ID, 1, "And God said, Let there be light")
		second := createVerse(t, db, chapter.ID, 2, "And God saw the light")
		return repo, db, first, second, cleanup
	}

	t.Run("replaces across targets and counts changed rows", func(t *testing.T) {
		repo, _, first, second, cleanup := setupVerses(t)
		defer cleanup()

		targets := []ReplaceTarget{
			{VerseID: first.ID, Field: "verse"},
			{VerseID: second.ID, Field: "verse"},
		}
		replaced, err := repo.ReplaceText("God", "Elohim", true, targets)
		require.NoError(t, err)
		assert.Equal(t, int64(2), replaced)

		updated, err := repo.GetVerseByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "And Elohim said, Let there be light", updated.Text)
	})

	t.Run("second run replaces nothing", func(t *testing.T) {
		repo, _, first, second, cleanup := setupVerses(t)
		defer cleanup()

		targets := []ReplaceTarget{
			{VerseID: first.ID, Field: "verse"},
			{VerseID: second.ID, Field: "verse"},
		}
		_, err := repo.ReplaceText("God", "Elohim", true, targets)
		require.NoError(t, err)

		replaced, err := repo.ReplaceText("God", "Elohim", true, targets)
		require.NoError(t, err)
		assert.Zero(t, replaced)
	})

	t.Run("case-sensitive search skips differently-cased text", func(t *testing.T) {
		repo, _, first, _, cleanup := setupVerses(t)
		defer cleanup()

		replaced, err := repo.ReplaceText("god", "Elohim", true, []ReplaceTarget{
			{VerseID: first.ID, Field: "verse"},
		})
		require.NoError(t, err)
		assert.Zero(t, replaced)
	})

	t.Run("case-insensitive search matches any casing", func(t *testing.T) {
		repo, _, first, _, cleanup := setupVerses(t)
		defer cleanup()

		replaced, err := repo.ReplaceText("GOD", "Elohim", false, []ReplaceTarget{
			{VerseID: first.ID, Field: "verse"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), replaced)

		updated, err := repo.GetVerseByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "And Elohim said, Let there be light", updated.Text)
	})

	t.Run("missing verses are skipped", func(t *testing.T) {
		repo, _, first, _, cleanup := setupVerses(t)
		defer cleanup()

		replaced, err := repo.ReplaceText("God", "Elohim", true, []ReplaceTarget{
			{VerseID: 9999, Field: "verse"},
			{VerseID: first.ID, Field: "verse"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), replaced)
	})

	t.Run("nil secondary text is skipped", func(t *testing.T) {
		repo, _, first, _, cleanup := setupVerses(t)
		defer cleanup()

		replaced, err := repo.ReplaceText("God", "Elohim", true, []ReplaceTarget{
			{VerseID: first.ID, Field: "telugu_verse"},
		})
		require.NoError(t, err)
		assert.Zero(t, replaced)
	})

	t.Run("unknown field fails", func(t *testing.T) {
		repo, _, first, _, cleanup := setupVerses(t)
		defer cleanup()

		_, err := repo.ReplaceText("God", "Elohim", true, []ReplaceTarget{
			{VerseID: first.ID, Field: "book_name"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown replace field")
	})

	t.Run("empty search is a no-op", func(t *testing.T) {
		repo, _, first, _, cleanup := setupVerses(t)
		defer cleanup()

		replaced, err := repo.ReplaceText("", "Elohim", true, []ReplaceTarget{
			{VerseID: first.ID, Field: "verse"},
		})
		require.NoError(t, err)
		assert.Zero(t, replaced)
	})
}
