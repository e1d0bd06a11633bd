package links

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

	dbPath := "./test_links_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Chapter{},
		&entities.Verse{},
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

// fixture builds two books with one chapter and one verse each and
// returns the two verses.
func fixture(t *testing.T, db *gorm.DB) (*entities.Verse, *entities.Verse) {
	t.Helper()

	genesis := &entities.Book{Name: "Bereshith", Index: intPtr(1)}
	require.NoError(t, db.Create(genesis).Error)
	genesisOne := &entities.Chapter{BookID: genesis.ID, Number: "1"}
	require.NoError(t, db.Create(genesisOne).Error)
	first := &entities.Verse{ChapterID: genesisOne.ID, Index: intPtr(1), Text: "In the beginning Elohim created"}
	require.NoError(t, db.Create(first).Error)

	john := &entities.Book{Name: "Yochanan", Index: intPtr(43)}
	require.NoError(t, db.Create(john).Error)
	johnOne := &entities.Chapter{BookID: john.ID, Number: "1"}
	require.NoError(t, db.Create(johnOne).Error)
	second := &entities.Verse{ChapterID: johnOne.ID, Index: intPtr(1), Text: "In the beginning was the Word"}
	require.NoError(t, db.Create(second).Error)

	return first, second
}

func TestRepository_CreateLink(t *testing.T) {
	t.Run("creates a link between two verses", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		first, second := fixture(t, db)

		link, err := repo.CreateLink(&entities.VerseLink{
			SourceVerseID: first.ID,
			TargetVerseID: second.ID,
			Type:          strPtr("parallel"),
		})
		require.NoError(t, err)
		assert.NotZero(t, link.ID)
	})

	t.Run("duplicate directed pair is a conflict", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		first, second := fixture(t, db)

		_, err := repo.CreateLink(&entities.VerseLink{SourceVerseID: first.ID, TargetVerseID: second.ID})
		require.NoError(t, err)

		_, err = repo.CreateLink(&entities.VerseLink{SourceVerseID: first.ID, TargetVerseID: second.ID})
		assert.ErrorIs(t, err, database.ErrConflict)
	})

	t.Run("missing endpoint fails referential integrity", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		first, _ := fixture(t, db)

		_, err := repo.CreateLink(&entities.VerseLink{SourceVerseID: first.ID, TargetVerseID: 9999})
		assert.ErrorIs(t, err, database.ErrReferentialIntegrity)
	})
}

func TestRepository_GetLinksForVerse(t *testing.T) {
	t.Run("both endpoints see the same edge", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		first, second := fixture(t, db)

		created, err := repo.CreateLink(&entities.VerseLink{
			SourceVerseID: first.ID,
			TargetVerseID: second.ID,
			Type:          strPtr("parallel"),
		})
		require.NoError(t, err)

		fromSource, err := repo.GetLinksForVerse(first.ID)
		require.NoError(t, err)
		require.Len(t, fromSource, 1)
		assert.Equal(t, created.ID, fromSource[0].LinkID)
		assert.Equal(t, first.ID, fromSource[0].SourceVerseID)
		assert.Equal(t, second.ID, fromSource[0].TargetVerseID)
		assert.Equal(t, "Yochanan", fromSource[0].TargetBookName)
		assert.Equal(t, "1", fromSource[0].TargetChapterNumber)
		require.NotNil(t, fromSource[0].LinkType)
		assert.Equal(t, "parallel", *fromSource[0].LinkType)

		fromTarget, err := repo.GetLinksForVerse(second.ID)
		require.NoError(t, err)
		require.Len(t, fromTarget, 1)
		assert.Equal(t, created.ID, fromTarget[0].LinkID)
		assert.Equal(t, second.ID, fromTarget[0].SourceVerseID, "query verse is always the source")
		assert.Equal(t, first.ID, fromTarget[0].TargetVerseID)
		assert.Equal(t, "Bereshith", fromTarget[0].TargetBookName)
	})

	t.Run("unlinked verse has an empty set", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		first, _ := fixture(t, db)

		resolved, err := repo.GetLinksForVerse(first.ID)
		require.NoError(t, err)
		assert.NotNil(t, resolved)
		assert.Empty(t, resolved)
	})
}

func TestRepository_DeleteLink(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first, second := fixture(t, db)
	link, err := repo.CreateLink(&entities.VerseLink{SourceVerseID: first.ID, TargetVerseID: second.ID})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteLink(link.ID))

	_, err = repo.GetLinkByID(link.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	var verseCount int64
	db.Model(&entities.Verse{}).Count(&verseCount)
	assert.Equal(t, int64(2), verseCount, "deleting a link never touches the verses")

	assert.NoError(t, repo.DeleteLink(link.ID), "second delete is a no-op")
}

func TestRepository_GetAllLinks(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first, second := fixture(t, db)
	_, err := repo.CreateLink(&entities.VerseLink{SourceVerseID: first.ID, TargetVerseID: second.ID})
	require.NoError(t, err)
	_, err = repo.CreateLink(&entities.VerseLink{SourceVerseID: second.ID, TargetVerseID: first.ID})
	require.NoError(t, err)

	links, err := repo.GetAllLinks()
	require.NoError(t, err)
	assert.Len(t, links, 2)
}
