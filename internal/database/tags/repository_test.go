package tags

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

	dbPath := "./test_tags_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Chapter{},
		&entities.Verse{},
		&entities.Tag{},
		&entities.VerseTag{},
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

func createVerse(t *testing.T, db *gorm.DB) *entities.Verse {
	t.Helper()
	book := &entities.Book{Name: "Bereshith"}
	require.NoError(t, db.Create(book).Error)
	chapter := &entities.Chapter{BookID: book.ID, Number: "1"}
	require.NoError(t, db.Create(chapter).Error)
	verse := &entities.Verse{ChapterID: chapter.ID, Text: "In the beginning"}
	require.NoError(t, db.Create(verse).Error)
	return verse
}

func TestRepository_CreateTag(t *testing.T) {
	t.Run("creates a tag", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		tag, err := repo.CreateTag(&entities.Tag{
			Name:        "creation",
			Description: strPtr("Creation narrative passages"),
		})
		require.NoError(t, err)
		assert.NotZero(t, tag.ID)
		assert.Equal(t, "creation", tag.Name)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.CreateTag(&entities.Tag{Name: "creation"})
		require.NoError(t, err)

		_, err = repo.CreateTag(&entities.Tag{Name: "creation"})
		assert.ErrorIs(t, err, database.ErrConflict)
	})
}

func TestRepository_GetAllTags(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	for _, name := range []string{"prophecy", "creation", "wisdom"} {
		_, err := repo.CreateTag(&entities.Tag{Name: name})
		require.NoError(t, err)
	}

	tags, err := repo.GetAllTags()
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "creation", tags[0].Name)
	assert.Equal(t, "prophecy", tags[1].Name)
	assert.Equal(t, "wisdom", tags[2].Name)
}

func TestRepository_UpdateTag(t *testing.T) {
	t.Run("renames a tag", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		created, err := repo.CreateTag(&entities.Tag{Name: "creatoin"})
		require.NoError(t, err)

		updated, err := repo.UpdateTag(created.ID, Patch{Name: strPtr("creation")})
		require.NoError(t, err)
		assert.Equal(t, "creation", updated.Name)
	})

	t.Run("renaming onto an existing name is a conflict", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.CreateTag(&entities.Tag{Name: "creation"})
		require.NoError(t, err)
		other, err := repo.CreateTag(&entities.Tag{Name: "prophecy"})
		require.NoError(t, err)

		_, err = repo.UpdateTag(other.ID, Patch{Name: strPtr("creation")})
		assert.ErrorIs(t, err, database.ErrConflict)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		created, err := repo.CreateTag(&entities.Tag{Name: "creation"})
		require.NoError(t, err)

		_, err = repo.UpdateTag(created.ID, Patch{})
		assert.ErrorIs(t, err, database.ErrNoFieldsProvided)
	})
}

func TestRepository_DeleteTag(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	verse := createVerse(t, db)
	tag, err := repo.CreateTag(&entities.Tag{Name: "creation"})
	require.NoError(t, err)
	_, err = repo.LinkTagToVerse(verse.ID, tag.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTag(tag.ID))

	var assignmentCount int64
	db.Model(&entities.VerseTag{}).Count(&assignmentCount)
	assert.Zero(t, assignmentCount, "assignments cascade with the tag")

	assert.NoError(t, repo.DeleteTag(tag.ID), "second delete is a no-op")
}

func TestRepository_LinkTagToVerse(t *testing.T) {
	t.Run("assigns a tag to a verse", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		verse := createVerse(t, db)
		tag, err := repo.CreateTag(&entities.Tag{Name: "creation"})
		require.NoError(t, err)

		assignment, err := repo.LinkTagToVerse(verse.ID, tag.ID)
		require.NoError(t, err)
		assert.NotZero(t, assignment.ID)
	})

	t.Run("assigning the same pair twice is a conflict", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		verse := createVerse(t, db)
		tag, err := repo.CreateTag(&entities.Tag{Name: "creation"})
		require.NoError(t, err)

		_, err = repo.LinkTagToVerse(verse.ID, tag.ID)
		require.NoError(t, err)

		_, err = repo.LinkTagToVerse(verse.ID, tag.ID)
		assert.ErrorIs(t, err, database.ErrConflict)
	})

	t.Run("assigning a missing tag fails referential integrity", func(t *testing.T) {
		repo, db, cleanup := setupTestDB(t)
		defer cleanup()

		verse := createVerse(t, db)
		_, err := repo.LinkTagToVerse(verse.ID, 9999)
		assert.ErrorIs(t, err, database.ErrReferentialIntegrity)
	})
}

func TestRepository_GetTagsByVerseID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	verse := createVerse(t, db)
	for _, name := range []string{"wisdom", "creation"} {
		tag, err := repo.CreateTag(&entities.Tag{Name: name})
		require.NoError(t, err)
		_, err = repo.LinkTagToVerse(verse.ID, tag.ID)
		require.NoError(t, err)
	}

	attached, err := repo.GetTagsByVerseID(verse.ID)
	require.NoError(t, err)
	require.Len(t, attached, 2)
	assert.Equal(t, "creation", attached[0].Name, "verse tags come back in name order")
	assert.Equal(t, "wisdom", attached[1].Name)

	none, err := repo.GetTagsByVerseID(9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRepository_UnlinkTagFromVerse(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	verse := createVerse(t, db)
	tag, err := repo.CreateTag(&entities.Tag{Name: "creation"})
	require.NoError(t, err)
	assignment, err := repo.LinkTagToVerse(verse.ID, tag.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UnlinkTagFromVerse(assignment.ID))

	attached, err := repo.GetTagsByVerseID(verse.ID)
	require.NoError(t, err)
	assert.Empty(t, attached)

	_, err = repo.GetTagByID(tag.ID)
	assert.NoError(t, err, "the tag itself survives unlinking")
}

func TestRepository_GetVerseIDsByTagID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Name: "Bereshith"}
	require.NoError(t, db.Create(book).Error)
	chapter := &entities.Chapter{BookID: book.ID, Number: "1"}
	require.NoError(t, db.Create(chapter).Error)

	tag, err := repo.CreateTag(&entities.Tag{Name: "creation"})
	require.NoError(t, err)

	var verseIDs []uint
	for i := 0; i < 2; i++ {
		verse := &entities.Verse{ChapterID: chapter.ID, Text: "text"}
		require.NoError(t, db.Create(verse).Error)
		verseIDs = append(verseIDs, verse.ID)
		_, err = repo.LinkTagToVerse(verse.ID, tag.ID)
		require.NoError(t, err)
	}

	ids, err := repo.GetVerseIDsByTagID(tag.ID)
	require.NoError(t, err)
	assert.Equal(t, verseIDs, ids)
}
