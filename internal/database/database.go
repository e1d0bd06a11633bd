package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rstne/scriptura/internal/entities"
)

var defaultCategories = []entities.BookCategory{
	{Name: "First Covenant", Order: 1},
	{Name: "New Covenant", Order: 2},
	{Name: "Restored Apocryphal Books", Order: 3},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	// _foreign_keys=on makes sqlite enforce the cascade and
	// referential-integrity constraints declared on the entities.
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.BookCategory{},
		&entities.Book{},
		&entities.Chapter{},
		&entities.Verse{},
		&entities.Note{},
		&entities.VerseNote{},
		&entities.VerseLink{},
		&entities.Tag{},
		&entities.VerseTag{},
		&entities.CrossReference{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedCategories(); err != nil {
		return nil, fmt.Errorf("failed to seed book categories: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedCategories() error {
	for _, category := range defaultCategories {
		var existing entities.BookCategory
		result := d.DB.Where("category_name = ?", category.Name).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", category.Name, err)
			}
			log.Printf("Created book category: %s", category.Name)
		}
	}
	return nil
}

// GetAllCategories returns every book category in display order.
func (d *Database) GetAllCategories() ([]entities.BookCategory, error) {
	var categories []entities.BookCategory
	err := d.DB.Order("category_order ASC").Find(&categories).Error
	return categories, err
}

// Stats holds aggregate row counts across the store.
type Stats struct {
	TotalBooks           int64 `json:"totalBooks"`
	TotalChapters        int64 `json:"totalChapters"`
	TotalVerses          int64 `json:"totalVerses"`
	TotalNotes           int64 `json:"totalNotes"`
	TotalTags            int64 `json:"totalTags"`
	TotalVerseLinks      int64 `json:"totalVerseLinks"`
	TotalCrossReferences int64 `json:"totalCrossReferences"`
}

func (d *Database) GetStats() (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		model any
		dest  *int64
	}{
		{&entities.Book{}, &stats.TotalBooks},
		{&entities.Chapter{}, &stats.TotalChapters},
		{&entities.Verse{}, &stats.TotalVerses},
		{&entities.Note{}, &stats.TotalNotes},
		{&entities.Tag{}, &stats.TotalTags},
		{&entities.VerseLink{}, &stats.TotalVerseLinks},
		{&entities.CrossReference{}, &stats.TotalCrossReferences},
	}
	for _, c := range counts {
		if err := d.DB.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// Optimize runs sqlite maintenance pragmas. Invoked by the scheduler,
// never on the request path.
func (d *Database) Optimize() error {
	if err := d.DB.Exec("PRAGMA optimize").Error; err != nil {
		return fmt.Errorf("pragma optimize: %w", err)
	}
	if err := d.DB.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}
	return nil
}
