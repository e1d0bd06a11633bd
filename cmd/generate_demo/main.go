// Command generate_demo creates a demo database with sample scripture data.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/database/books"
	"github.com/rstne/scriptura/internal/database/chapters"
	"github.com/rstne/scriptura/internal/database/links"
	"github.com/rstne/scriptura/internal/database/notes"
	"github.com/rstne/scriptura/internal/database/tags"
	"github.com/rstne/scriptura/internal/database/verses"
	"github.com/rstne/scriptura/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type demoVerse struct {
	index int
	text  string
}

type demoChapter struct {
	number string
	verses []demoVerse
}

type demoBook struct {
	name     string
	abbr     string
	index    int
	chapters []demoChapter
}

var demoBooks = []demoBook{
	{
		name:  "Bereshith",
		abbr:  "Gen",
		index: 1,
		chapters: []demoChapter{
			{number: "1", verses: []demoVerse{
				{1, "In the beginning Elohim created the heavens and the earth."},
				{2, "And the earth was without form, and void; and darkness was upon the face of the deep."},
				{3, "And Elohim said, Let there be light: and there was light."},
			}},
			{number: "2", verses: []demoVerse{
				{1, "Thus the heavens and the earth were finished, and all the host of them."},
			}},
		},
	},
	{
		name:  "Tehillim",
		abbr:  "Ps",
		index: 2,
		chapters: []demoChapter{
			{number: "23", verses: []demoVerse{
				{1, "The Master is my Shepherd; I shall not lack."},
				{2, "He makes me to lie down in green pastures: He leads me beside the still waters."},
			}},
		},
	},
	{
		name:  "Yochanan",
		abbr:  "John",
		index: 3,
		chapters: []demoChapter{
			{number: "1", verses: []demoVerse{
				{1, "In the beginning was the Word, and the Word was with Elohim."},
				{2, "The same was in the beginning with Elohim."},
				{3, "All things were made by Him; and without Him was not anything made that was made."},
			}},
		},
	},
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	bookRepo := books.NewRepository(db.DB)
	chapterRepo := chapters.NewRepository(db.DB)
	verseRepo := verses.NewRepository(db.DB)

	// Remember the first verse of each book so we can link them.
	var firstVerses []uint

	for _, demo := range demoBooks {
		book, err := bookRepo.CreateBook(&entities.Book{
			Name:  demo.name,
			Abbr:  strPtr(demo.abbr),
			Index: intPtr(demo.index),
		})
		if err != nil {
			log.Fatalf("Failed to create book %s: %v", demo.name, err)
		}

		for _, demoChap := range demo.chapters {
			chapter, err := chapterRepo.CreateChapter(&entities.Chapter{
				BookID: book.ID,
				Number: demoChap.number,
			})
			if err != nil {
				log.Fatalf("Failed to create chapter %s %s: %v", demo.name, demoChap.number, err)
			}

			for _, demoV := range demoChap.verses {
				verse, err := verseRepo.CreateVerse(&entities.Verse{
					ChapterID: chapter.ID,
					Index:     intPtr(demoV.index),
					Text:      demoV.text,
				})
				if err != nil {
					log.Fatalf("Failed to create verse: %v", err)
				}
				if demoChap.number == demo.chapters[0].number && demoV.index == 1 {
					firstVerses = append(firstVerses, verse.ID)
				}
			}
		}
		log.Printf("Saved: %s (%d chapters)", demo.name, len(demo.chapters))
	}

	// Link Bereshith 1:1 and Yochanan 1:1 ("in the beginning").
	if len(firstVerses) >= 3 {
		linkRepo := links.NewRepository(db.DB)
		if _, err := linkRepo.CreateLink(&entities.VerseLink{
			SourceVerseID: firstVerses[0],
			TargetVerseID: firstVerses[2],
			Type:          strPtr("parallel"),
		}); err != nil {
			log.Fatalf("Failed to create verse link: %v", err)
		}
	}

	tagRepo := tags.NewRepository(db.DB)
	tag, err := tagRepo.CreateTag(&entities.Tag{Name: "creation", Description: strPtr("Creation narrative passages")})
	if err != nil {
		log.Fatalf("Failed to create tag: %v", err)
	}
	for _, id := range firstVerses {
		if _, err := tagRepo.LinkTagToVerse(id, tag.ID); err != nil {
			log.Fatalf("Failed to tag verse %d: %v", id, err)
		}
	}

	noteRepo := notes.NewRepository(db.DB)
	note, err := noteRepo.CreateNote(&entities.Note{
		Title:   strPtr("Bereshith"),
		Content: "The Hebrew word bereshith means \"in the beginning\".",
	})
	if err != nil {
		log.Fatalf("Failed to create note: %v", err)
	}
	if len(firstVerses) > 0 {
		if _, err := noteRepo.LinkNoteToVerse(firstVerses[0], note.ID); err != nil {
			log.Fatalf("Failed to link note: %v", err)
		}
	}

	log.Printf("Demo database generated at %s", *dbPath)
}
