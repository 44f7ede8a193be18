package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	notes    []Note
	now      func() time.Time
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	// IDs are derived from the current time, as Anki does
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		notes:    make([]Note, 0),
		now:      time.Now,
	}
}

// AddNote adds a note to the generator
func (g *APKGGenerator) AddNote(n Note) {
	g.notes = append(g.notes, n)
}

// GenerateAPKG creates an .apkg file
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	// Create temporary directory for building the package
	tempDir, err := os.MkdirTemp("", "anki_export_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// Cards carry no media, the mapping stays empty
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	// Create SQLite database
	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	// Create the .apkg zip file
	if err := g.createZipPackage(tempDir, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}

	return nil
}

// createDatabase creates the Anki SQLite database
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Create tables
	if err := g.createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	// Insert collection metadata
	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	// Insert notes and cards
	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}

	return nil
}

// createTables creates the required Anki database tables
func (g *APKGGenerator) createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE col (
			id integer PRIMARY KEY,
			crt integer NOT NULL,
			mod integer NOT NULL,
			scm integer NOT NULL,
			ver integer NOT NULL,
			dty integer NOT NULL,
			usn integer NOT NULL,
			ls integer NOT NULL,
			conf text NOT NULL,
			models text NOT NULL,
			decks text NOT NULL,
			dconf text NOT NULL,
			tags text NOT NULL
		)`,
		`CREATE TABLE notes (
			id integer PRIMARY KEY,
			guid text NOT NULL,
			mid integer NOT NULL,
			mod integer NOT NULL,
			usn integer NOT NULL,
			tags text NOT NULL,
			flds text NOT NULL,
			sfld text NOT NULL,
			csum integer NOT NULL,
			flags integer NOT NULL,
			data text NOT NULL
		)`,
		`CREATE TABLE cards (
			id integer PRIMARY KEY,
			nid integer NOT NULL,
			did integer NOT NULL,
			ord integer NOT NULL,
			mod integer NOT NULL,
			usn integer NOT NULL,
			type integer NOT NULL,
			queue integer NOT NULL,
			due integer NOT NULL,
			ivl integer NOT NULL,
			factor integer NOT NULL,
			reps integer NOT NULL,
			lapses integer NOT NULL,
			left integer NOT NULL,
			odue integer NOT NULL,
			odid integer NOT NULL,
			flags integer NOT NULL,
			data text NOT NULL
		)`,
		`CREATE TABLE revlog (
			id integer PRIMARY KEY,
			cid integer NOT NULL,
			usn integer NOT NULL,
			ease integer NOT NULL,
			ivl integer NOT NULL,
			lastIvl integer NOT NULL,
			factor integer NOT NULL,
			time integer NOT NULL,
			type integer NOT NULL
		)`,
		`CREATE TABLE graves (
			usn integer NOT NULL,
			oid integer NOT NULL,
			type integer NOT NULL
		)`,
		// Create indexes
		`CREATE INDEX ix_notes_csum ON notes (csum)`,
		`CREATE INDEX ix_notes_usn ON notes (usn)`,
		`CREATE INDEX ix_cards_usn ON cards (usn)`,
		`CREATE INDEX ix_cards_nid ON cards (nid)`,
		`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
		`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
		`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

const deckDescription = "Chinese/English speaking cards exported by cardstudy"

// deckConfig returns the deck entry stored in the col.decks JSON
func deckConfig(id int64, name, desc string, mod int64) map[string]interface{} {
	return map[string]interface{}{
		"id":               id,
		"name":             name,
		"mod":              mod,
		"desc":             desc,
		"collapsed":        false,
		"dyn":              0,
		"conf":             1,
		"usn":              0,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"browserCollapsed": false,
		"extendNew":        10,
		"extendRev":        50,
	}
}

// insertCollection inserts the collection metadata
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := g.now().Unix()

	decks := map[string]interface{}{
		"1": deckConfig(1, "Default", "", now),
	}
	decks[fmt.Sprintf("%d", g.deckID)] = deckConfig(g.deckID, g.deckName, deckDescription, now)
	decksJSON, err := json.Marshal(decks)
	if err != nil {
		return err
	}

	models := map[string]interface{}{
		fmt.Sprintf("%d", g.modelID): g.createNoteTypeConfig(),
	}
	modelsJSON, err := json.Marshal(models)
	if err != nil {
		return err
	}

	conf := map[string]interface{}{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      fmt.Sprintf("%d", g.modelID),
		"dayLearnFirst": false,
	}
	confJSON, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	dconf := map[string]interface{}{
		"1": map[string]interface{}{
			"id":   1,
			"name": "Default",
			"dyn":  0,
			"new": map[string]interface{}{
				"delays":        []int{1, 10},
				"ints":          []int{1, 4, 7},
				"initialFactor": 2500,
				"perDay":        20,
				"order":         1,
				"bury":          true,
				"separate":      true,
			},
			"lapse": map[string]interface{}{
				"delays":      []int{10},
				"mult":        0,
				"minInt":      1,
				"leechFails":  8,
				"leechAction": 0,
			},
			"rev": map[string]interface{}{
				"perDay":   100,
				"ease4":    1.3,
				"fuzz":     0.05,
				"maxIvl":   36500,
				"ivlFct":   1,
				"bury":     true,
				"minSpace": 1,
			},
			"timer":    0,
			"maxTaken": 60,
			"usn":      0,
			"mod":      now,
			"autoplay": false,
			"replayq":  false,
		},
	}
	dconfJSON, err := json.Marshal(dconf)
	if err != nil {
		return err
	}

	query := `INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = db.Exec(query,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver (schema version)
		0,        // dty
		0,        // usn
		0,        // ls
		string(confJSON),
		string(modelsJSON),
		string(decksJSON),
		string(dconfJSON),
		"{}", // tags
	)
	return err
}

func field(name string, ord, size int) map[string]interface{} {
	return map[string]interface{}{
		"name":   name,
		"ord":    ord,
		"sticky": false,
		"rtl":    false,
		"font":   "Arial",
		"size":   size,
		"media":  []string{},
	}
}

// createNoteTypeConfig creates the note type configuration
func (g *APKGGenerator) createNoteTypeConfig() map[string]interface{} {
	return map[string]interface{}{
		"id":    g.modelID,
		"name":  "Speaking Flashcards (Chinese/English + Reverse)",
		"type":  0,
		"mod":   g.now().Unix(),
		"usn":   -1,
		"sortf": 0,
		"did":   g.deckID,
		"req":   [][]interface{}{{0, "all", []int{0}}, {1, "all", []int{1}}},
		"vers":  []int{},
		"tags":  []string{},
		"latexPre": `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`,
		"latexPost": `\end{document}`,
		"flds": []map[string]interface{}{
			field("Chinese", 0, 24),
			field("English", 1, 20),
			field("Verb", 2, 16),
		},
		"tmpls": []map[string]interface{}{
			{
				"name":  "Chinese → English",
				"ord":   0,
				"qfmt":  frontTemplate,
				"afmt":  backTemplate,
				"did":   nil,
				"bqfmt": "",
				"bafmt": "",
			},
			{
				"name":  "English → Chinese",
				"ord":   1,
				"qfmt":  reverseFrontTemplate,
				"afmt":  reverseBackTemplate,
				"did":   nil,
				"bqfmt": "",
				"bafmt": "",
			},
		},
		"css": cardCSS,
	}
}

const frontTemplate = `<div class="front">
{{#Verb}}<div class="verb">Verb: {{Verb}}</div>{{/Verb}}
<div class="chinese">{{Chinese}}</div>
</div>`

const backTemplate = `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="english">{{English}}</div>
</div>`

const reverseFrontTemplate = `<div class="front">
<div class="english">{{English}}</div>
</div>`

const reverseBackTemplate = `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="chinese">{{Chinese}}</div>
{{#Verb}}<div class="verb">Verb: {{Verb}}</div>{{/Verb}}
</div>`

// cardCSS styles the cards, including the phrasal verb highlight spans
const cardCSS = `.card {
  font-family: Arial, sans-serif;
  font-size: 20px;
  text-align: center;
  color: #333;
  background-color: white;
}

.front, .back {
  padding: 20px;
}

.chinese {
  font-size: 32px;
  font-weight: bold;
  color: #2c3e50;
  margin: 20px 0;
}

.english {
  font-size: 24px;
  color: #34495e;
  margin: 20px 0;
}

.verb {
  font-size: 14px;
  text-transform: uppercase;
  color: #7f8c8d;
}

.phrasal-verb {
  color: #c0392b;
  font-weight: bold;
}

.phrasal-verb-en {
  color: #27ae60;
  font-weight: bold;
}

hr#answer {
  margin: 30px 0;
  border: 0;
  border-top: 1px solid #ecf0f1;
}`

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// fieldChecksum is Anki's csum: the first 32 bits of the SHA1 of the sort
// field with HTML removed
func fieldChecksum(field string) int64 {
	sum := sha1.Sum([]byte(tagPattern.ReplaceAllString(field, "")))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}

// insertNotesAndCards inserts all notes and cards into the database
func (g *APKGGenerator) insertNotesAndCards(db *sql.DB) error {
	now := g.now()

	noteQuery := `INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	cardQuery := `INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, n := range g.notes {
		// Leave space for 2 cards per note
		noteID := now.UnixMilli() + int64(i*3)

		// Join fields with field separator (ASCII 31)
		fields := strings.Join([]string{n.Chinese, n.English, n.VerbGroup}, "\x1f")
		sortField := tagPattern.ReplaceAllString(n.Chinese, "")

		_, err := db.Exec(noteQuery,
			noteID,                   // id
			uuid.NewString(),         // guid
			g.modelID,                // mid
			now.Unix(),               // mod
			-1,                       // usn
			n.Tags(),                 // tags
			fields,                   // flds
			sortField,                // sfld
			fieldChecksum(n.Chinese), // csum
			0,                        // flags
			"",                       // data
		)
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		// One card per template: forward and reverse
		for ord := 0; ord < 2; ord++ {
			cardID := noteID + int64(ord) + 1
			_, err = db.Exec(cardQuery,
				cardID,     // id
				noteID,     // nid
				g.deckID,   // did
				ord,        // ord (template)
				now.Unix(), // mod
				-1,         // usn
				0,          // type (0=new)
				0,          // queue (0=new)
				i*2+ord+1,  // due (position for new cards)
				0,          // ivl
				0,          // factor
				0,          // reps
				0,          // lapses
				0,          // left
				0,          // odue
				0,          // odid
				0,          // flags
				"",         // data
			)
			if err != nil {
				return fmt.Errorf("failed to insert card %d of note %d: %w", ord, i, err)
			}
		}
	}

	return nil
}

// createZipPackage creates the final .apkg zip file
func (g *APKGGenerator) createZipPackage(tempDir, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := addZipEntry(archive, filepath.Join(tempDir, entry.Name()), entry.Name()); err != nil {
			return err
		}
	}

	return archive.Close()
}

func addZipEntry(archive *zip.Writer, path, name string) error {
	writer, err := archive.Create(name)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(writer, file)
	return err
}
