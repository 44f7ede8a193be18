package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultCandidates are searched in order when no card file is given
var DefaultCandidates = []string{
	"data.json",
	filepath.Join("..", "data.json"),
}

// Loader reads card sources into a Store
type Loader struct {
	// TextKind is assigned to every card read from a plain text file
	TextKind Kind

	logger *zap.Logger
}

// NewLoader creates a loader that reports skipped records to logger
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		TextKind: KindVocabulary,
		logger:   logger,
	}
}

// Resolve returns path if set, otherwise the first candidate that exists
// as a regular file. An empty result means there is no card source.
func Resolve(path string, candidates []string) string {
	if path != "" {
		return path
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Load reads the card file at path. A missing path or file yields an empty
// store; only unreadable or undecodable files return an error. Parse
// failures are returned as *DecodeError.
func (l *Loader) Load(path string) (*Store, error) {
	if path == "" {
		l.logger.Warn("No card source found, starting with an empty deck")
		return NewStore(nil), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		l.logger.Warn("Card file does not exist", zap.String("path", path))
		return NewStore(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read card file: %w", err)
	}

	cards, err := l.Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	l.logger.Info("Loaded cards", zap.String("path", path), zap.Int("cards", len(cards)))
	return NewStore(cards), nil
}

// DecodeError reports a card file that was read but could not be parsed
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses card data in the format named by the file extension ext
func (l *Loader) Decode(data []byte, ext string) ([]Card, error) {
	switch strings.ToLower(ext) {
	case ".json", "":
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON cards: %w", err)
		}
		return l.fromDocument(doc), nil
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML cards: %w", err)
		}
		return l.fromDocument(doc), nil
	case ".toml":
		var doc map[string]any
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML cards: %w", err)
		}
		return l.fromDocument(doc), nil
	case ".xlsx":
		return l.fromXLSX(data)
	case ".txt":
		return l.fromText(string(data)), nil
	}
	return nil, fmt.Errorf("unsupported card file format: %q", ext)
}

// fromDocument accepts a bare card list or an object with a "flashcards" list
func (l *Loader) fromDocument(doc any) []Card {
	items, ok := asList(doc)
	if !ok {
		if m, isMap := asMap(doc); isMap {
			items, ok = asList(m["flashcards"])
		}
	}
	if !ok {
		l.logger.Warn("Card source has neither a card list nor a flashcards field")
		return nil
	}

	cards := make([]Card, 0, len(items))
	for i, item := range items {
		c, err := cardFromValue(item)
		if err != nil {
			l.logger.Warn("Skipping card", zap.Int("index", i), zap.Error(err))
			continue
		}
		cards = append(cards, c)
	}
	return cards
}

// fromText reads "chinese = english" lines
func (l *Loader) fromText(content string) []Card {
	var cards []Card
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c := Card{Kind: l.TextKind}
		if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
			c.Source = strings.TrimSpace(parts[0])
			c.Target = strings.TrimSpace(parts[1])
		} else {
			c.Source = line
		}
		if c.Source == "" && c.Target == "" {
			continue
		}
		c.normalize()
		cards = append(cards, c)
	}
	return cards
}

// cardFromValue converts one decoded record. Non-string text fields
// become empty strings; only an unknown type rejects the record.
func cardFromValue(v any) (Card, error) {
	m, ok := asMap(v)
	if !ok {
		return Card{}, fmt.Errorf("card is not an object")
	}

	kind, err := ParseKind(stringField(m, "type", "kind"))
	if err != nil {
		return Card{}, err
	}

	c := Card{
		Kind:      kind,
		Source:    stringField(m, "chinese", "source"),
		Target:    stringField(m, "english", "target"),
		VerbGroup: stringField(m, "verbGroup", "verb_group"),
	}

	raw, ok := m["phrasalVerbs"]
	if !ok {
		raw = m["phrasal_verbs"]
	}
	if list, ok := asList(raw); ok {
		c.PhrasalVerbs = make([]PhrasalVerbDef, 0, len(list))
		for _, item := range list {
			dm, _ := asMap(item)
			c.PhrasalVerbs = append(c.PhrasalVerbs, PhrasalVerbDef{
				Source: stringField(dm, "chinese", "source"),
				Target: stringField(dm, "english", "target"),
			})
		}
	}

	c.normalize()
	return c, nil
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			return s
		}
	}
	return ""
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// fromXLSX reads the first sheet. A header row naming the columns is
// optional; without it the order is type, chinese, english, verbGroup,
// phrasalVerbs.
func (l *Loader) fromXLSX(data []byte) ([]Card, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	columns := map[string]int{
		"type":         0,
		"chinese":      1,
		"english":      2,
		"verbGroup":    3,
		"phrasalVerbs": 4,
	}
	start := 0
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "type") {
		columns = headerColumns(rows[0])
		start = 1
	}

	var cards []Card
	for i := start; i < len(rows); i++ {
		row := rows[i]
		record := make(map[string]any, len(columns))
		for name, idx := range columns {
			if idx < len(row) {
				record[name] = strings.TrimSpace(row[idx])
			}
		}
		if list, ok := record["phrasalVerbs"].(string); ok {
			record["phrasalVerbs"] = parsePhrasalVerbList(list)
		}

		c, err := cardFromValue(record)
		if err != nil {
			l.logger.Warn("Skipping spreadsheet row", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func headerColumns(header []string) map[string]int {
	known := map[string]string{
		"type":          "type",
		"chinese":       "chinese",
		"english":       "english",
		"verbgroup":     "verbGroup",
		"verb_group":    "verbGroup",
		"phrasalverbs":  "phrasalVerbs",
		"phrasal_verbs": "phrasalVerbs",
	}
	columns := make(map[string]int)
	for i, name := range header {
		if canonical, ok := known[strings.ToLower(strings.TrimSpace(name))]; ok {
			columns[canonical] = i
		}
	}
	return columns
}

// parsePhrasalVerbList parses "放弃=give up; 拿起=pick up"
func parsePhrasalVerbList(s string) []any {
	var defs []any
	for _, item := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '；' }) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		def := map[string]any{}
		parts := strings.SplitN(item, "=", 2)
		def["chinese"] = strings.TrimSpace(parts[0])
		if len(parts) == 2 {
			def["english"] = strings.TrimSpace(parts[1])
		}
		defs = append(defs, def)
	}
	return defs
}
