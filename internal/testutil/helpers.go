package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleDeckJSON is a small deck in the {"flashcards": [...]} shape
const SampleDeckJSON = `{
  "flashcards": [
    {"type": "sentence", "chinese": "我每天早上跑步。", "english": "I run every morning."},
    {"type": "sentence", "chinese": "他在看书。", "english": "He is reading a book."},
    {"type": "vocabulary", "chinese": "苹果", "english": "apple"},
    {"type": "vocabulary", "chinese": "桌子", "english": "table"},
    {"type": "vocabulary", "chinese": "天气", "english": "weather"},
    {
      "type": "phrasal_verbs",
      "chinese": "他决定放弃吸烟。",
      "english": "He decided to give up smoking.",
      "verbGroup": "give",
      "phrasalVerbs": [{"chinese": "放弃", "english": "give up"}]
    },
    {
      "type": "phrasal_verbs",
      "chinese": "飞机起飞了，我拿起了书。",
      "english": "The plane took off and I picked up the book.",
      "verbGroup": "take",
      "phrasalVerbs": [
        {"chinese": "起飞", "english": "take off"},
        {"chinese": "拿起", "english": "pick up"}
      ]
    }
  ]
}`

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateDeckFile writes content as a card file named name in a fresh
// temporary directory and returns its path
func CreateDeckFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	CreateTestFile(t, path, []byte(content))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// CaptureOutput captures stdout/stderr during test execution
func CaptureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)
	go func() {
		b, _ := io.ReadAll(rOut)
		outCh <- string(b)
	}()
	go func() {
		b, _ := io.ReadAll(rErr)
		errCh <- string(b)
	}()

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return <-outCh, <-errCh
}
