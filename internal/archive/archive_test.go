package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/cardstudy/internal/testutil"
)

func TestArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()
	export := filepath.Join(tmpDir, "Speaking_Flashcards.apkg")
	testutil.CreateTestFile(t, export, []byte("old export"))

	archived, err := ArchiveFile(export)
	if err != nil {
		t.Fatalf("ArchiveFile failed: %v", err)
	}

	// Check that the export no longer exists
	testutil.AssertFileNotExists(t, export)
	testutil.AssertFileExists(t, archived)
	testutil.AssertFileContains(t, archived, "old export")

	if filepath.Dir(archived) != filepath.Join(tmpDir, "archive") {
		t.Errorf("archived into %s, want the archive directory", filepath.Dir(archived))
	}

	name := filepath.Base(archived)
	if !strings.HasPrefix(name, "Speaking_Flashcards-") || !strings.HasSuffix(name, ".apkg") {
		t.Errorf("Unexpected archive name: %s", name)
	}

	// Verify timestamp format (YYYYMMDD-HHMMSS)
	timestamp := strings.TrimSuffix(strings.TrimPrefix(name, "Speaking_Flashcards-"), ".apkg")
	if _, err := time.Parse("20060102-150405", timestamp); err != nil {
		t.Errorf("Invalid timestamp format in archive name: %s", timestamp)
	}
}

func TestArchiveFileMissing(t *testing.T) {
	archived, err := ArchiveFile(filepath.Join(t.TempDir(), "nothing.csv"))
	if err != nil {
		t.Fatalf("ArchiveFile failed: %v", err)
	}
	if archived != "" {
		t.Errorf("Expected no archive path, got %s", archived)
	}
}

func TestArchiveFileDirectory(t *testing.T) {
	if _, err := ArchiveFile(t.TempDir()); err == nil {
		t.Error("Expected an error when archiving a directory")
	}
}

func TestArchiveFileCollision(t *testing.T) {
	tmpDir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 30, 0, 123456000, time.UTC)

	export := filepath.Join(tmpDir, "deck.csv")
	testutil.CreateTestFile(t, export, []byte("first"))
	first, err := archiveFileAt(export, now)
	if err != nil {
		t.Fatalf("first archive failed: %v", err)
	}

	testutil.CreateTestFile(t, export, []byte("second"))
	second, err := archiveFileAt(export, now)
	if err != nil {
		t.Fatalf("second archive failed: %v", err)
	}

	if first == second {
		t.Fatal("archives collided")
	}
	if filepath.Base(first) != "deck-20240301-123000.csv" {
		t.Errorf("first archive = %s", filepath.Base(first))
	}
	if filepath.Base(second) != "deck-20240301-123000.123456.csv" {
		t.Errorf("second archive = %s", filepath.Base(second))
	}
	testutil.AssertFileContains(t, second, "second")

	info, err := os.Stat(first)
	if err != nil {
		t.Fatalf("first archive missing: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("first archive is not a regular file: %v", info.Mode())
	}
	testutil.AssertFileContains(t, first, "first")
}
