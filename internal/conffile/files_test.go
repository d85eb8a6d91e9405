package conffile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestResolveFilesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	writeTestFile(t, filepath.Join(tempDir, "app.econf"), "X = 1\n")
	writeTestFile(t, filepath.Join(tempDir, "nested", "db.econf"), "Y = 2\n")
	writeTestFile(t, filepath.Join(tempDir, "notes.txt"), "ignore me\n")

	files, err := ResolveFiles([]string{tempDir})
	if err != nil {
		t.Fatalf("ResolveFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
}

func TestResolveFilesGlob(t *testing.T) {
	tempDir := t.TempDir()
	writeTestFile(t, filepath.Join(tempDir, "a", "one.econf"), "X = 1\n")
	writeTestFile(t, filepath.Join(tempDir, "a", "b", "two.econf"), "Y = 2\n")

	files, err := ResolveFiles([]string{filepath.Join(tempDir, "**", "*.econf")})
	if err != nil {
		t.Fatalf("ResolveFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
}

func TestResolveFilesDeduplicates(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "app.econf")
	writeTestFile(t, path, "X = 1\n")

	files, err := ResolveFiles([]string{path, path, tempDir})
	if err != nil {
		t.Fatalf("ResolveFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
}

func TestResolveFilesNoMatches(t *testing.T) {
	tempDir := t.TempDir()
	_, err := ResolveFiles([]string{tempDir})
	if !errors.Is(err, cerrors.ErrNoFilesFound) {
		t.Fatalf("expected ErrNoFilesFound, got %v", err)
	}
}

func TestResolveFilesMissingLiteralPath(t *testing.T) {
	_, err := ResolveFiles([]string{filepath.Join(t.TempDir(), "missing.econf")})
	if !errors.Is(err, cerrors.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadAndWriteFileRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "app.econf")
	content := "# header\nX : int\nX = 3\n"
	writeTestFile(t, path, content)

	state, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	outPath := filepath.Join(tempDir, "out.econf")
	if err := WriteFile(outPath, state); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("round trip mismatch:\nwant %q\ngot  %q", content, string(data))
	}
}
