package testdict

import (
	"os"
	"testing"
)

// WriteTemp writes data to a temp file named pattern and registers its
// removal via t.Cleanup, returning the path. The dic package's readers
// are mmap-backed and need a real file on disk, not an in-memory buffer.
func WriteTemp(t *testing.T, pattern string, data []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("testdict: creating temp file: %v", err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("testdict: writing temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("testdict: closing temp file: %v", err)
	}
	return f.Name()
}
