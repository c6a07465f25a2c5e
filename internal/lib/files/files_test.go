package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateFile_WritesContent(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateFile(dir, "book.pdf", strings.NewReader("content"))

	assert.Nil(t, err)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCreateFile_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "storage")

	path, err := CreateFile(dir, "book.pdf", strings.NewReader("content"))

	assert.Nil(t, err)
	assert.FileExists(t, path)
}

func TestCreateFile_SameNameGetsIndexedName(t *testing.T) {
	dir := t.TempDir()

	firstPath, err := CreateFile(dir, "book.pdf", strings.NewReader("first"))
	assert.Nil(t, err)

	secondPath, err := CreateFile(dir, "book.pdf", strings.NewReader("second"))
	assert.Nil(t, err)

	assert.NotEqual(t, firstPath, secondPath)
	assert.Equal(t, filepath.Join(dir, "book(1).pdf"), secondPath)

	first, err := os.ReadFile(firstPath)
	assert.Nil(t, err)
	assert.Equal(t, "first", string(first))

	second, err := os.ReadFile(secondPath)
	assert.Nil(t, err)
	assert.Equal(t, "second", string(second))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.pdf")
	assert.Nil(t, os.WriteFile(path, []byte("content"), 0644))

	assert.Nil(t, DeleteFile(path))
	assert.NoFileExists(t, path)
}

func TestDeleteOlderThan(t *testing.T) {
	dir := t.TempDir()

	oldPath := filepath.Join(dir, "old.pdf")
	freshPath := filepath.Join(dir, "fresh.pdf")
	assert.Nil(t, os.WriteFile(oldPath, []byte("old"), 0644))
	assert.Nil(t, os.WriteFile(freshPath, []byte("fresh"), 0644))

	stale := time.Now().Add(-2 * time.Hour)
	assert.Nil(t, os.Chtimes(oldPath, stale, stale))

	assert.Nil(t, DeleteOlderThan(dir, time.Hour))

	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, freshPath)
}

func TestDeleteOlderThan_MissingDir(t *testing.T) {
	assert.Nil(t, DeleteOlderThan(filepath.Join(t.TempDir(), "missing"), time.Hour))
}
