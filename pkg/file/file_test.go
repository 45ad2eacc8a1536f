package file_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fetchkit/pkg/file"
)

// createFileHeader builds a multipart.FileHeader around content, the
// same way an HTTP handler would receive it.
func createFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "report.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

		f, err := file.FromPath(path)
		require.NoError(t, err)

		assert.Equal(t, path, f.LocalPath)
		assert.Equal(t, "report.pdf", f.Filename)
		assert.Equal(t, "pdf", f.Extension)
		assert.Nil(t, f.Binary)
		assert.Empty(t, f.Headers)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		f, err := file.FromPath(filepath.Join(t.TempDir(), "nope.txt"))
		require.ErrorIs(t, err, file.ErrFileNotFound)
		assert.Nil(t, f)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		f, err := file.FromPath(t.TempDir())
		require.ErrorIs(t, err, file.ErrIsDirectory)
		assert.Nil(t, f)
	})
}

func TestFromBinary(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		data := []byte("hello world")

		f, err := file.FromBinary("notes.txt", data)
		require.NoError(t, err)

		assert.Empty(t, f.LocalPath)
		assert.Equal(t, "notes.txt", f.Filename)
		assert.Equal(t, "txt", f.Extension)
		assert.Equal(t, data, f.Binary)
	})

	t.Run("empty filename", func(t *testing.T) {
		t.Parallel()
		f, err := file.FromBinary("", []byte("data"))
		require.ErrorIs(t, err, file.ErrEmptyFilename)
		assert.Nil(t, f)
	})

	t.Run("path components stripped", func(t *testing.T) {
		t.Parallel()
		f, err := file.FromBinary("../../etc/passwd", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "passwd", f.Filename)
	})
}

func TestFromUpload(t *testing.T) {
	t.Parallel()

	t.Run("png upload", func(t *testing.T) {
		t.Parallel()
		content := []byte("\x89PNG\r\n\x1a\n0000000000")
		fh := createFileHeader(t, "avatar.png", content)

		f, err := file.FromUpload(fh)
		require.NoError(t, err)

		assert.Equal(t, "avatar.png", f.Filename)
		assert.Equal(t, content, f.Binary)
		assert.Equal(t, "image/png", f.MIMEType)
		assert.Equal(t, "png", f.Extension)
	})

	t.Run("nil header", func(t *testing.T) {
		t.Parallel()
		f, err := file.FromUpload(nil)
		require.ErrorIs(t, err, file.ErrNilFileHeader)
		assert.Nil(t, f)
	})
}

func TestMaterialize(t *testing.T) {
	t.Parallel()

	t.Run("binary descriptor", func(t *testing.T) {
		t.Parallel()
		data := []byte("binary payload")
		f, err := file.FromBinary("data.bin", data)
		require.NoError(t, err)

		m, err := f.Materialize()
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Remove(m.LocalPath) })

		assert.NotSame(t, f, m)
		assert.NotEmpty(t, m.LocalPath)
		assert.Nil(t, m.Binary)
		assert.Equal(t, "data.bin", m.Filename)
		assert.Equal(t, "bin", m.Extension)

		got, err := os.ReadFile(m.LocalPath)
		require.NoError(t, err)
		assert.Equal(t, data, got)

		// The original descriptor is untouched.
		assert.Empty(t, f.LocalPath)
		assert.Equal(t, data, f.Binary)
	})

	t.Run("already materialized", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "x.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		f, err := file.FromPath(path)
		require.NoError(t, err)

		m, err := f.Materialize()
		require.NoError(t, err)
		assert.Same(t, f, m)
	})

	t.Run("nothing to materialize", func(t *testing.T) {
		t.Parallel()
		f := &file.File{Filename: "ghost"}
		m, err := f.Materialize()
		require.ErrorIs(t, err, file.ErrNotMaterializable)
		assert.Nil(t, m)
	})
}

func TestExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jpg", file.Ext("photo.jpg"))
	assert.Equal(t, "JPG", file.Ext("photo.JPG"))
	assert.Equal(t, "gz", file.Ext("archive.tar.gz"))
	assert.Equal(t, "", file.Ext("README"))
	assert.Equal(t, "", file.Ext(""))
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "passwd", file.SanitizeFilename("../../../etc/passwd"))
	assert.Equal(t, "file.txt", file.SanitizeFilename("C:\\Windows\\file.txt"))
	assert.Equal(t, "unnamed", file.SanitizeFilename(""))
	assert.Equal(t, "unnamed", file.SanitizeFilename(".."))
	assert.Equal(t, "plain.txt", file.SanitizeFilename("plain.txt"))
}
