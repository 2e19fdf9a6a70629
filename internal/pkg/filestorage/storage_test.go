package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	stored, err := ls.Save(multipartFile(t, "Kinship Study.PDF", []byte("%PDF-1.4")), "submissions")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.Path, "submissions/"))
	assert.True(t, strings.HasSuffix(stored.Path, ".pdf"))
	assert.Equal(t, "http://localhost:8080/uploads/"+stored.Path, stored.URL)
	assert.Equal(t, "Kinship Study.PDF", stored.Filename)
	assert.Equal(t, int64(8), stored.Size)

	onDisk := filepath.Join(root, filepath.FromSlash(stored.Path))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, ls.Delete(stored.Path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, ls.Delete(stored.Path))
}

func TestLocalStorageContainsTraversal(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "")
	require.NoError(t, err)

	stored, err := ls.Save(multipartFile(t, "a.txt", []byte("x")), "../../escape")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Path, "escape/"))

	full, err := ls.resolve("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "etc", "passwd"), full)

	assert.Error(t, ls.Delete("/"))
}
