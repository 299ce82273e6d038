package localstate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocalState(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Local State")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "Local State"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeLocalState(t, `{"profile":`))
		assert.ErrorIs(t, err, ErrMalformed)
	})
	t.Run("ok", func(t *testing.T) {
		doc, err := Load(writeLocalState(t, `{"profile":{"info_cache":{"Default":{}}}}`))
		require.NoError(t, err)
		assert.Len(t, doc.Profiles(), 1)
	})
}

func TestOpen_Errors(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "Local State"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = Open(writeLocalState(t, `not json`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFile_Save(t *testing.T) {
	// trailing padding makes the original longer than the rewritten
	// document, so the old tail must be truncated away.
	original := `{"profile":{"info_cache":{"A":{"name":"a very long profile name"},"B":{}},"profiles_order":["A","B"]}}` + strings.Repeat(" ", 512)
	path := writeLocalState(t, original)

	f, doc, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, path, f.Name())

	require.NoError(t, doc.RemoveProfile("A"))
	require.NoError(t, f.Save(doc))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(doc.Indented()), string(got))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Profile{{ID: "B"}}, reloaded.Profiles())
}
