package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obops/obadmin/internal/result"
)

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "ob_query_20250314_092653.csv", DefaultFilename(now))
}

func TestWriteFileRoundTrip(t *testing.T) {
	set := &result.Set{
		Headers: []string{"id", "name", "note"},
		Rows: []result.Row{
			{result.Int(1), result.Text("alpha"), result.Text("line one\nline two")},
			{result.Int(2), result.Text("beta, inc."), result.Null()},
			{result.Int(3), result.Text(`quote "me"`), result.Float(2.5)},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(path, set))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, utf8BOM), "file must start with a UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"id", "name", "note"}, records[0])
	assert.Equal(t, []string{"1", "alpha", "line one\nline two"}, records[1])
	assert.Equal(t, []string{"2", "beta, inc.", ""}, records[2])
	assert.Equal(t, []string{"3", `quote "me"`, "2.5"}, records[3])
}

func TestWriteFileEmptySet(t *testing.T) {
	set := &result.Set{Headers: []string{"a", "b"}}
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteFile(path, set))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a", "b"}, records[0])
}

func TestWriteFileCreateFailure(t *testing.T) {
	set := &result.Set{Headers: []string{"a"}}
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}
