package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamWriter(t *testing.T) {
	writer := NewCSVWriter()
	path := filepath.Join(t.TempDir(), "stream.csv")

	stream, err := writer.CreateStreamWriter(path, []string{"id", "mag"})
	require.NoError(t, err)

	require.NoError(t, stream.WriteRecord([]string{"a", "4.5"}))
	require.NoError(t, stream.WriteRecord([]string{"b", "5.1"}))
	require.NoError(t, stream.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "stream output carries a BOM")

	reader := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "mag"}, rows[0])
	assert.Equal(t, []string{"a", "4.5"}, rows[1])
	assert.Equal(t, []string{"b", "5.1"}, rows[2])
}

func TestStreamWriterQuotesEmbeddedCommas(t *testing.T) {
	writer := NewCSVWriter()
	path := filepath.Join(t.TempDir(), "stream.csv")

	stream, err := writer.CreateStreamWriter(path, []string{"id", "place"})
	require.NoError(t, err)
	require.NoError(t, stream.WriteRecord([]string{"a", "Ridgecrest, California"}))
	require.NoError(t, stream.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,place\na,\"Ridgecrest, California\"\n",
		string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
}

func TestStreamWriterCreatesDirectories(t *testing.T) {
	writer := NewCSVWriter()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "stream.csv")

	stream, err := writer.CreateStreamWriter(path, []string{"id"})
	require.NoError(t, err)
	require.NoError(t, stream.WriteRecord([]string{"a"}))
	require.NoError(t, stream.Close())

	assert.FileExists(t, path)
}
