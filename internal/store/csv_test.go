package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-traineeship-monitor/internal/listing"
)

func sample(id string) listing.Listing {
	return listing.Listing{
		ID:           id,
		Title:        "Traineeship " + id,
		Organization: "Acme Research",
		Location:     "Lisbon",
		Deadline:     "31/12/2025",
		StartDate:    "01/09/2025",
		Duration:     "6 months",
		Description:  "A placement with, commas and \"quotes\" in it",
		Link:         "https://example.org/t/" + id,
		DiscoveredAt: time.Date(2025, 8, 25, 10, 30, 0, 0, time.UTC),
	}
}

func TestLoadAllFirstRun(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "history.csv"))
	assert.Empty(t, s.LoadAll())
}

func TestAppendNewRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := New(path)

	require.NoError(t, s.AppendNew([]listing.Listing{sample("a"), sample("b")}))

	history := s.LoadAll()
	require.Len(t, history, 2)
	assert.Equal(t, sample("a"), history[0])
	assert.Equal(t, sample("b"), history[1])
}

func TestAppendNewWritesHeaderOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := New(path)

	require.NoError(t, s.AppendNew([]listing.Listing{sample("a")}))
	require.NoError(t, s.AppendNew([]listing.Listing{sample("b")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,title,organization"))
	assert.Equal(t, 1, strings.Count(string(data), "id,title,organization"))
}

func TestAppendNewNeverRewritesExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := New(path)

	require.NoError(t, s.AppendNew([]listing.Listing{sample("a")}))
	before := s.LoadAll()

	require.NoError(t, s.AppendNew([]listing.Listing{sample("b"), sample("c")}))
	after := s.LoadAll()

	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
}

func TestAppendNewEmptyBatchTouchesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := New(path)

	require.NoError(t, s.AppendNew(nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAppendNewCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.csv")
	s := New(path)

	require.NoError(t, s.AppendNew([]listing.Listing{sample("a")}))
	assert.Len(t, s.LoadAll(), 1)
}

func TestLoadAllBrokenFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte("\"unterminated\nquote,mess"), 0644))

	s := New(path)

	//read failure treats everything on the page as new rather than failing
	assert.Empty(t, s.LoadAll())
}
