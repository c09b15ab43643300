package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tudu/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"))
}

func TestLoadCreatesMissingFile(t *testing.T) {
	s := tempStore(t)

	todos, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, todos)

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestLoadTreatsCorruptFileAsEmpty(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	todos, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, todos)

	// The corrupt content stays on disk; Load never rewrites it.
	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(b))
}

func TestAppendRoundTrip(t *testing.T) {
	s := tempStore(t)
	_, err := s.Load() // initialize the file
	require.NoError(t, err)

	td := model.Todo{
		ID:        7,
		Name:      "Milk",
		Category:  "SHOPPING",
		Text:      "buy milk",
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
	updated, err := s.Append(td)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, td, updated[0])

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, td, loaded[0])
}

func TestAppendFailsOnMissingFile(t *testing.T) {
	s := tempStore(t)

	_, err := s.Append(model.New("a", "b", "c"))
	assert.Error(t, err)
}

func TestAppendFailsOnCorruptFile(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.Append(model.New("a", "b", "c"))
	assert.Error(t, err)
}

func TestRemoveAt(t *testing.T) {
	s := tempStore(t)
	_, err := s.Load()
	require.NoError(t, err)
	_, err = s.Append(model.New("first", "", ""))
	require.NoError(t, err)
	_, err = s.Append(model.New("second", "", ""))
	require.NoError(t, err)

	require.NoError(t, s.RemoveAt(0))

	todos, err := s.Load()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "second", todos[0].Name)
}

func TestRemoveAtOutOfRange(t *testing.T) {
	s := tempStore(t)
	_, err := s.Load()
	require.NoError(t, err)
	_, err = s.Append(model.New("only", "", ""))
	require.NoError(t, err)

	assert.ErrorIs(t, s.RemoveAt(1), ErrOutOfRange)
	assert.ErrorIs(t, s.RemoveAt(-1), ErrOutOfRange)

	todos, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestRemoveAtEmptyList(t *testing.T) {
	s := tempStore(t)
	_, err := s.Load()
	require.NoError(t, err)

	assert.ErrorIs(t, s.RemoveAt(0), ErrOutOfRange)
}
