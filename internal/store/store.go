package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tudu/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user tool.

// ErrOutOfRange reports a removal index outside the stored list.
var ErrOutOfRange = errors.New("index out of range")

// Store reads and writes the todo list as one JSON array on disk.
// Every operation works on the whole file; nothing is cached.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load returns every stored todo. A missing file is created holding an
// empty list; content that does not parse as a todo list is treated as
// empty. Only read and create failures surface an error.
func (s *Store) Load() ([]model.Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := s.write([]model.Todo{}); err != nil {
				return nil, err
			}
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return []model.Todo{}, nil
	}
	return todos, nil
}

// Append adds item to the stored list and returns the updated list.
// Unlike Load it is strict: a missing or unparsable file fails the
// operation instead of being treated as empty.
func (s *Store) Append(item model.Todo) ([]model.Todo, error) {
	todos, err := s.read()
	if err != nil {
		return nil, err
	}
	todos = append(todos, item)
	if err := s.write(todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// RemoveAt deletes the todo at index (0-based). Strict like Append;
// an index outside [0, len) fails with ErrOutOfRange.
func (s *Store) RemoveAt(index int) error {
	todos, err := s.read()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(todos) {
		return fmt.Errorf("%w: have %d, got %d", ErrOutOfRange, len(todos), index)
	}
	todos = append(todos[:index], todos[index+1:]...)
	return s.write(todos)
}

func (s *Store) read() ([]model.Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return todos, nil
}

func (s *Store) write(todos []model.Todo) error {
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
