package model

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Ids are random, not sequential; collisions are possible and accepted.
const maxID = 9999999

// Todo is the domain model for a single todo entry.
// Immutable after creation; the store only appends and removes.
type Todo struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// New builds a Todo from raw form input. The category is stored
// uppercase; the creation time is UTC.
func New(name, category, text string) Todo {
	return Todo{
		ID:        rand.IntN(maxID),
		Name:      name,
		Category:  strings.ToUpper(category),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
