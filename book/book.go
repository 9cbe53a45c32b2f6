package book

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Book is the resource exchanged with callers and persisted to the book table.
type Book struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Author string `json:"author"`
}

// payload mirrors Book with pointer fields so a missing field can be told
// apart from an empty string.
type payload struct {
	ID     *string `json:"id"`
	Name   *string `json:"name" validate:"required"`
	Author *string `json:"author" validate:"required"`
}

var validate = validator.New()

// Decode parses a JSON request body into a Book.
// name and author must be present; any length, including zero, is accepted.
func Decode(body string) (Book, error) {
	var p payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return Book{}, fmt.Errorf("%w: %w", ErrInvalidBook, err)
	}
	if err := validate.Struct(p); err != nil {
		return Book{}, fmt.Errorf("%w: %w", ErrInvalidBook, err)
	}

	b := Book{Name: *p.Name, Author: *p.Author}
	if p.ID != nil {
		b.ID = *p.ID
	}
	return b, nil
}

// NewID returns a random version 4 UUID in its 36 character textual form.
func NewID() string {
	return uuid.NewString()
}
