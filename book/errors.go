package book

import (
	"errors"
	"fmt"
)

// ErrInvalidBook is returned when a request body is not valid JSON or lacks a required field.
var ErrInvalidBook = errors.New("bookshelf: invalid book")

// MappingError is returned when a DynamoDB item cannot be converted back to a Book.
type MappingError struct {
	// Field is the attribute that is missing or not a string.
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("bookshelf: record attribute %q missing or not a string", e.Field)
}
