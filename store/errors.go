package store

import "errors"

var (
	// ErrEmptyTable is returned when Put is called without a table name.
	ErrEmptyTable = errors.New("bookshelf: table name is empty")

	// ErrEmptyRecord is returned when Put is called with an item that has no attributes.
	ErrEmptyRecord = errors.New("bookshelf: record has no attributes")

	// ErrClientInit is returned when the lazily built DynamoDB client could not be created.
	ErrClientInit = errors.New("bookshelf: dynamodb client initialization failed")

	// ErrPutFailed is returned when DynamoDB rejects or fails a write
	// (network, authorization, throttling or validation).
	ErrPutFailed = errors.New("bookshelf: put item failed")
)
