// Package book defines the Book resource and its DynamoDB record format.
//
// A Book travels two ways:
//
//   - as JSON between the API and its callers ([Decode], [encoding/json])
//   - as a DynamoDB item with string attributes id, name and author
//     ([Book.Record], [FromRecord])
//
// Identifiers are always server-assigned with [NewID]; an id supplied by a
// caller is decoded but never persisted.
//
// # Errors
//
//   - [ErrInvalidBook] - request body is not a well-formed book
//   - [MappingError] - a stored item is missing a required attribute
package book
