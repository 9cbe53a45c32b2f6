// Package store provides the DynamoDB client used to persist books.
//
// A [Store] wraps a single operation, [Store.Put], which writes one item
// with unconditional overwrite semantics: no condition expression, no
// read-before-write and no retries beyond those of the AWS SDK.
//
// # Client Lifecycle
//
// Use [New] to wrap an existing client (or a fake in tests). Use [NewLazy]
// inside a Lambda function: the DynamoDB client is built on the first
// [Store.Put] and reused by every later invocation in the same execution
// environment:
//
//	s := store.NewLazy(store.DefaultConfig())
//	err := s.Put(ctx, "book", item)
//
// A Store is safe for concurrent use.
//
// # Errors
//
//   - [ErrEmptyTable] - no table name given
//   - [ErrEmptyRecord] - item has no attributes
//   - [ErrClientInit] - the lazy client could not be built
//   - [ErrPutFailed] - DynamoDB rejected the write; wraps the SDK error
package store
