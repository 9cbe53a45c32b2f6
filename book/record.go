package book

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names of a book item.
const (
	AttrID     = "id"
	AttrName   = "name"
	AttrAuthor = "author"
)

// record is the DynamoDB shape of a Book.
type record struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Author string `dynamodbav:"author"`
}

// Record converts the book to a DynamoDB item holding exactly the
// id, name and author string attributes.
func (b Book) Record() (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(record{
		ID:     b.ID,
		Name:   b.Name,
		Author: b.Author,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal book %s: %w", b.ID, err)
	}
	return item, nil
}

// FromRecord converts a DynamoDB item back to a Book.
// It returns a *MappingError if id, name or author is absent or not a string.
func FromRecord(item map[string]types.AttributeValue) (Book, error) {
	for _, field := range []string{AttrID, AttrName, AttrAuthor} {
		if _, ok := item[field].(*types.AttributeValueMemberS); !ok {
			return Book{}, &MappingError{Field: field}
		}
	}

	var r record
	if err := attributevalue.UnmarshalMap(item, &r); err != nil {
		return Book{}, fmt.Errorf("unmarshal book: %w", err)
	}
	return Book{ID: r.ID, Name: r.Name, Author: r.Author}, nil
}
