package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PutItemAPI is the subset of *dynamodb.Client used by Store.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store writes items to DynamoDB.
type Store struct {
	connect func(context.Context) (PutItemAPI, error)

	once    sync.Once
	client  PutItemAPI
	initErr error
}

// New creates a Store around an existing client.
func New(client PutItemAPI) *Store {
	return &Store{client: client}
}

// NewLazy creates a Store whose DynamoDB client is built on first use.
// The client lives as long as the Store; a failed build is not retried.
func NewLazy(cfg Config) *Store {
	return &Store{
		connect: func(ctx context.Context) (PutItemAPI, error) {
			client, err := NewClient(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// NewClient builds a DynamoDB client from the default AWS configuration chain.
func NewClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = DefaultRegion
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Put writes item to table, replacing any item with the same key.
func (s *Store) Put(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	if table == "" {
		return ErrEmptyTable
	}
	if len(item) == 0 {
		return ErrEmptyRecord
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: table %s: %w", ErrPutFailed, table, err)
	}
	return nil
}

// getClient returns the client, building it on the first call for lazy stores.
func (s *Store) getClient(ctx context.Context) (PutItemAPI, error) {
	s.once.Do(func() {
		if s.client != nil || s.connect == nil {
			return
		}
		s.client, s.initErr = s.connect(ctx)
	})
	if s.initErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientInit, s.initErr)
	}
	if s.client == nil {
		return nil, ErrClientInit
	}
	return s.client, nil
}
