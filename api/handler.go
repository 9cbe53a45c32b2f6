// Package api provides the API Gateway Lambda handler that creates books.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/bookshelf/book"
)

// DefaultTableName is the DynamoDB table books are written to.
const DefaultTableName = "book"

// Response bodies for the non-201 outcomes.
const (
	bodyEmpty        = "Empty body"
	bodyInvalidBook  = "Invalid book"
	bodyCannotSave   = "Cannot save book"
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain; charset=utf-8"
)

// Putter writes a single item to a table. *store.Store implements it.
type Putter interface {
	Put(ctx context.Context, table string, item map[string]types.AttributeValue) error
}

// Options configures a Handler.
type Options struct {
	// TableName is the DynamoDB table to write to.
	// Default: "book"
	TableName string

	// FailOnStoreError makes a failed write return 502 instead of 201.
	// Default: false (the failure is logged and the book is returned anyway)
	FailOnStoreError bool
}

// Handler processes API Gateway events that create books.
type Handler struct {
	store  Putter
	opts   Options
	logger *slog.Logger
	newID  func() string
}

// NewHandler creates a new create-book handler.
func NewHandler(s Putter, opts Options, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.TableName == "" {
		opts.TableName = DefaultTableName
	}
	return &Handler{
		store:  s,
		opts:   opts,
		logger: logger,
		newID:  book.NewID,
	}
}

// HandleCreate decodes a book from the request body, assigns it a new id,
// writes it to DynamoDB and returns it with status 201.
// This function is designed to be used as an AWS Lambda handler.
func (h *Handler) HandleCreate(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := h.requestLogger(ctx)

	// Only a non-empty text body is accepted
	if req.Body == "" || req.IsBase64Encoded {
		logger.Debug("rejecting request without text body",
			"base64", req.IsBase64Encoded,
		)
		return textResponse(http.StatusBadRequest, bodyEmpty), nil
	}

	b, err := book.Decode(req.Body)
	if err != nil {
		logger.Warn("rejecting invalid book", "error", err)
		return textResponse(http.StatusUnprocessableEntity, bodyInvalidBook), nil
	}

	// Any caller-supplied id is discarded
	b.ID = h.newID()

	if err := h.save(ctx, b); err != nil {
		logger.Error("cannot save book",
			"id", b.ID,
			"table", h.opts.TableName,
			"error", err,
		)
		if h.opts.FailOnStoreError {
			return textResponse(http.StatusBadGateway, bodyCannotSave), nil
		}
	} else {
		logger.Info("book created", "id", b.ID)
	}

	body, err := json.Marshal(b)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("encode book %s: %w", b.ID, err)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusCreated,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       string(body),
	}, nil
}

// save maps the book to its record and writes it once.
func (h *Handler) save(ctx context.Context, b book.Book) error {
	if h.store == nil {
		return errors.New("no store configured")
	}
	item, err := b.Record()
	if err != nil {
		return err
	}
	return h.store.Put(ctx, h.opts.TableName, item)
}

// requestLogger tags the logger with the Lambda request id when one is available.
func (h *Handler) requestLogger(ctx context.Context) *slog.Logger {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return h.logger.With("requestID", lc.AwsRequestID)
	}
	return h.logger
}

func textResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentTypePlain},
		Body:       body,
	}
}
