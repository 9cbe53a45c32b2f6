// Package main is the entry point for the bookshelf create-book Lambda function.
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/bookshelf/api"
	"github.com/jacentio/bookshelf/internal/config"
	"github.com/jacentio/bookshelf/internal/logging"
	"github.com/jacentio/bookshelf/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// Built on the first write, then shared by every invocation in this environment
	s := store.NewLazy(store.Config{
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
	})

	h := api.NewHandler(s, api.Options{
		TableName:        cfg.TableName,
		FailOnStoreError: cfg.FailOnStoreError,
	}, logger)

	lambda.Start(h.HandleCreate)
}
