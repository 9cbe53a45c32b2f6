package api_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeStore records Put calls and returns err.
type fakeStore struct {
	mu   sync.Mutex
	puts []put
	err  error
}

type put struct {
	table string
	item  map[string]types.AttributeValue
}

func (f *fakeStore) Put(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, put{table: table, item: item})
	return f.err
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.puts)
}

// recorder is a slog.Handler that keeps every record it handles.
type recorder struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
}

func newRecorder() *recorder {
	return &recorder{mu: &sync.Mutex{}, records: &[]slog.Record{}}
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	rec = rec.Clone()
	rec.AddAttrs(r.attrs...)
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, rec)
	return nil
}

func (r *recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recorder{
		mu:      r.mu,
		records: r.records,
		attrs:   append(append([]slog.Attr{}, r.attrs...), attrs...),
	}
}

func (r *recorder) WithGroup(string) slog.Handler { return r }

// atLevel returns the records logged at level.
func (r *recorder) atLevel(level slog.Level) []slog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []slog.Record
	for _, rec := range *r.records {
		if rec.Level == level {
			out = append(out, rec)
		}
	}
	return out
}

// attr returns the string form of the named attribute of rec.
func attr(rec slog.Record, key string) (string, bool) {
	var value string
	var found bool
	rec.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			found = true
			return false
		}
		return true
	})
	return value, found
}
