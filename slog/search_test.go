package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/farmdocs"
	"github.com/fwojciec/farmdocs/mock"
	farmslog "github.com/fwojciec/farmdocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with result count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error) {
				return []*farmdocs.SearchResult{
					{Document: &farmdocs.Document{ID: "user-manual-1"}},
					{Document: &farmdocs.Document{ID: "user-manual-2"}},
				}, nil
			},
		}

		svc := farmslog.NewLoggingSearchService(inner, logger)
		results, err := svc.Search(context.Background(), "render queue", farmdocs.SearchOptions{})

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=\"render queue\"")
		assert.Contains(t, output, "results=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error) {
				return nil, errors.New("database locked")
			},
		}

		svc := farmslog.NewLoggingSearchService(inner, logger)
		_, err := svc.Search(context.Background(), "render", farmdocs.SearchOptions{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"database locked\"")
	})
}

func TestLoggingSearchService_CodeExamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SearchService{
		CodeExamplesFn: func(ctx context.Context, query string, limit int) ([]string, error) {
			return []string{"jobs = RepositoryUtils.GetJobs(True)"}, nil
		},
	}

	svc := farmslog.NewLoggingSearchService(inner, logger)
	examples, err := svc.CodeExamples(context.Background(), "jobs", 5)

	require.NoError(t, err)
	assert.Len(t, examples, 1)
	output := buf.String()
	assert.Contains(t, output, "snippets=1")
}

func TestLoggingSearchService_Delegation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SearchService{
		FindDocumentByIDFn: func(ctx context.Context, id string) (*farmdocs.Document, error) {
			return &farmdocs.Document{ID: id}, nil
		},
		StatsFn: func(ctx context.Context) (*farmdocs.IndexStats, error) {
			return &farmdocs.IndexStats{Total: 3}, nil
		},
	}

	svc := farmslog.NewLoggingSearchService(inner, logger)

	doc, err := svc.FindDocumentByID(context.Background(), "user-manual-1")
	require.NoError(t, err)
	assert.Equal(t, "user-manual-1", doc.ID)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}
