package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classver/classver/internal/config"
)

func TestScanner_AccumulatesWholeTree(t *testing.T) {
	t.Parallel()

	s := New("../../testdata/code", config.Default(), nil)

	db, stats, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.NotNil(t, db)

	// One database for the whole run: fixtures from every translation unit
	// land in the same accumulator, in walk order.
	names := make([]string, 0, db.Len())
	for _, rec := range db.Classes {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{
		"user",
		"value",
		"point",
		"outer::Widget",
		"outer::Widget::Handle",
		"n::m::C",
		"n::Point",
		"Empty",
		"Value",
	}, names)

	assert.Equal(t, 3, stats.TotalFiles)
	assert.Equal(t, 0, stats.SkippedFiles)
	assert.Equal(t, 9, stats.TotalClasses)
	assert.Equal(t, 19, stats.TotalFields)
	assert.GreaterOrEqual(t, stats.ProcessingTimeSeconds, 0.0)
}

func TestScanner_FilterAppliesPerDeclaration(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Filter.Patterns = []string{"outer::"}

	s := New("../../testdata/code", cfg, nil)

	db, stats, err := s.Scan(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, db.Len())
	assert.Equal(t, "outer::Widget", db.Classes[0].Name)
	assert.Equal(t, "outer::Widget::Handle", db.Classes[1].Name)

	// Files are still processed; only declarations are filtered.
	assert.Equal(t, 3, stats.TotalFiles)
	assert.Equal(t, 2, stats.TotalClasses)
}

func TestScanner_EmptyTreeYieldsEmptyDatabase(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), config.Default(), nil)

	db, stats, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, db.Len())
	assert.Equal(t, 0, stats.TotalFiles)
	assert.Equal(t, 0, stats.TotalClasses)
}

func TestScanner_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New("../../testdata/code", config.Default(), nil)

	_, _, err := s.Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanner_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	s := New("../../testdata/code", config.Default(), nil)

	first, _, err := s.Scan(context.Background())
	require.NoError(t, err)
	second, _, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Classes, second.Classes)
}
