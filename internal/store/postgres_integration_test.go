//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/FairEM360/internal/pareto"
	"github.com/MikeSquared-Agency/FairEM360/internal/wizard"
)

func setupTestDB(t *testing.T) *PostgresStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "TRUNCATE fairem_comparisons")
		_, _ = s.pool.Exec(ctx, "TRUNCATE fairem_sessions")
		s.Close()
	})

	return s
}

func TestCreateAndGetComparison(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	threshold := 0.2
	c := &Comparison{
		Name:               "ensembles",
		DatasetID:          "dblp-acm",
		SensitiveAttribute: "venue",
		FairnessThreshold:  &threshold,
		Series: []pareto.Series{
			pareto.NewSeries("accuracy_parity", []pareto.Point{
				{Disparity: 0.1, Performance: 0.9},
				{Disparity: 0.2, Performance: 0.8},
			}),
		},
	}
	require.NoError(t, s.CreateComparison(ctx, c))
	require.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := s.GetComparison(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ensembles", got.Name)
	assert.Equal(t, "venue", got.SensitiveAttribute)
	require.NotNil(t, got.FairnessThreshold)
	assert.Equal(t, 0.2, *got.FairnessThreshold)
	require.Len(t, got.Series, 1)
	assert.Len(t, got.Series[0].Points, 2)
}

func TestGetComparisonNotFound(t *testing.T) {
	s := setupTestDB(t)
	got, err := s.GetComparison(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAndDeleteComparisons(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	for _, ds := range []string{"a", "a", "b"} {
		require.NoError(t, s.CreateComparison(ctx, &Comparison{Name: "c", DatasetID: ds}))
	}

	all, err := s.ListComparisons(ctx, ComparisonFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyA, err := s.ListComparisons(ctx, ComparisonFilter{DatasetID: "a"})
	require.NoError(t, err)
	assert.Len(t, onlyA, 2)

	limited, err := s.ListComparisons(ctx, ComparisonFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, s.DeleteComparison(ctx, onlyA[0].ID))
	assert.ErrorIs(t, s.DeleteComparison(ctx, onlyA[0].ID), ErrNotFound)
}

func TestSessionRoundTrip(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	sess := &Session{State: wizard.New()}
	require.NoError(t, s.CreateSession(ctx, sess))

	sess.State = sess.State.Next().WithDataset("amazon-google")
	require.NoError(t, s.UpdateSession(ctx, sess))

	got, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, wizard.StepDatasetSelection, got.State.Step)
	assert.Equal(t, "amazon-google", got.State.DatasetID)

	missing := &Session{ID: uuid.New(), State: wizard.New()}
	assert.ErrorIs(t, s.UpdateSession(ctx, missing), ErrNotFound)
}
