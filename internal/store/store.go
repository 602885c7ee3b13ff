package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/FairEM360/internal/pareto"
	"github.com/MikeSquared-Agency/FairEM360/internal/wizard"
)

var ErrNotFound = errors.New("not found")

// Comparison is a saved set of series for one dataset and fairness setup,
// re-rendered on demand. Colors and frontier flags are never stored.
type Comparison struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	DatasetID          string          `json:"dataset_id"`
	SensitiveAttribute string          `json:"sensitive_attribute,omitempty"`
	FairnessThreshold  *float64        `json:"fairness_threshold,omitempty"`
	Series             []pareto.Series `json:"series"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type ComparisonFilter struct {
	DatasetID string
	Limit     int
	Offset    int
}

// Session is one user's walk through the wizard.
type Session struct {
	ID        uuid.UUID    `json:"id"`
	State     wizard.State `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type Store interface {
	CreateComparison(ctx context.Context, c *Comparison) error
	GetComparison(ctx context.Context, id uuid.UUID) (*Comparison, error)
	ListComparisons(ctx context.Context, filter ComparisonFilter) ([]*Comparison, error)
	DeleteComparison(ctx context.Context, id uuid.UUID) error

	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	UpdateSession(ctx context.Context, s *Session) error

	Close() error
}
