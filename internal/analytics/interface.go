package analytics

import (
	"context"

	"smarttaskai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetSummary derives all metrics from the user's current tasks.
	GetSummary(ctx context.Context, sc model.Scope) (GetSummaryOutput, error)
}
