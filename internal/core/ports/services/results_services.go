package services

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// ResultsSvcFacade defines aggregation operations over poll ballots.
type ResultsSvcFacade interface {
	// Tally aggregates the ballots of a poll into per-option counts, the
	// winning gift, and the list of employees who did not vote.
	Tally(ctx context.Context, pollID string, viewerID string) (*domain.TallyResult, error)

	// GetPollDetails builds the per-viewer detail projection of a poll,
	// including final results when the poll is closed.
	GetPollDetails(ctx context.Context, pollID string, viewerID string) (*domain.PollDetails, error)
}
