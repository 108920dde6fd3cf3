package repositories

import (
	"context"
	"time"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// PollReader defines read operations for poll data
type PollReader interface {
	// FindPollByID retrieves a poll with its options, ordered by creation.
	FindPollByID(ctx context.Context, pollID string) (*domain.Poll, error)

	// FindActivePolls retrieves all open polls with their options.
	FindActivePolls(ctx context.Context) ([]domain.Poll, error)

	// FindCompletedPolls retrieves all closed polls with their options.
	FindCompletedPolls(ctx context.Context) ([]domain.Poll, error)
}

// PollWriter defines write operations for poll data
type PollWriter interface {
	// SavePollWithOptions persists a poll and its options in a single
	// transaction. The open-poll-per-birthday-year constraint is enforced
	// by the database; a violation surfaces as a conflict error.
	SavePollWithOptions(ctx context.Context, poll domain.Poll, options []domain.PollOption) error

	// ClosePoll marks the poll closed and stamps its end date.
	ClosePoll(ctx context.Context, pollID string, endDate time.Time, updatedAt time.Time) error

	// UpdatePollEndDate changes the planned end date of an open poll.
	UpdatePollEndDate(ctx context.Context, pollID string, endDate time.Time, updatedAt time.Time) error
}

// PollRepositoryFacade combines all poll-related repository interfaces
type PollRepositoryFacade interface {
	PollReader
	PollWriter
}

// PollRepositoryWithTx extends PollRepositoryFacade with transaction capabilities
type PollRepositoryWithTx interface {
	PollRepositoryFacade
	TransactionManager
}
