package repositories

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// BallotReader defines read operations for ballot data
type BallotReader interface {
	// FindBallotsByPollID retrieves all ballots cast on a poll.
	FindBallotsByPollID(ctx context.Context, pollID string) ([]domain.Ballot, error)

	// FindBallotByVoter retrieves the ballot a voter cast on a poll, if any.
	FindBallotByVoter(ctx context.Context, pollID string, voterID string) (*domain.Ballot, error)
}

// BallotWriter defines write operations for ballot data
type BallotWriter interface {
	// SaveBallot persists a new ballot. The one-ballot-per-voter constraint
	// is enforced by the database; a violation surfaces as a conflict error.
	SaveBallot(ctx context.Context, ballot domain.Ballot) error
}

// BallotRepositoryFacade combines all ballot-related repository interfaces
type BallotRepositoryFacade interface {
	BallotReader
	BallotWriter
}

// BallotRepositoryWithTx extends BallotRepositoryFacade with transaction capabilities
type BallotRepositoryWithTx interface {
	BallotRepositoryFacade
	TransactionManager
}
