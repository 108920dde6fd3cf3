package pgsql

import (
	"context"
	"errors"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBallotRepository struct {
	BaseRepository
}

// newPgxBallotRepository creates a new repository for ballot data.
func newPgxBallotRepository(pool *pgxpool.Pool) portsrepo.BallotRepositoryFacade {
	return &PgxBallotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBallotRepository implements portsrepo.BallotRepositoryFacade
var _ portsrepo.BallotRepositoryFacade = (*PgxBallotRepository)(nil)

var FULL_BALLOT_SELECT_QUERY = `
SELECT
	b.ballot_id, b.poll_id, b.option_id, b.voter_id, b.created_at
FROM ballots b
`

func (r *PgxBallotRepository) getBallots(ctx context.Context, filterQuery string, args ...any) ([]domain.Ballot, error) {
	query := FULL_BALLOT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ballots", err)
	}
	defer rows.Close()

	ballots := []domain.Ballot{}
	for rows.Next() {
		var b domain.Ballot
		if err := rows.Scan(&b.BallotID, &b.PollID, &b.OptionID, &b.VoterID, &b.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ballot row", err)
		}
		ballots = append(ballots, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read ballot rows", err)
	}
	return ballots, nil
}

// SaveBallot inserts the ballot. The UNIQUE (poll_id, voter_id) constraint
// makes double voting a conflict even under concurrent requests.
func (r *PgxBallotRepository) SaveBallot(ctx context.Context, ballot domain.Ballot) error {
	query := `
		INSERT INTO ballots (ballot_id, poll_id, option_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		ballot.BallotID,
		ballot.PollID,
		ballot.OptionID,
		ballot.VoterID,
		ballot.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("employee " + ballot.VoterID + " already voted on poll " + ballot.PollID)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("ballot references an unknown option or voter")
			}
		}
		return apperrors.NewAppError(500, "failed to save ballot "+ballot.BallotID, err)
	}
	return nil
}

func (r *PgxBallotRepository) FindBallotsByPollID(ctx context.Context, pollID string) ([]domain.Ballot, error) {
	query := `WHERE b.poll_id = $1 ORDER BY b.created_at, b.ballot_id`
	return r.getBallots(ctx, query, pollID)
}

func (r *PgxBallotRepository) FindBallotByVoter(ctx context.Context, pollID string, voterID string) (*domain.Ballot, error) {
	query := `WHERE b.poll_id = $1 AND b.voter_id = $2`
	ballots, err := r.getBallots(ctx, query, pollID, voterID)
	if err != nil {
		return nil, err
	}
	if len(ballots) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &ballots[0], nil
}
