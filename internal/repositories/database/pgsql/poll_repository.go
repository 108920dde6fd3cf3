package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPollRepository struct {
	BaseRepository
}

// newPgxPollRepository creates a new repository for poll data.
func newPgxPollRepository(pool *pgxpool.Pool) portsrepo.PollRepositoryWithTx {
	return &PgxPollRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPollRepository implements portsrepo.PollRepositoryWithTx
var _ portsrepo.PollRepositoryWithTx = (*PgxPollRepository)(nil)

var FULL_POLL_SELECT_QUERY = `
SELECT
	p.poll_id, p.birthday_employee_id, p.started_by_id, p.start_date, p.end_date,
	p.is_closed, p.created_at, p.updated_at
FROM polls p
`

// getPolls runs the select query with the given filter and scans poll rows.
// Options are loaded separately because each poll carries a variable number.
func (r *PgxPollRepository) getPolls(ctx context.Context, filterQuery string, args ...any) ([]domain.Poll, error) {
	query := FULL_POLL_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query polls", err)
	}
	defer rows.Close()

	polls := []domain.Poll{}
	for rows.Next() {
		var p domain.Poll
		if err := rows.Scan(
			&p.PollID,
			&p.BirthdayEmployeeID,
			&p.StartedByID,
			&p.StartDate,
			&p.EndDate,
			&p.IsClosed,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan poll row", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read poll rows", err)
	}

	if err := r.attachOptions(ctx, polls); err != nil {
		return nil, err
	}
	return polls, nil
}

// attachOptions loads the options for every poll in the slice in one query.
// Creation order is the tie-break order for winners, so the ordering here
// matters.
func (r *PgxPollRepository) attachOptions(ctx context.Context, polls []domain.Poll) error {
	if len(polls) == 0 {
		return nil
	}
	pollIDs := make([]string, len(polls))
	byID := make(map[string]*domain.Poll, len(polls))
	for i := range polls {
		pollIDs[i] = polls[i].PollID
		byID[polls[i].PollID] = &polls[i]
	}

	query := `
		SELECT o.option_id, o.poll_id, o.gift_id, o.position, o.created_at
		FROM poll_options o
		WHERE o.poll_id = ANY($1)
		ORDER BY o.position, o.option_id;
	`
	rows, err := r.Pool.Query(ctx, query, pollIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query poll options", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.PollOption
		if err := rows.Scan(&o.OptionID, &o.PollID, &o.GiftID, &o.Position, &o.CreatedAt); err != nil {
			return apperrors.NewAppError(500, "failed to scan poll option row", err)
		}
		if p, ok := byID[o.PollID]; ok {
			p.Options = append(p.Options, o)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "failed to read poll option rows", err)
	}
	return nil
}

// SavePollWithOptions inserts the poll row and all its option rows within a
// DB transaction. A unique violation on the open-poll index means another
// open poll already exists for the same birthday employee and year.
func (r *PgxPollRepository) SavePollWithOptions(ctx context.Context, poll domain.Poll, options []domain.PollOption) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	pollQuery := `
		INSERT INTO polls (
			poll_id, birthday_employee_id, started_by_id, start_date, end_date,
			is_closed, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, pollQuery,
		poll.PollID,
		poll.BirthdayEmployeeID,
		poll.StartedByID,
		poll.StartDate,
		poll.EndDate,
		poll.IsClosed,
		poll.CreatedAt,
		poll.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("an open poll already exists for employee " + poll.BirthdayEmployeeID + " this year")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("poll references an unknown employee")
			}
		}
		return apperrors.NewAppError(500, "failed to insert poll "+poll.PollID, err)
	}

	batch := &pgx.Batch{}
	optionQuery := `
		INSERT INTO poll_options (option_id, poll_id, gift_id, position, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, o := range options {
		batch.Queue(optionQuery, o.OptionID, o.PollID, o.GiftID, o.Position, o.CreatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	for range options {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert poll options for "+poll.PollID, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close option batch for "+poll.PollID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPollRepository) FindPollByID(ctx context.Context, pollID string) (*domain.Poll, error) {
	query := `WHERE p.poll_id = $1`
	polls, err := r.getPolls(ctx, query, pollID)
	if err != nil {
		return nil, err
	}
	if len(polls) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &polls[0], nil
}

func (r *PgxPollRepository) FindActivePolls(ctx context.Context) ([]domain.Poll, error) {
	query := `WHERE NOT p.is_closed ORDER BY p.start_date DESC, p.poll_id`
	return r.getPolls(ctx, query)
}

func (r *PgxPollRepository) FindCompletedPolls(ctx context.Context) ([]domain.Poll, error) {
	query := `WHERE p.is_closed ORDER BY p.end_date DESC, p.poll_id`
	return r.getPolls(ctx, query)
}

func (r *PgxPollRepository) ClosePoll(ctx context.Context, pollID string, endDate time.Time, updatedAt time.Time) error {
	query := `
		UPDATE polls
		SET is_closed = TRUE, end_date = $2, updated_at = $3
		WHERE poll_id = $1 AND NOT is_closed;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, pollID, endDate, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close poll "+pollID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the poll does not exist or it was closed concurrently.
		return apperrors.NewConflictError("poll " + pollID + " is already closed")
	}
	return nil
}

func (r *PgxPollRepository) UpdatePollEndDate(ctx context.Context, pollID string, endDate time.Time, updatedAt time.Time) error {
	query := `
		UPDATE polls
		SET end_date = $2, updated_at = $3
		WHERE poll_id = $1 AND NOT is_closed;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, pollID, endDate, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update end date for poll "+pollID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("poll " + pollID + " is already closed")
	}
	return nil
}
