package services

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
	"github.com/giftvote/giftvote_app/internal/dto"
)

// PollReaderSvc defines read operations for polls
type PollReaderSvc interface {
	// GetPollByID retrieves a poll for a given viewer. Returns a forbidden
	// error when the viewer is the birthday person.
	GetPollByID(ctx context.Context, pollID string, viewerID string) (*domain.Poll, error)

	// ListActivePolls retrieves open polls, hiding any poll about the viewer.
	ListActivePolls(ctx context.Context, viewerID string) ([]domain.Poll, error)

	// ListCompletedPolls retrieves closed polls, hiding any poll about the viewer.
	ListCompletedPolls(ctx context.Context, viewerID string) ([]domain.Poll, error)

	// CanCastBallot reports whether the employee may currently vote on the poll.
	CanCastBallot(ctx context.Context, pollID string, employeeID string) (bool, error)

	// CanViewPoll reports whether the employee may see the poll at all.
	CanViewPoll(ctx context.Context, pollID string, employeeID string) (bool, error)
}

// PollWriterSvc defines write operations for polls
type PollWriterSvc interface {
	// CreatePoll starts a new poll for an employee's birthday.
	CreatePoll(ctx context.Context, creatorID string, req dto.CreatePollRequest) (*domain.Poll, error)

	// CastBallot records a vote on a poll option by the given employee.
	CastBallot(ctx context.Context, pollID string, voterID string, req dto.CastBallotRequest) (*domain.Ballot, error)

	// ClosePoll closes an open poll. Only the employee who started the poll
	// may close it.
	ClosePoll(ctx context.Context, pollID string, requestingEmployeeID string) (*domain.Poll, error)

	// UpdatePollEndDate changes the planned end date of an open poll.
	UpdatePollEndDate(ctx context.Context, pollID string, requestingEmployeeID string, req dto.UpdatePollEndDateRequest) (*domain.Poll, error)
}

// PollSvcFacade combines all poll-related service interfaces
type PollSvcFacade interface {
	PollReaderSvc
	PollWriterSvc
}
