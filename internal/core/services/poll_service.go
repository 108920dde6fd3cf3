package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"
)

// pollService provides the poll lifecycle and voting consistency rules.
type pollService struct {
	pollRepo     portsrepo.PollRepositoryWithTx
	ballotRepo   portsrepo.BallotRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	giftRepo     portsrepo.GiftRepositoryFacade
}

// NewPollService creates a new PollService.
func NewPollService(pollRepo portsrepo.PollRepositoryWithTx, ballotRepo portsrepo.BallotRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, giftRepo portsrepo.GiftRepositoryFacade) portssvc.PollSvcFacade {
	return &pollService{
		pollRepo:     pollRepo,
		ballotRepo:   ballotRepo,
		employeeRepo: employeeRepo,
		giftRepo:     giftRepo,
	}
}

// Ensure pollService implements the portssvc.PollSvcFacade interface
var _ portssvc.PollSvcFacade = (*pollService)(nil)

// CreatePoll starts a new poll for an employee's birthday. Gift IDs that do
// not resolve against the catalog are skipped; at least two distinct gifts
// must remain. One open poll per birthday employee per calendar year.
func (s *pollService) CreatePoll(ctx context.Context, creatorID string, req dto.CreatePollRequest) (*domain.Poll, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BirthdayEmployeeID == creatorID {
		return nil, fmt.Errorf("%w: cannot start a poll for your own birthday", apperrors.ErrValidation)
	}

	// Both employee ids must resolve, whatever the auth adapter vouched for.
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.BirthdayEmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Birthday employee not found for poll creation", slog.String("birthday_employee_id", req.BirthdayEmployeeID))
		}
		return nil, err
	}
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, creatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Creator not found for poll creation", slog.String("creator_id", creatorID))
		}
		return nil, err
	}

	// Resolve gifts, silently dropping unknown IDs and duplicates.
	uniqueIDs := uniqueStrings(req.GiftIDs)
	gifts, err := s.giftRepo.FindGiftsByIDs(ctx, uniqueIDs)
	if err != nil {
		logger.Error("Failed to resolve gifts for poll creation", slog.String("error", err.Error()))
		return nil, err
	}
	found := make(map[string]bool, len(gifts))
	for _, g := range gifts {
		found[g.GiftID] = true
	}
	resolvedIDs := make([]string, 0, len(uniqueIDs))
	for _, id := range uniqueIDs {
		if found[id] {
			resolvedIDs = append(resolvedIDs, id)
		}
	}
	if len(resolvedIDs) < 2 {
		return nil, fmt.Errorf("%w: a poll needs at least two known gifts", apperrors.ErrValidation)
	}

	now := time.Now().UTC()

	// Pre-check the one-open-poll-per-year rule for a friendly error. The
	// partial unique index catches the concurrent case at insert time.
	active, err := s.pollRepo.FindActivePolls(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range active {
		if p.BirthdayEmployeeID == req.BirthdayEmployeeID && p.StartDate.Year() == now.Year() {
			return nil, apperrors.NewConflictError("an open poll already exists for this employee this year")
		}
	}

	pollID := uuid.NewString()
	poll := domain.Poll{
		PollID:             pollID,
		BirthdayEmployeeID: req.BirthdayEmployeeID,
		StartedByID:        creatorID,
		StartDate:          now,
		EndDate:            req.EndDate,
		IsClosed:           false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	options := make([]domain.PollOption, len(resolvedIDs))
	for i, giftID := range resolvedIDs {
		options[i] = domain.PollOption{
			OptionID:  uuid.NewString(),
			PollID:    pollID,
			GiftID:    giftID,
			Position:  i,
			CreatedAt: now,
		}
	}

	if err := s.pollRepo.SavePollWithOptions(ctx, poll, options); err != nil {
		logger.Error("Failed to save poll", slog.String("error", err.Error()), slog.String("birthday_employee_id", req.BirthdayEmployeeID))
		return nil, err
	}

	poll.Options = options
	logger.Info("Poll created", slog.String("poll_id", pollID), slog.String("birthday_employee_id", req.BirthdayEmployeeID), slog.Int("option_count", len(options)))
	return &poll, nil
}

// CastBallot records a vote. The rules mirror CanCastBallot exactly: the
// poll must be open, the voter must not be the birthday person, and each
// employee votes at most once per poll.
func (s *pollService) CastBallot(ctx context.Context, pollID string, voterID string, req dto.CastBallotRequest) (*domain.Ballot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.IsClosed {
		return nil, apperrors.NewConflictError("poll " + pollID + " is closed")
	}
	if poll.BirthdayEmployeeID == voterID {
		return nil, apperrors.NewConflictError("the birthday employee cannot vote on their own poll")
	}

	optionBelongs := false
	for _, o := range poll.Options {
		if o.OptionID == req.OptionID {
			optionBelongs = true
			break
		}
	}
	if !optionBelongs {
		return nil, fmt.Errorf("%w: option %s does not belong to poll %s", apperrors.ErrValidation, req.OptionID, pollID)
	}

	ballot := domain.Ballot{
		BallotID:  uuid.NewString(),
		PollID:    pollID,
		OptionID:  req.OptionID,
		VoterID:   voterID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ballotRepo.SaveBallot(ctx, ballot); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Duplicate ballot rejected", slog.String("poll_id", pollID), slog.String("voter_id", voterID))
		} else {
			logger.Error("Failed to save ballot", slog.String("error", err.Error()), slog.String("poll_id", pollID))
		}
		return nil, err
	}

	logger.Info("Ballot cast", slog.String("poll_id", pollID), slog.String("option_id", req.OptionID))
	return &ballot, nil
}

// ClosePoll closes an open poll. Closing is terminal and only the employee
// who started the poll may do it.
func (s *pollService) ClosePoll(ctx context.Context, pollID string, requestingEmployeeID string) (*domain.Poll, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.IsClosed {
		return nil, apperrors.NewConflictError("poll " + pollID + " is already closed")
	}
	if poll.StartedByID != requestingEmployeeID {
		return nil, apperrors.NewForbiddenError("only the employee who started the poll can close it")
	}

	now := time.Now().UTC()
	if err := s.pollRepo.ClosePoll(ctx, pollID, now, now); err != nil {
		logger.Error("Failed to close poll", slog.String("error", err.Error()), slog.String("poll_id", pollID))
		return nil, err
	}

	poll.IsClosed = true
	poll.EndDate = &now
	poll.UpdatedAt = now
	logger.Info("Poll closed", slog.String("poll_id", pollID))
	return poll, nil
}

// UpdatePollEndDate reschedules the planned end date of an open poll.
func (s *pollService) UpdatePollEndDate(ctx context.Context, pollID string, requestingEmployeeID string, req dto.UpdatePollEndDateRequest) (*domain.Poll, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.IsClosed {
		return nil, apperrors.NewConflictError("poll " + pollID + " is closed")
	}
	if poll.StartedByID != requestingEmployeeID {
		return nil, apperrors.NewForbiddenError("only the employee who started the poll can reschedule it")
	}
	if req.EndDate.Before(poll.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot be before the poll start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.pollRepo.UpdatePollEndDate(ctx, pollID, req.EndDate, now); err != nil {
		logger.Error("Failed to update poll end date", slog.String("error", err.Error()), slog.String("poll_id", pollID))
		return nil, err
	}

	endDate := req.EndDate
	poll.EndDate = &endDate
	poll.UpdatedAt = now
	return poll, nil
}

// CanCastBallot reports whether the employee may currently vote on the
// poll. The checks match CastBallot.
func (s *pollService) CanCastBallot(ctx context.Context, pollID string, employeeID string) (bool, error) {
	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return false, err
	}
	if poll.IsClosed || poll.BirthdayEmployeeID == employeeID {
		return false, nil
	}

	_, err = s.ballotRepo.FindBallotByVoter(ctx, pollID, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// CanViewPoll reports whether the employee may see the poll. Only the
// birthday person is excluded; the poll stays a surprise for them even
// after it closes.
func (s *pollService) CanViewPoll(ctx context.Context, pollID string, employeeID string) (bool, error) {
	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return false, err
	}
	return poll.BirthdayEmployeeID != employeeID, nil
}

func (s *pollService) GetPollByID(ctx context.Context, pollID string, viewerID string) (*domain.Poll, error) {
	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.BirthdayEmployeeID == viewerID {
		return nil, apperrors.NewForbiddenError("this poll is not visible to you")
	}
	return poll, nil
}

func (s *pollService) ListActivePolls(ctx context.Context, viewerID string) ([]domain.Poll, error) {
	polls, err := s.pollRepo.FindActivePolls(ctx)
	if err != nil {
		return nil, err
	}
	return hidePollsAbout(polls, viewerID), nil
}

func (s *pollService) ListCompletedPolls(ctx context.Context, viewerID string) ([]domain.Poll, error) {
	polls, err := s.pollRepo.FindCompletedPolls(ctx)
	if err != nil {
		return nil, err
	}
	return hidePollsAbout(polls, viewerID), nil
}

// hidePollsAbout filters out polls whose birthday employee is the viewer.
func hidePollsAbout(polls []domain.Poll, viewerID string) []domain.Poll {
	visible := make([]domain.Poll, 0, len(polls))
	for _, p := range polls {
		if p.BirthdayEmployeeID != viewerID {
			visible = append(visible, p)
		}
	}
	return visible
}

// uniqueStrings returns the input slice with duplicates removed, keeping
// first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
