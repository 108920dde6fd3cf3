package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/middleware"
)

// resultsService aggregates ballots into counts, winners and non-voter
// lists. It never mutates anything; repeated calls over the same data give
// the same answer.
type resultsService struct {
	pollRepo     portsrepo.PollRepositoryFacade
	ballotRepo   portsrepo.BallotRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	giftRepo     portsrepo.GiftRepositoryFacade
}

// NewResultsService creates a new ResultsService.
func NewResultsService(pollRepo portsrepo.PollRepositoryFacade, ballotRepo portsrepo.BallotRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, giftRepo portsrepo.GiftRepositoryFacade) portssvc.ResultsSvcFacade {
	return &resultsService{
		pollRepo:     pollRepo,
		ballotRepo:   ballotRepo,
		employeeRepo: employeeRepo,
		giftRepo:     giftRepo,
	}
}

// Ensure resultsService implements the portssvc.ResultsSvcFacade interface
var _ portssvc.ResultsSvcFacade = (*resultsService)(nil)

// Tally aggregates the ballots of a poll. Counts follow option creation
// order. The winner is the highest-counted option, with ties going to the
// earliest-created option; a zero-ballot poll therefore still names its
// first option the winner. Non-voters are every employee except the
// birthday person and the employees who voted.
func (s *resultsService) Tally(ctx context.Context, pollID string, viewerID string) (*domain.TallyResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	poll, err := s.pollRepo.FindPollByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.BirthdayEmployeeID == viewerID {
		return nil, apperrors.NewForbiddenError("this poll is not visible to you")
	}

	ballots, err := s.ballotRepo.FindBallotsByPollID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	giftIDs := make([]string, len(poll.Options))
	for i, o := range poll.Options {
		giftIDs[i] = o.GiftID
	}
	gifts, err := s.giftRepo.FindGiftsByIDs(ctx, giftIDs)
	if err != nil {
		return nil, err
	}
	giftsByID := make(map[string]domain.Gift, len(gifts))
	for _, g := range gifts {
		giftsByID[g.GiftID] = g
	}

	votersByOption := make(map[string][]string, len(poll.Options))
	voterIDs := make([]string, 0, len(ballots))
	for _, b := range ballots {
		votersByOption[b.OptionID] = append(votersByOption[b.OptionID], b.VoterID)
		voterIDs = append(voterIDs, b.VoterID)
	}
	voters, err := s.employeeRepo.FindEmployeesByIDs(ctx, voterIDs)
	if err != nil {
		return nil, err
	}
	votersByID := make(map[string]domain.Employee, len(voters))
	for _, v := range voters {
		votersByID[v.EmployeeID] = v
	}

	counts := make([]domain.OptionCount, len(poll.Options))
	for i, o := range poll.Options {
		optionVoters := make([]domain.Employee, 0, len(votersByOption[o.OptionID]))
		for _, voterID := range votersByOption[o.OptionID] {
			if v, ok := votersByID[voterID]; ok {
				optionVoters = append(optionVoters, v)
			}
		}
		counts[i] = domain.OptionCount{
			OptionID: o.OptionID,
			Gift:     giftsByID[o.GiftID],
			Count:    len(optionVoters),
			Voters:   optionVoters,
		}
	}

	// Seed with the first option and require a strictly greater count to
	// displace it, so every tie, including all options at zero, resolves to
	// the earliest-created option.
	var winner *domain.Gift
	if len(poll.Options) > 0 {
		gift := giftsByID[poll.Options[0].GiftID]
		winner = &gift
		winnerCount := counts[0].Count
		for i := 1; i < len(counts); i++ {
			if counts[i].Count > winnerCount {
				winnerCount = counts[i].Count
				gift := giftsByID[poll.Options[i].GiftID]
				winner = &gift
			}
		}
	}

	nonVoters, err := s.nonVoters(ctx, poll.BirthdayEmployeeID, votersByID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Poll tallied", slog.String("poll_id", pollID), slog.Int("ballot_count", len(ballots)))
	return &domain.TallyResult{
		Poll:      *poll,
		Counts:    counts,
		Winner:    winner,
		NonVoters: nonVoters,
	}, nil
}

// nonVoters computes all employees minus the birthday person minus everyone
// who voted.
func (s *resultsService) nonVoters(ctx context.Context, birthdayEmployeeID string, votersByID map[string]domain.Employee) ([]domain.Employee, error) {
	all, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}
	nonVoters := make([]domain.Employee, 0, len(all))
	for _, e := range all {
		if e.EmployeeID == birthdayEmployeeID {
			continue
		}
		if _, voted := votersByID[e.EmployeeID]; voted {
			continue
		}
		nonVoters = append(nonVoters, e)
	}
	return nonVoters, nil
}

// GetPollDetails builds the per-viewer detail projection. Counts and voter
// names are always included; the winner and non-voter list are withheld
// until the poll is closed.
func (s *resultsService) GetPollDetails(ctx context.Context, pollID string, viewerID string) (*domain.PollDetails, error) {
	tally, err := s.Tally(ctx, pollID, viewerID)
	if err != nil {
		return nil, err
	}
	poll := tally.Poll

	birthdayEmployee, err := s.employeeRepo.FindEmployeeByID(ctx, poll.BirthdayEmployeeID)
	if err != nil {
		return nil, err
	}
	startedBy, err := s.employeeRepo.FindEmployeeByID(ctx, poll.StartedByID)
	if err != nil {
		return nil, err
	}

	var votedOptionID *string
	ballot, err := s.ballotRepo.FindBallotByVoter(ctx, pollID, viewerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if ballot != nil {
		votedOptionID = &ballot.OptionID
	}

	if !poll.IsClosed {
		tally.Winner = nil
		tally.NonVoters = []domain.Employee{}
	}

	return &domain.PollDetails{
		Poll:             poll,
		BirthdayEmployee: *birthdayEmployee,
		StartedBy:        *startedBy,
		VotedOptionID:    votedOptionID,
		CanVote:          !poll.IsClosed && votedOptionID == nil,
		CanClose:         !poll.IsClosed && poll.StartedByID == viewerID,
		Results:          tally,
	}, nil
}
