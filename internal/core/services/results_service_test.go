package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/core/services"
)

type ResultsServiceTestSuite struct {
	suite.Suite
	mockPollRepo     *MockPollRepository
	mockBallotRepo   *MockBallotRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockGiftRepo     *MockGiftRepository
	service          portssvc.ResultsSvcFacade
	ctx              context.Context

	alice *domain.Employee
	bob   *domain.Employee
	carol *domain.Employee
	dave  *domain.Employee
}

func (suite *ResultsServiceTestSuite) SetupTest() {
	suite.mockPollRepo = new(MockPollRepository)
	suite.mockBallotRepo = new(MockBallotRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockGiftRepo = new(MockGiftRepository)
	suite.service = services.NewResultsService(suite.mockPollRepo, suite.mockBallotRepo, suite.mockEmployeeRepo, suite.mockGiftRepo)
	suite.ctx = context.Background()

	suite.alice = sampleEmployee("emp-alice", "alice")
	suite.bob = sampleEmployee("emp-bob", "bob")
	suite.carol = sampleEmployee("emp-carol", "carol")
	suite.dave = sampleEmployee("emp-dave", "dave")
}

func TestResultsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResultsServiceTestSuite))
}

// mugAndCardPoll is a poll for Alice's birthday started by Bob, with a Mug
// option created before a Card option.
func (suite *ResultsServiceTestSuite) mugAndCardPoll() *domain.Poll {
	poll := openPoll("poll-1", "emp-alice", "emp-bob", "opt-mug", "opt-card")
	poll.Options[0].GiftID = "gift-mug"
	poll.Options[1].GiftID = "gift-card"
	return poll
}

func (suite *ResultsServiceTestSuite) expectGifts() {
	suite.mockGiftRepo.On("FindGiftsByIDs", suite.ctx, []string{"gift-mug", "gift-card"}).
		Return([]domain.Gift{sampleGift("gift-mug", "Mug"), sampleGift("gift-card", "Card")}, nil).Once()
}

func (suite *ResultsServiceTestSuite) allEmployees() []domain.Employee {
	return []domain.Employee{*suite.alice, *suite.bob, *suite.carol, *suite.dave}
}

// Bob votes Mug, Carol votes Card. One vote each, so the earlier option
// wins; Dave never voted and Alice is the birthday person.
func (suite *ResultsServiceTestSuite) TestTally_TieGoesToEarlierOption() {
	poll := suite.mugAndCardPoll()
	poll.IsClosed = true
	ballots := []domain.Ballot{
		{BallotID: "ballot-1", PollID: "poll-1", OptionID: "opt-mug", VoterID: "emp-bob", CreatedAt: time.Now().UTC().Add(-2 * time.Hour)},
		{BallotID: "ballot-2", PollID: "poll-1", OptionID: "opt-card", VoterID: "emp-carol", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return(ballots, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{"emp-bob", "emp-carol"}).
		Return([]domain.Employee{*suite.bob, *suite.carol}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()

	tally, err := suite.service.Tally(suite.ctx, "poll-1", "emp-dave")

	suite.Require().NoError(err)
	suite.Require().Len(tally.Counts, 2)
	assert.Equal(suite.T(), "opt-mug", tally.Counts[0].OptionID)
	assert.Equal(suite.T(), 1, tally.Counts[0].Count)
	assert.Equal(suite.T(), "opt-card", tally.Counts[1].OptionID)
	assert.Equal(suite.T(), 1, tally.Counts[1].Count)
	suite.Require().NotNil(tally.Winner)
	assert.Equal(suite.T(), "Mug", tally.Winner.Name)
	suite.Require().Len(tally.NonVoters, 1)
	assert.Equal(suite.T(), "emp-dave", tally.NonVoters[0].EmployeeID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *ResultsServiceTestSuite) TestTally_MajorityWins() {
	poll := suite.mugAndCardPoll()
	ballots := []domain.Ballot{
		{BallotID: "ballot-1", PollID: "poll-1", OptionID: "opt-card", VoterID: "emp-bob"},
		{BallotID: "ballot-2", PollID: "poll-1", OptionID: "opt-card", VoterID: "emp-carol"},
		{BallotID: "ballot-3", PollID: "poll-1", OptionID: "opt-mug", VoterID: "emp-dave"},
	}

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return(ballots, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{"emp-bob", "emp-carol", "emp-dave"}).
		Return([]domain.Employee{*suite.bob, *suite.carol, *suite.dave}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()

	tally, err := suite.service.Tally(suite.ctx, "poll-1", "emp-bob")

	suite.Require().NoError(err)
	suite.Require().NotNil(tally.Winner)
	assert.Equal(suite.T(), "Card", tally.Winner.Name)
	assert.Equal(suite.T(), 2, tally.Counts[1].Count)
	assert.Empty(suite.T(), tally.NonVoters)
}

func (suite *ResultsServiceTestSuite) TestTally_ZeroBallotsFirstOptionWins() {
	// All options tied at zero is still a tie, so the earliest option wins.
	poll := suite.mugAndCardPoll()
	poll.IsClosed = true

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return([]domain.Ballot{}, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{}).Return([]domain.Employee{}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()

	tally, err := suite.service.Tally(suite.ctx, "poll-1", "emp-bob")

	suite.Require().NoError(err)
	suite.Require().NotNil(tally.Winner)
	assert.Equal(suite.T(), "Mug", tally.Winner.Name)
	suite.Require().Len(tally.Counts, 2)
	assert.Equal(suite.T(), 0, tally.Counts[0].Count)
	// Everyone but Alice still owes a vote.
	assert.Len(suite.T(), tally.NonVoters, 3)
}

func (suite *ResultsServiceTestSuite) TestTally_HiddenFromBirthdayEmployee() {
	poll := suite.mugAndCardPoll()
	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()

	tally, err := suite.service.Tally(suite.ctx, "poll-1", "emp-alice")

	suite.Require().Error(err)
	assert.Nil(suite.T(), tally)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrForbidden))
	suite.mockBallotRepo.AssertNotCalled(suite.T(), "FindBallotsByPollID")
}

func (suite *ResultsServiceTestSuite) TestTally_VotersListedPerOption() {
	poll := suite.mugAndCardPoll()
	ballots := []domain.Ballot{
		{BallotID: "ballot-1", PollID: "poll-1", OptionID: "opt-mug", VoterID: "emp-bob"},
		{BallotID: "ballot-2", PollID: "poll-1", OptionID: "opt-mug", VoterID: "emp-carol"},
	}

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return(ballots, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{"emp-bob", "emp-carol"}).
		Return([]domain.Employee{*suite.bob, *suite.carol}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()

	tally, err := suite.service.Tally(suite.ctx, "poll-1", "emp-dave")

	suite.Require().NoError(err)
	suite.Require().Len(tally.Counts[0].Voters, 2)
	assert.Equal(suite.T(), "bob", tally.Counts[0].Voters[0].Username)
	assert.Equal(suite.T(), "carol", tally.Counts[0].Voters[1].Username)
	assert.Empty(suite.T(), tally.Counts[1].Voters)
}

// --- GetPollDetails ---

func (suite *ResultsServiceTestSuite) TestGetPollDetails_OpenPollWithholdsWinnerAndNonVoters() {
	poll := suite.mugAndCardPoll()
	ballots := []domain.Ballot{
		{BallotID: "ballot-1", PollID: "poll-1", OptionID: "opt-mug", VoterID: "emp-carol"},
	}

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return(ballots, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{"emp-carol"}).
		Return([]domain.Employee{*suite.carol}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-alice").Return(suite.alice, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-bob").Return(suite.bob, nil).Once()
	suite.mockBallotRepo.On("FindBallotByVoter", suite.ctx, "poll-1", "emp-dave").Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.GetPollDetails(suite.ctx, "poll-1", "emp-dave")

	suite.Require().NoError(err)
	assert.Nil(suite.T(), details.Results.Winner)
	assert.Empty(suite.T(), details.Results.NonVoters)
	// Running counts stay visible while the poll is open.
	assert.Equal(suite.T(), 1, details.Results.Counts[0].Count)
	assert.Nil(suite.T(), details.VotedOptionID)
	assert.True(suite.T(), details.CanVote)
	assert.False(suite.T(), details.CanClose)
	assert.Equal(suite.T(), "alice", details.BirthdayEmployee.Username)
	assert.Equal(suite.T(), "bob", details.StartedBy.Username)
}

func (suite *ResultsServiceTestSuite) TestGetPollDetails_ClosedPollForStarter() {
	poll := suite.mugAndCardPoll()
	poll.IsClosed = true
	ballots := []domain.Ballot{
		{BallotID: "ballot-1", PollID: "poll-1", OptionID: "opt-mug", VoterID: "emp-bob"},
	}

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return(ballots, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{"emp-bob"}).
		Return([]domain.Employee{*suite.bob}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-alice").Return(suite.alice, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-bob").Return(suite.bob, nil).Once()
	suite.mockBallotRepo.On("FindBallotByVoter", suite.ctx, "poll-1", "emp-bob").
		Return(&ballots[0], nil).Once()

	details, err := suite.service.GetPollDetails(suite.ctx, "poll-1", "emp-bob")

	suite.Require().NoError(err)
	suite.Require().NotNil(details.Results.Winner)
	assert.Equal(suite.T(), "Mug", details.Results.Winner.Name)
	assert.Len(suite.T(), details.Results.NonVoters, 2)
	suite.Require().NotNil(details.VotedOptionID)
	assert.Equal(suite.T(), "opt-mug", *details.VotedOptionID)
	assert.False(suite.T(), details.CanVote)
	// Closing is terminal even for the starter.
	assert.False(suite.T(), details.CanClose)
}

func (suite *ResultsServiceTestSuite) TestGetPollDetails_StarterCanCloseOpenPoll() {
	poll := suite.mugAndCardPoll()

	suite.mockPollRepo.On("FindPollByID", suite.ctx, "poll-1").Return(poll, nil).Once()
	suite.mockBallotRepo.On("FindBallotsByPollID", suite.ctx, "poll-1").Return([]domain.Ballot{}, nil).Once()
	suite.expectGifts()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", suite.ctx, []string{}).Return([]domain.Employee{}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(suite.allEmployees(), nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-alice").Return(suite.alice, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-bob").Return(suite.bob, nil).Once()
	suite.mockBallotRepo.On("FindBallotByVoter", suite.ctx, "poll-1", "emp-bob").Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.GetPollDetails(suite.ctx, "poll-1", "emp-bob")

	suite.Require().NoError(err)
	assert.True(suite.T(), details.CanClose)
	assert.True(suite.T(), details.CanVote)
}
