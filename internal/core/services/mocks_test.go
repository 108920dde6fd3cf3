package services_test

import (
	"context"
	"time"

	"github.com/giftvote/giftvote_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock PollRepository (based on PollService usage) ---
type MockPollRepository struct {
	mock.Mock
	FindPollByIDFn        func(ctx context.Context, pollID string) (*domain.Poll, error)
	FindActivePollsFn     func(ctx context.Context) ([]domain.Poll, error)
	FindCompletedPollsFn  func(ctx context.Context) ([]domain.Poll, error)
	SavePollWithOptionsFn func(ctx context.Context, poll domain.Poll, options []domain.PollOption) error
}

func (m *MockPollRepository) FindPollByID(ctx context.Context, pollID string) (*domain.Poll, error) {
	if m.FindPollByIDFn != nil {
		return m.FindPollByIDFn(ctx, pollID)
	}
	args := m.Called(ctx, pollID)
	var poll *domain.Poll
	if args.Get(0) != nil {
		poll = args.Get(0).(*domain.Poll)
	}
	return poll, args.Error(1)
}

func (m *MockPollRepository) FindActivePolls(ctx context.Context) ([]domain.Poll, error) {
	if m.FindActivePollsFn != nil {
		return m.FindActivePollsFn(ctx)
	}
	args := m.Called(ctx)
	var polls []domain.Poll
	if args.Get(0) != nil {
		polls = args.Get(0).([]domain.Poll)
	}
	return polls, args.Error(1)
}

func (m *MockPollRepository) FindCompletedPolls(ctx context.Context) ([]domain.Poll, error) {
	if m.FindCompletedPollsFn != nil {
		return m.FindCompletedPollsFn(ctx)
	}
	args := m.Called(ctx)
	var polls []domain.Poll
	if args.Get(0) != nil {
		polls = args.Get(0).([]domain.Poll)
	}
	return polls, args.Error(1)
}

func (m *MockPollRepository) SavePollWithOptions(ctx context.Context, poll domain.Poll, options []domain.PollOption) error {
	if m.SavePollWithOptionsFn != nil {
		return m.SavePollWithOptionsFn(ctx, poll, options)
	}
	args := m.Called(ctx, poll, options)
	return args.Error(0)
}

func (m *MockPollRepository) ClosePoll(ctx context.Context, pollID string, endDate time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, pollID, endDate, updatedAt)
	return args.Error(0)
}

func (m *MockPollRepository) UpdatePollEndDate(ctx context.Context, pollID string, endDate time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, pollID, endDate, updatedAt)
	return args.Error(0)
}

func (m *MockPollRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, nil
}

func (m *MockPollRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

func (m *MockPollRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Mock BallotRepository ---
type MockBallotRepository struct {
	mock.Mock
	SaveBallotFn          func(ctx context.Context, ballot domain.Ballot) error
	FindBallotsByPollIDFn func(ctx context.Context, pollID string) ([]domain.Ballot, error)
	FindBallotByVoterFn   func(ctx context.Context, pollID string, voterID string) (*domain.Ballot, error)
}

func (m *MockBallotRepository) SaveBallot(ctx context.Context, ballot domain.Ballot) error {
	if m.SaveBallotFn != nil {
		return m.SaveBallotFn(ctx, ballot)
	}
	args := m.Called(ctx, ballot)
	return args.Error(0)
}

func (m *MockBallotRepository) FindBallotsByPollID(ctx context.Context, pollID string) ([]domain.Ballot, error) {
	if m.FindBallotsByPollIDFn != nil {
		return m.FindBallotsByPollIDFn(ctx, pollID)
	}
	args := m.Called(ctx, pollID)
	var ballots []domain.Ballot
	if args.Get(0) != nil {
		ballots = args.Get(0).([]domain.Ballot)
	}
	return ballots, args.Error(1)
}

func (m *MockBallotRepository) FindBallotByVoter(ctx context.Context, pollID string, voterID string) (*domain.Ballot, error) {
	if m.FindBallotByVoterFn != nil {
		return m.FindBallotByVoterFn(ctx, pollID, voterID)
	}
	args := m.Called(ctx, pollID, voterID)
	var ballot *domain.Ballot
	if args.Get(0) != nil {
		ballot = args.Get(0).(*domain.Ballot)
	}
	return ballot, args.Error(1)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
	FindEmployeeByIDFn       func(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByUsernameFn func(ctx context.Context, username string) (*domain.Employee, error)
	FindEmployeesFn          func(ctx context.Context) ([]domain.Employee, error)
	FindEmployeesByIDsFn     func(ctx context.Context, employeeIDs []string) ([]domain.Employee, error)
	SaveEmployeeFn           func(ctx context.Context, employee domain.Employee) error
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if m.FindEmployeeByIDFn != nil {
		return m.FindEmployeeByIDFn(ctx, employeeID)
	}
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	if m.FindEmployeeByUsernameFn != nil {
		return m.FindEmployeeByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	if m.FindEmployeesFn != nil {
		return m.FindEmployeesFn(ctx)
	}
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) ([]domain.Employee, error) {
	if m.FindEmployeesByIDsFn != nil {
		return m.FindEmployeesByIDsFn(ctx, employeeIDs)
	}
	args := m.Called(ctx, employeeIDs)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	if m.SaveEmployeeFn != nil {
		return m.SaveEmployeeFn(ctx, employee)
	}
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// --- Mock GiftRepository ---
type MockGiftRepository struct {
	mock.Mock
	FindGiftByIDFn   func(ctx context.Context, giftID string) (*domain.Gift, error)
	FindGiftsFn      func(ctx context.Context) ([]domain.Gift, error)
	FindGiftsByIDsFn func(ctx context.Context, giftIDs []string) ([]domain.Gift, error)
}

func (m *MockGiftRepository) FindGiftByID(ctx context.Context, giftID string) (*domain.Gift, error) {
	if m.FindGiftByIDFn != nil {
		return m.FindGiftByIDFn(ctx, giftID)
	}
	args := m.Called(ctx, giftID)
	var gift *domain.Gift
	if args.Get(0) != nil {
		gift = args.Get(0).(*domain.Gift)
	}
	return gift, args.Error(1)
}

func (m *MockGiftRepository) FindGifts(ctx context.Context) ([]domain.Gift, error) {
	if m.FindGiftsFn != nil {
		return m.FindGiftsFn(ctx)
	}
	args := m.Called(ctx)
	var gifts []domain.Gift
	if args.Get(0) != nil {
		gifts = args.Get(0).([]domain.Gift)
	}
	return gifts, args.Error(1)
}

func (m *MockGiftRepository) FindGiftsByIDs(ctx context.Context, giftIDs []string) ([]domain.Gift, error) {
	if m.FindGiftsByIDsFn != nil {
		return m.FindGiftsByIDsFn(ctx, giftIDs)
	}
	args := m.Called(ctx, giftIDs)
	var gifts []domain.Gift
	if args.Get(0) != nil {
		gifts = args.Get(0).([]domain.Gift)
	}
	return gifts, args.Error(1)
}

func (m *MockGiftRepository) SaveGift(ctx context.Context, gift domain.Gift) error {
	args := m.Called(ctx, gift)
	return args.Error(0)
}

func (m *MockGiftRepository) UpdateGift(ctx context.Context, gift domain.Gift) error {
	args := m.Called(ctx, gift)
	return args.Error(0)
}
