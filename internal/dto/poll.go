package dto

import (
	"time"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// --- Poll DTOs ---

// CreatePollRequest defines data for starting a new birthday poll.
// GiftIDs that do not exist in the catalog are skipped; at least two must
// remain after filtering.
type CreatePollRequest struct {
	BirthdayEmployeeID string     `json:"birthdayEmployeeID" binding:"required"`
	GiftIDs            []string   `json:"giftIDs" binding:"required,min=2"`
	EndDate            *time.Time `json:"endDate"`
}

// CastBallotRequest defines data for voting on a poll option.
type CastBallotRequest struct {
	OptionID string `json:"optionID" binding:"required"`
}

// UpdatePollEndDateRequest defines data for rescheduling an open poll.
type UpdatePollEndDateRequest struct {
	EndDate time.Time `json:"endDate" binding:"required"`
}

// PollOptionResponse defines data returned for a poll option.
type PollOptionResponse struct {
	OptionID string `json:"optionID"`
	GiftID   string `json:"giftID"`
}

// PollResponse defines data returned for a poll.
type PollResponse struct {
	PollID             string               `json:"pollID"`
	BirthdayEmployeeID string               `json:"birthdayEmployeeID"`
	StartedByID        string               `json:"startedByID"`
	StartDate          time.Time            `json:"startDate"`
	EndDate            *time.Time           `json:"endDate,omitempty"`
	IsClosed           bool                 `json:"isClosed"`
	Options            []PollOptionResponse `json:"options"`
}

// ListPollsResponse wraps a list of polls.
type ListPollsResponse struct {
	Polls []PollResponse `json:"polls"`
}

// BallotResponse defines data returned after casting a ballot.
type BallotResponse struct {
	BallotID string `json:"ballotID"`
	PollID   string `json:"pollID"`
	OptionID string `json:"optionID"`
	VoterID  string `json:"voterID"`
}

// ToPollResponse converts a domain.Poll to PollResponse DTO.
func ToPollResponse(p *domain.Poll) PollResponse {
	options := make([]PollOptionResponse, len(p.Options))
	for i, o := range p.Options {
		options[i] = PollOptionResponse{
			OptionID: o.OptionID,
			GiftID:   o.GiftID,
		}
	}
	return PollResponse{
		PollID:             p.PollID,
		BirthdayEmployeeID: p.BirthdayEmployeeID,
		StartedByID:        p.StartedByID,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IsClosed:           p.IsClosed,
		Options:            options,
	}
}

// ToListPollsResponse converts a slice of domain.Poll to ListPollsResponse DTO.
func ToListPollsResponse(polls []domain.Poll) ListPollsResponse {
	responses := make([]PollResponse, len(polls))
	for i, p := range polls {
		responses[i] = ToPollResponse(&p)
	}
	return ListPollsResponse{
		Polls: responses,
	}
}

// ToBallotResponse converts a domain.Ballot to BallotResponse DTO.
func ToBallotResponse(b *domain.Ballot) BallotResponse {
	return BallotResponse{
		BallotID: b.BallotID,
		PollID:   b.PollID,
		OptionID: b.OptionID,
		VoterID:  b.VoterID,
	}
}
