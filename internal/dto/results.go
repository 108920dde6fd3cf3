package dto

import (
	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// --- Results DTOs ---

// OptionCountResponse defines the vote count returned for one option.
type OptionCountResponse struct {
	OptionID string             `json:"optionID"`
	Gift     GiftResponse       `json:"gift"`
	Count    int                `json:"count"`
	Voters   []EmployeeResponse `json:"voters"`
}

// TallyResponse defines the aggregated outcome returned for a poll.
type TallyResponse struct {
	Poll      PollResponse          `json:"poll"`
	Counts    []OptionCountResponse `json:"counts"`
	Winner    *GiftResponse         `json:"winner,omitempty"`
	NonVoters []EmployeeResponse    `json:"nonVoters"`
}

// PollDetailsResponse defines the per-viewer detail page of a poll.
type PollDetailsResponse struct {
	Poll             PollResponse     `json:"poll"`
	BirthdayEmployee EmployeeResponse `json:"birthdayEmployee"`
	StartedBy        EmployeeResponse `json:"startedBy"`
	VotedOptionID    *string          `json:"votedOptionID,omitempty"`
	CanVote          bool             `json:"canVote"`
	CanClose         bool             `json:"canClose"`
	Results          *TallyResponse   `json:"results,omitempty"`
}

// ToTallyResponse converts a domain.TallyResult to TallyResponse DTO.
func ToTallyResponse(t *domain.TallyResult) TallyResponse {
	counts := make([]OptionCountResponse, len(t.Counts))
	for i, c := range t.Counts {
		gift := c.Gift
		counts[i] = OptionCountResponse{
			OptionID: c.OptionID,
			Gift:     ToGiftResponse(&gift),
			Count:    c.Count,
			Voters:   ToEmployeeResponses(c.Voters),
		}
	}
	resp := TallyResponse{
		Poll:      ToPollResponse(&t.Poll),
		Counts:    counts,
		NonVoters: ToEmployeeResponses(t.NonVoters),
	}
	if t.Winner != nil {
		winner := ToGiftResponse(t.Winner)
		resp.Winner = &winner
	}
	return resp
}

// ToPollDetailsResponse converts a domain.PollDetails to PollDetailsResponse DTO.
func ToPollDetailsResponse(d *domain.PollDetails) PollDetailsResponse {
	resp := PollDetailsResponse{
		Poll:             ToPollResponse(&d.Poll),
		BirthdayEmployee: ToEmployeeResponse(&d.BirthdayEmployee),
		StartedBy:        ToEmployeeResponse(&d.StartedBy),
		VotedOptionID:    d.VotedOptionID,
		CanVote:          d.CanVote,
		CanClose:         d.CanClose,
	}
	if d.Results != nil {
		results := ToTallyResponse(d.Results)
		resp.Results = &results
	}
	return resp
}
