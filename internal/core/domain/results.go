package domain

// OptionCount is the vote count for a single option of a poll, enriched
// with the gift it points at and the voters who picked it.
type OptionCount struct {
	OptionID string     `json:"optionID"`
	Gift     Gift       `json:"gift"`
	Count    int        `json:"count"`
	Voters   []Employee `json:"voters"`
}

// TallyResult is the aggregated outcome of a poll. Winner is the gift of
// the highest-counted option; ties, including every option at zero, go to
// the earliest-created option. NonVoters lists every employee who could
// have voted but did not, never including the birthday person.
type TallyResult struct {
	Poll      Poll          `json:"poll"`
	Counts    []OptionCount `json:"counts"`
	Winner    *Gift         `json:"winner,omitempty"`
	NonVoters []Employee    `json:"nonVoters"`
}

// PollDetails is the per-viewer projection of a poll used by the detail
// page: which option the viewer picked, whether they may still vote, and
// the final results once the poll is closed.
type PollDetails struct {
	Poll             Poll         `json:"poll"`
	BirthdayEmployee Employee     `json:"birthdayEmployee"`
	StartedBy        Employee     `json:"startedBy"`
	VotedOptionID    *string      `json:"votedOptionID,omitempty"`
	CanVote          bool         `json:"canVote"`
	CanClose         bool         `json:"canClose"`
	Results          *TallyResult `json:"results,omitempty"`
}
