package domain

import "time"

// Poll is a surprise gift vote for one employee's birthday. The birthday
// employee must never learn the poll exists while it is open, so every
// read path filters on BirthdayEmployeeID before returning a poll.
type Poll struct {
	PollID             string     `json:"pollID"` // Primary Key (UUID)
	BirthdayEmployeeID string     `json:"birthdayEmployeeID"`
	StartedByID        string     `json:"startedByID"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            *time.Time `json:"endDate,omitempty"`
	IsClosed           bool       `json:"isClosed"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	// Options is populated by reads that join the option rows. It is not
	// persisted on the poll row itself.
	Options []PollOption `json:"options,omitempty"`
}

// PollOption links a poll to one candidate gift. Position records creation
// order, which is the tie-break order when picking a winner.
type PollOption struct {
	OptionID  string    `json:"optionID"` // Primary Key (UUID)
	PollID    string    `json:"pollID"`
	GiftID    string    `json:"giftID"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ballot records one employee's vote on a poll option. PollID is carried on
// the ballot so the voter-per-poll uniqueness constraint can live on this
// table directly.
type Ballot struct {
	BallotID  string    `json:"ballotID"` // Primary Key (UUID)
	PollID    string    `json:"pollID"`
	OptionID  string    `json:"optionID"`
	VoterID   string    `json:"voterID"`
	CreatedAt time.Time `json:"createdAt"`
}
