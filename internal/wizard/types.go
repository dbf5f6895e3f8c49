package wizard

import (
	"github.com/dkoval/padelwiz/internal/flow"
	"github.com/dkoval/padelwiz/internal/rating"
)

// MatchKey selects how an inbound reply is matched against the active
// question's options. Matching on display text mirrors how chat keyboards
// echo the pressed button label back as plain text; matching on option id
// suits transports that send stable identifiers and survives label edits.
type MatchKey int

const (
	MatchByText MatchKey = iota
	MatchByOptionID
)

// Status describes what a step produced and what the transport should do.
type Status int

const (
	// StatusQuestion: present Question next.
	StatusQuestion Status = iota + 1

	// StatusMismatch: the reply matched no option; re-present Question
	// unchanged. Nothing was persisted.
	StatusMismatch

	// StatusCompleted: the questionnaire finished; Outcome is set.
	StatusCompleted

	// StatusNoSession: the user has no questionnaire in progress. Not an
	// error; the transport should offer to start one.
	StatusNoSession

	// StatusRestart: the stored session could not be replayed and was
	// invalidated. The transport should prompt the user to start over.
	StatusRestart
)

// StepResult is the engine's reply to one inbound event.
type StepResult struct {
	Status        Status
	Question      *flow.Question
	Outcome       *Outcome
	SessionNumber int64

	// Answered counts the accepted answers so far, for progress display.
	Answered int
}

// Outcome is the terminal rating payload shown when a session completes.
type Outcome struct {
	Level      rating.Level
	Target     rating.Level
	Score      float64
	Experience rating.Level
	Skills     rating.SkillRatings

	// Rated is false when the session reached a terminal option without
	// enough data for the rating pipeline (possible only with a modified
	// flow). The session is still finished, just without a level.
	Rated bool
}
