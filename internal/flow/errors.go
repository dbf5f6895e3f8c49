package flow

import "fmt"

// QuestionNotFoundError indicates a question id that is not registered in
// the graph. Reaching one through normal traversal is a configuration bug,
// not a user-facing condition.
type QuestionNotFoundError struct {
	QuestionID string
}

func (e *QuestionNotFoundError) Error() string {
	return fmt.Sprintf("question %q is not registered in the flow", e.QuestionID)
}

// OptionNotFoundError indicates an option id that does not belong to the
// question it was looked up on.
type OptionNotFoundError struct {
	QuestionID string
	OptionID   string
}

func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("option %q is not defined for question %q", e.OptionID, e.QuestionID)
}

// CorruptSessionError indicates that a stored answer list cannot be
// replayed through the current graph. The session should be invalidated
// and the user prompted to restart; guessing a resume point is never safe.
type CorruptSessionError struct {
	Index  int
	Answer Answer
	Reason string
}

func (e *CorruptSessionError) Error() string {
	return fmt.Sprintf("stored answer %d (%s/%s) cannot be replayed: %s",
		e.Index, e.Answer.QuestionID, e.Answer.OptionID, e.Reason)
}
