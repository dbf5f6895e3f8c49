package flow

import (
	"fmt"
	"strings"
)

// validateQuestions performs all structural checks on the question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question, firstQuestionID string) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true
	}

	if !idSet[firstQuestionID] {
		errs = append(errs, fmt.Sprintf("first question %q is not registered", firstQuestionID))
	}

	for _, q := range questions {
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no answer options", q.ID))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if optSet[opt.ID] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option ID %q", q.ID, opt.ID))
			}
			optSet[opt.ID] = true

			if opt.NextQuestionID != "" && !idSet[opt.NextQuestionID] {
				errs = append(errs, fmt.Sprintf(
					"question %q option %q references nonexistent question %q",
					q.ID, opt.ID, opt.NextQuestionID))
			}
		}
	}

	// At least one branch must be able to end the questionnaire.
	hasTerminal := false
	for _, q := range questions {
		for _, opt := range q.Options {
			if opt.NextQuestionID == "" {
				hasTerminal = true
			}
		}
	}
	if !hasTerminal {
		errs = append(errs, "no terminal options found (at least one option must end the flow)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("questionnaire flow validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
