package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
)

// ValidateDiscAnswers checks that every item names two distinct, known traits.
func ValidateDiscAnswers(answers []schema.DiscAnswer) error {
	for i, a := range answers {
		if !a.Most.Valid() || !a.Least.Valid() {
			return fmt.Errorf("%w: item %d has an unknown trait", contract.ErrInvalidAssessment, i+1)
		}
		if a.Most == a.Least {
			return fmt.Errorf("%w: item %d picks %s as both most and least", contract.ErrInvalidAssessment, i+1, a.Most)
		}
	}
	return nil
}

// ValidatePoleChoices checks that every Driving Forces choice is a known pole.
func ValidatePoleChoices(choices []schema.Pole) error {
	for i, p := range choices {
		if !p.Valid() {
			return fmt.Errorf("%w: driving forces item %d has an unknown pole", contract.ErrInvalidAssessment, i+1)
		}
	}
	return nil
}

// ValidateSubmission checks identity fields and both answer sequences.
func ValidateSubmission(sub schema.AssessmentSubmission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("%w: name is required", contract.ErrInvalidAssessment)
	}
	if strings.TrimSpace(sub.Department) == "" {
		return fmt.Errorf("%w: department is required", contract.ErrInvalidAssessment)
	}
	if len(sub.DiscAnswers) == 0 {
		return fmt.Errorf("%w: at least one DISC answer is required", contract.ErrInvalidAssessment)
	}
	if err := ValidateDiscAnswers(sub.DiscAnswers); err != nil {
		return err
	}
	return ValidatePoleChoices(sub.ForceChoices)
}
