package campaign

import (
	"errors"
	"fmt"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
)

// ErrNoCampaignID is returned when the backend creates nothing we can reference
var ErrNoCampaignID = errors.New("campaign creation returned no campaign id")

// StepError marks an error with the step that produced it
type StepError struct {
	Step models.StepID
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s (%s) failed: %v", e.Step, e.Step.Name(), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step models.StepID, err error) error {
	return &StepError{Step: step, Err: err}
}

// StepOf returns the step marker embedded in err, if any
func StepOf(err error) (models.StepID, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}
	return "", false
}
