package models

// StepID identifies a launch step; the values are surfaced to operators in failure messages
type StepID string

const (
	StepCreateCampaign       StepID = "1"
	StepUpdateDetails        StepID = "2"
	StepUpdateMotion         StepID = "3"
	StepAddRecipients        StepID = "4"
	StepUpdateLandingPage    StepID = "4A"
	StepUpdateGiftCard       StepID = "4B"
	StepUpdateEventLink      StepID = "4C"
	StepUpdateEmailTemplates StepID = "4D"
	StepGiftSelection        StepID = "5"
	StepRunCampaign          StepID = "6"
)

var stepNames = map[StepID]string{
	StepCreateCampaign:       "create-campaign",
	StepUpdateDetails:        "update-campaign-details",
	StepUpdateMotion:         "update-motion",
	StepAddRecipients:        "add-recipients",
	StepUpdateLandingPage:    "update-landing-page-config",
	StepUpdateGiftCard:       "update-gift-card",
	StepUpdateEventLink:      "update-event-with-campaign-id",
	StepUpdateEmailTemplates: "update-email-templates",
	StepGiftSelection:        "gift-selection-execution",
	StepRunCampaign:          "run-campaign",
}

// Name returns the human readable step name
func (s StepID) Name() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// StepOutcome is the tag of a StepResult
type StepOutcome string

const (
	StepOK      StepOutcome = "ok"
	StepWarning StepOutcome = "warning"
	StepSkipped StepOutcome = "skipped"
	StepFatal   StepOutcome = "fatal"
)

// StepResult records what one step did during a run
type StepResult struct {
	Step    StepID      `json:"step" example:"2"`
	Name    string      `json:"name" example:"update-campaign-details"`
	Outcome StepOutcome `json:"outcome" example:"ok"`
	Message string      `json:"message,omitempty"`
	Data    JSON        `json:"data,omitempty" swaggertype:"object"`
}

// Succeeded reports whether the step completed its backend call
func (r StepResult) Succeeded() bool {
	return r.Outcome == StepOK
}

// Ok builds a successful step result
func Ok(step StepID, data JSON) StepResult {
	return StepResult{Step: step, Name: step.Name(), Outcome: StepOK, Data: data}
}

// Warning builds a result for a non-critical step that failed and was tolerated
func Warning(step StepID, reason string) StepResult {
	return StepResult{Step: step, Name: step.Name(), Outcome: StepWarning, Message: reason}
}

// Skipped builds a result for a step that had nothing to do
func Skipped(step StepID, reason string) StepResult {
	return StepResult{Step: step, Name: step.Name(), Outcome: StepSkipped, Message: reason}
}

// Fatal builds a result for a step whose failure aborted the run
func Fatal(step StepID, err error) StepResult {
	return StepResult{Step: step, Name: step.Name(), Outcome: StepFatal, Message: err.Error()}
}
