package models

import "encoding/json"

// FlowVariant selects which orchestration flow a run uses
type FlowVariant string

const (
	FlowStandard FlowVariant = "standard"
	FlowDraft    FlowVariant = "draft"
	FlowBooth    FlowVariant = "booth_giveaway"
)

// FlowResult is the discriminated result returned to the designer UI.
// Callers branch on success, launched, partialSuccess and draft; a failure carries
// the step marker of the step that aborted the run.
type FlowResult struct {
	Success              bool         `json:"success"`
	Launched             bool         `json:"launched,omitempty"`
	PartialSuccess       bool         `json:"partialSuccess,omitempty"`
	Draft                bool         `json:"draft,omitempty"`
	CampaignID           string       `json:"campaignId,omitempty" example:"cmp_123"`
	BoothGiveawayCTALink string       `json:"boothGiveawayCTALink,omitempty"`
	Message              string       `json:"message,omitempty"`
	Error                string       `json:"error,omitempty"`
	Step                 StepID       `json:"step,omitempty" example:"2"`
	State                RunState     `json:"state" example:"LAUNCHED"`
	Steps                []StepResult `json:"steps"`
}

// Warnings returns the step results that were tolerated failures
func (r *FlowResult) Warnings() []StepResult {
	var warnings []StepResult
	for _, step := range r.Steps {
		if step.Outcome == StepWarning {
			warnings = append(warnings, step)
		}
	}
	return warnings
}

// StepResult returns the recorded result for step, if any
func (r *FlowResult) StepResult(step StepID) (StepResult, bool) {
	for _, result := range r.Steps {
		if result.Step == step {
			return result, true
		}
	}
	return StepResult{}, false
}

// ToJSON converts the result into the generic form stored on a LaunchRun
func (r *FlowResult) ToJSON() JSON {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	var out JSON
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// DecodeFlowResult recovers a FlowResult stored with ToJSON; nil when absent
func DecodeFlowResult(data JSON) *FlowResult {
	if len(data) == 0 {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	var result FlowResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return &result
}
