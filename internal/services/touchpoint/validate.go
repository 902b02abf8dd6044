package touchpoint

import (
	"fmt"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
)

// Validation limits for ingested touchpoints
const (
	MaxIDLen          = 128
	MaxTouchpointData = 20
)

// FieldError represents a single field's validation error
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// ValidateEvent checks an ingested touchpoint before it is forwarded
func ValidateEvent(ev *models.TouchpointEvent) []FieldError {
	var errs []FieldError

	if ev.RecipientID == "" {
		errs = append(errs, FieldError{"recipientId", "required"})
	} else if len(ev.RecipientID) > MaxIDLen {
		errs = append(errs, FieldError{"recipientId", fmt.Sprintf("max length %d", MaxIDLen)})
	}

	if ev.CampaignID == "" {
		errs = append(errs, FieldError{"campaignId", "required"})
	} else if len(ev.CampaignID) > MaxIDLen {
		errs = append(errs, FieldError{"campaignId", fmt.Sprintf("max length %d", MaxIDLen)})
	}

	if !ev.TouchpointType.IsValid() {
		errs = append(errs, FieldError{"touchpointType", fmt.Sprintf("unknown touchpoint type %q", ev.TouchpointType)})
	}

	if len(ev.TouchpointData) > MaxTouchpointData {
		errs = append(errs, FieldError{"touchpointData", fmt.Sprintf("max %d items", MaxTouchpointData)})
	}

	return errs
}
