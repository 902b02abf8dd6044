package campaign

import "strings"

// Backend goal identifiers
const (
	GoalDriveEvent           = "DRIVE_EVENT_ATTENDANCE"
	GoalAcceleratePipeline   = "ACCELERATE_PIPELINE"
	GoalDelightCustomers     = "DELIGHT_CUSTOMERS"
	GoalNurtureRelationships = "NURTURE_RELATIONSHIPS"
	GoalBoothGiveaway        = "BOOTH_GIVEAWAY"
	GoalOther                = "OTHER"
)

// BoothGiveawayMotion is the motion every booth campaign is forced to
const BoothGiveawayMotion = "booth_giveaway"

var goalTable = map[string]string{
	"drive-event":           GoalDriveEvent,
	"drive_event":           GoalDriveEvent,
	"event-engagement":      GoalDriveEvent,
	"accelerate-pipeline":   GoalAcceleratePipeline,
	"pipeline-acceleration": GoalAcceleratePipeline,
	"delight-customers":     GoalDelightCustomers,
	"nurture-relationships": GoalNurtureRelationships,
	"booth-giveaway":        GoalBoothGiveaway,
}

// MapGoal translates a designer goal into the backend goal enum.
// Backend identifiers pass through unchanged; anything else maps to OTHER.
func MapGoal(goal string) string {
	normalized := strings.ToLower(strings.TrimSpace(goal))
	if mapped, ok := goalTable[normalized]; ok {
		return mapped
	}
	upper := strings.ToUpper(strings.TrimSpace(goal))
	for _, known := range goalTable {
		if known == upper {
			return known
		}
	}
	return GoalOther
}

// IsEventGoal reports whether goal is the event-driving goal
func IsEventGoal(goal string) bool {
	return MapGoal(goal) == GoalDriveEvent
}
