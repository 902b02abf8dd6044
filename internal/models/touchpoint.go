package models

// TouchpointType enumerates the recipient journey events a landing page can emit
type TouchpointType string

// TouchpointPhase groups touchpoint types by stage of the recipient journey
type TouchpointPhase string

const (
	PhaseInitialContact  TouchpointPhase = "initial_contact"
	PhaseContentViewed   TouchpointPhase = "content_viewed"
	PhaseCTAClicks       TouchpointPhase = "cta_clicks"
	PhaseFeedback        TouchpointPhase = "feedback"
	PhaseIdentityCapture TouchpointPhase = "identity_capture"
	PhaseSystemFetch     TouchpointPhase = "system_fetch"
)

const (
	// Initial contact
	TouchpointLandingPageVisited TouchpointType = "LANDING_PAGE_VISITED"
	TouchpointGiftLinkOpened     TouchpointType = "GIFT_LINK_OPENED"
	TouchpointQRCodeScanned      TouchpointType = "QR_CODE_SCANNED"
	TouchpointEmailLinkClicked   TouchpointType = "EMAIL_LINK_CLICKED"

	// Content viewed
	TouchpointVideoMessageViewed    TouchpointType = "VIDEO_MESSAGE_VIEWED"
	TouchpointVideoMessageCompleted TouchpointType = "VIDEO_MESSAGE_COMPLETED"
	TouchpointGiftDetailsViewed     TouchpointType = "GIFT_DETAILS_VIEWED"
	TouchpointCampaignMessageViewed TouchpointType = "CAMPAIGN_MESSAGE_VIEWED"
	TouchpointGiftOptionsViewed     TouchpointType = "GIFT_OPTIONS_VIEWED"
	TouchpointGiftOptionSelected    TouchpointType = "GIFT_OPTION_SELECTED"

	// CTA clicks
	TouchpointPrimaryCTAClicked        TouchpointType = "PRIMARY_CTA_CLICKED"
	TouchpointSecondaryCTAClicked      TouchpointType = "SECONDARY_CTA_CLICKED"
	TouchpointMeetingLinkClicked       TouchpointType = "MEETING_LINK_CLICKED"
	TouchpointEventRegistrationClicked TouchpointType = "EVENT_REGISTRATION_CLICKED"
	TouchpointSocialShareClicked       TouchpointType = "SOCIAL_SHARE_CLICKED"
	TouchpointShippingAddressSubmitted TouchpointType = "SHIPPING_ADDRESS_SUBMITTED"

	// Feedback lifecycle, per modality
	TouchpointFeedbackModalOpened     TouchpointType = "FEEDBACK_MODAL_OPENED"
	TouchpointFeedbackModalClosed     TouchpointType = "FEEDBACK_MODAL_CLOSED"
	TouchpointTextFeedbackStarted     TouchpointType = "TEXT_FEEDBACK_STARTED"
	TouchpointTextFeedbackSubmitted   TouchpointType = "TEXT_FEEDBACK_SUBMITTED"
	TouchpointAudioRecordingStarted   TouchpointType = "AUDIO_RECORDING_STARTED"
	TouchpointAudioRecordingStopped   TouchpointType = "AUDIO_RECORDING_STOPPED"
	TouchpointAudioRecordingDiscarded TouchpointType = "AUDIO_RECORDING_DISCARDED"
	TouchpointAudioFeedbackSubmitted  TouchpointType = "AUDIO_FEEDBACK_SUBMITTED"
	TouchpointVideoRecordingStarted   TouchpointType = "VIDEO_RECORDING_STARTED"
	TouchpointVideoRecordingStopped   TouchpointType = "VIDEO_RECORDING_STOPPED"
	TouchpointVideoRecordingDiscarded TouchpointType = "VIDEO_RECORDING_DISCARDED"
	TouchpointVideoFeedbackSubmitted  TouchpointType = "VIDEO_FEEDBACK_SUBMITTED"
	TouchpointMediaPermissionGranted  TouchpointType = "MEDIA_PERMISSION_GRANTED"
	TouchpointMediaPermissionDenied   TouchpointType = "MEDIA_PERMISSION_DENIED"
	TouchpointFeedbackUploadFailed    TouchpointType = "FEEDBACK_UPLOAD_FAILED"
	TouchpointReactionSelected        TouchpointType = "REACTION_SELECTED"
	TouchpointRatingSubmitted         TouchpointType = "RATING_SUBMITTED"

	// Post-feedback identity capture
	TouchpointIdentityPromptShown     TouchpointType = "IDENTITY_PROMPT_SHOWN"
	TouchpointLinkedInConnectClicked  TouchpointType = "LINKEDIN_CONNECT_CLICKED"
	TouchpointLinkedInProfileCaptured TouchpointType = "LINKEDIN_PROFILE_CAPTURED"
	TouchpointEmailCaptured           TouchpointType = "EMAIL_CAPTURED"
	TouchpointIdentityPromptSkipped   TouchpointType = "IDENTITY_PROMPT_SKIPPED"
	TouchpointThankYouViewed          TouchpointType = "THANK_YOU_VIEWED"

	// System fetch outcomes
	TouchpointCampaignFetchSucceeded  TouchpointType = "CAMPAIGN_FETCH_SUCCEEDED"
	TouchpointCampaignFetchFailed     TouchpointType = "CAMPAIGN_FETCH_FAILED"
	TouchpointRecipientFetchSucceeded TouchpointType = "RECIPIENT_FETCH_SUCCEEDED"
	TouchpointRecipientFetchFailed    TouchpointType = "RECIPIENT_FETCH_FAILED"
	TouchpointGiftFetchSucceeded      TouchpointType = "GIFT_FETCH_SUCCEEDED"
	TouchpointGiftFetchFailed         TouchpointType = "GIFT_FETCH_FAILED"
)

var touchpointPhases = map[TouchpointType]TouchpointPhase{
	TouchpointLandingPageVisited: PhaseInitialContact,
	TouchpointGiftLinkOpened:     PhaseInitialContact,
	TouchpointQRCodeScanned:      PhaseInitialContact,
	TouchpointEmailLinkClicked:   PhaseInitialContact,

	TouchpointVideoMessageViewed:    PhaseContentViewed,
	TouchpointVideoMessageCompleted: PhaseContentViewed,
	TouchpointGiftDetailsViewed:     PhaseContentViewed,
	TouchpointCampaignMessageViewed: PhaseContentViewed,
	TouchpointGiftOptionsViewed:     PhaseContentViewed,
	TouchpointGiftOptionSelected:    PhaseContentViewed,

	TouchpointPrimaryCTAClicked:        PhaseCTAClicks,
	TouchpointSecondaryCTAClicked:      PhaseCTAClicks,
	TouchpointMeetingLinkClicked:       PhaseCTAClicks,
	TouchpointEventRegistrationClicked: PhaseCTAClicks,
	TouchpointSocialShareClicked:       PhaseCTAClicks,
	TouchpointShippingAddressSubmitted: PhaseCTAClicks,

	TouchpointFeedbackModalOpened:     PhaseFeedback,
	TouchpointFeedbackModalClosed:     PhaseFeedback,
	TouchpointTextFeedbackStarted:     PhaseFeedback,
	TouchpointTextFeedbackSubmitted:   PhaseFeedback,
	TouchpointAudioRecordingStarted:   PhaseFeedback,
	TouchpointAudioRecordingStopped:   PhaseFeedback,
	TouchpointAudioRecordingDiscarded: PhaseFeedback,
	TouchpointAudioFeedbackSubmitted:  PhaseFeedback,
	TouchpointVideoRecordingStarted:   PhaseFeedback,
	TouchpointVideoRecordingStopped:   PhaseFeedback,
	TouchpointVideoRecordingDiscarded: PhaseFeedback,
	TouchpointVideoFeedbackSubmitted:  PhaseFeedback,
	TouchpointMediaPermissionGranted:  PhaseFeedback,
	TouchpointMediaPermissionDenied:   PhaseFeedback,
	TouchpointFeedbackUploadFailed:    PhaseFeedback,
	TouchpointReactionSelected:        PhaseFeedback,
	TouchpointRatingSubmitted:         PhaseFeedback,

	TouchpointIdentityPromptShown:     PhaseIdentityCapture,
	TouchpointLinkedInConnectClicked:  PhaseIdentityCapture,
	TouchpointLinkedInProfileCaptured: PhaseIdentityCapture,
	TouchpointEmailCaptured:           PhaseIdentityCapture,
	TouchpointIdentityPromptSkipped:   PhaseIdentityCapture,
	TouchpointThankYouViewed:          PhaseIdentityCapture,

	TouchpointCampaignFetchSucceeded:  PhaseSystemFetch,
	TouchpointCampaignFetchFailed:     PhaseSystemFetch,
	TouchpointRecipientFetchSucceeded: PhaseSystemFetch,
	TouchpointRecipientFetchFailed:    PhaseSystemFetch,
	TouchpointGiftFetchSucceeded:      PhaseSystemFetch,
	TouchpointGiftFetchFailed:         PhaseSystemFetch,
}

// IsValid reports whether t is a member of the catalog
func (t TouchpointType) IsValid() bool {
	_, ok := touchpointPhases[t]
	return ok
}

// Phase returns the journey phase of t, or "" for unknown types
func (t TouchpointType) Phase() TouchpointPhase {
	return touchpointPhases[t]
}

// AllTouchpointTypes returns every catalog member
func AllTouchpointTypes() []TouchpointType {
	types := make([]TouchpointType, 0, len(touchpointPhases))
	for t := range touchpointPhases {
		types = append(types, t)
	}
	return types
}

// TouchpointMetadata is the browsing context attached to touchpoint data
type TouchpointMetadata struct {
	UserAgent  string `json:"userAgent,omitempty"`
	Source     string `json:"source,omitempty"`
	DeviceType string `json:"deviceType,omitempty"`
}

// TouchpointData is one element of an event's touchpointData array
type TouchpointData struct {
	Data     map[string]interface{} `json:"data"`
	Metadata *TouchpointMetadata    `json:"metadata,omitempty"`
}

// TouchpointEvent is an immutable entry of a recipient's timeline
type TouchpointEvent struct {
	RecipientID    string           `json:"recipientId" binding:"required" example:"r_1"`
	CampaignID     string           `json:"campaignId" binding:"required" example:"cmp_123"`
	TouchpointType TouchpointType   `json:"touchpointType" binding:"required" example:"LANDING_PAGE_VISITED"`
	TouchpointData []TouchpointData `json:"touchpointData"`
}
