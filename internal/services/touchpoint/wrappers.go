package touchpoint

import (
	"context"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
)

// Typed helpers, one per touchpoint type. Each one only fixes the type and
// shapes the data object before handing off to Emit.

// Initial contact: how the recipient first reached the campaign.

// TrackLandingPageVisited records the first load of the gift landing page.
func (e *Emitter) TrackLandingPageVisited(ctx context.Context, recipientID, campaignID, referrer, pageURL string) {
	e.Emit(ctx, models.TouchpointLandingPageVisited, recipientID, campaignID, map[string]interface{}{
		"referrer": referrer,
		"pageUrl":  pageURL,
	})
}

// TrackGiftLinkOpened records a recipient opening their personal gift link.
func (e *Emitter) TrackGiftLinkOpened(ctx context.Context, recipientID, campaignID, linkID string) {
	e.Emit(ctx, models.TouchpointGiftLinkOpened, recipientID, campaignID, map[string]interface{}{
		"linkId": linkID,
	})
}

// TrackQRCodeScanned records a booth QR scan.
func (e *Emitter) TrackQRCodeScanned(ctx context.Context, recipientID, campaignID, boothID string) {
	e.Emit(ctx, models.TouchpointQRCodeScanned, recipientID, campaignID, map[string]interface{}{
		"boothId": boothID,
	})
}

// TrackEmailLinkClicked records a click through from a campaign email.
func (e *Emitter) TrackEmailLinkClicked(ctx context.Context, recipientID, campaignID, emailTemplateID, linkURL string) {
	e.Emit(ctx, models.TouchpointEmailLinkClicked, recipientID, campaignID, map[string]interface{}{
		"emailTemplateId": emailTemplateID,
		"linkUrl":         linkURL,
	})
}

// Content viewed on the landing page.

// TrackVideoMessageViewed records the start of the sender's video message.
func (e *Emitter) TrackVideoMessageViewed(ctx context.Context, recipientID, campaignID, videoURL string) {
	e.Emit(ctx, models.TouchpointVideoMessageViewed, recipientID, campaignID, map[string]interface{}{
		"videoUrl": videoURL,
	})
}

// TrackVideoMessageCompleted records the video message playing to the end.
func (e *Emitter) TrackVideoMessageCompleted(ctx context.Context, recipientID, campaignID, videoURL string, watchedSeconds float64) {
	e.Emit(ctx, models.TouchpointVideoMessageCompleted, recipientID, campaignID, map[string]interface{}{
		"videoUrl":       videoURL,
		"watchedSeconds": watchedSeconds,
	})
}

// TrackGiftDetailsViewed records a recipient opening a gift's details.
func (e *Emitter) TrackGiftDetailsViewed(ctx context.Context, recipientID, campaignID, giftID, giftName string) {
	e.Emit(ctx, models.TouchpointGiftDetailsViewed, recipientID, campaignID, map[string]interface{}{
		"giftId":   giftID,
		"giftName": giftName,
	})
}

// TrackCampaignMessageViewed records the campaign message coming into view.
func (e *Emitter) TrackCampaignMessageViewed(ctx context.Context, recipientID, campaignID, messageID string) {
	e.Emit(ctx, models.TouchpointCampaignMessageViewed, recipientID, campaignID, map[string]interface{}{
		"messageId": messageID,
	})
}

// TrackGiftOptionsViewed records the list of gifts offered to the recipient.
func (e *Emitter) TrackGiftOptionsViewed(ctx context.Context, recipientID, campaignID string, giftIDs []string) {
	e.Emit(ctx, models.TouchpointGiftOptionsViewed, recipientID, campaignID, map[string]interface{}{
		"giftIds": giftIDs,
	})
}

// TrackGiftOptionSelected records the recipient picking a gift.
func (e *Emitter) TrackGiftOptionSelected(ctx context.Context, recipientID, campaignID, giftID, giftName string) {
	e.Emit(ctx, models.TouchpointGiftOptionSelected, recipientID, campaignID, map[string]interface{}{
		"giftId":   giftID,
		"giftName": giftName,
	})
}

// CTA clicks and form submissions.

// TrackPrimaryCTAClicked records a click on the main call to action.
func (e *Emitter) TrackPrimaryCTAClicked(ctx context.Context, recipientID, campaignID, ctaLabel, ctaURL string) {
	e.Emit(ctx, models.TouchpointPrimaryCTAClicked, recipientID, campaignID, map[string]interface{}{
		"ctaLabel": ctaLabel,
		"ctaUrl":   ctaURL,
	})
}

// TrackSecondaryCTAClicked records a click on the secondary call to action.
func (e *Emitter) TrackSecondaryCTAClicked(ctx context.Context, recipientID, campaignID, ctaLabel, ctaURL string) {
	e.Emit(ctx, models.TouchpointSecondaryCTAClicked, recipientID, campaignID, map[string]interface{}{
		"ctaLabel": ctaLabel,
		"ctaUrl":   ctaURL,
	})
}

// TrackMeetingLinkClicked records a click on the sender's meeting link.
func (e *Emitter) TrackMeetingLinkClicked(ctx context.Context, recipientID, campaignID, meetingURL string) {
	e.Emit(ctx, models.TouchpointMeetingLinkClicked, recipientID, campaignID, map[string]interface{}{
		"meetingUrl": meetingURL,
	})
}

// TrackEventRegistrationClicked records a click on an event registration link.
func (e *Emitter) TrackEventRegistrationClicked(ctx context.Context, recipientID, campaignID, eventID, registrationURL string) {
	e.Emit(ctx, models.TouchpointEventRegistrationClicked, recipientID, campaignID, map[string]interface{}{
		"eventId":         eventID,
		"registrationUrl": registrationURL,
	})
}

// TrackSocialShareClicked records a share to network.
func (e *Emitter) TrackSocialShareClicked(ctx context.Context, recipientID, campaignID, network string) {
	e.Emit(ctx, models.TouchpointSocialShareClicked, recipientID, campaignID, map[string]interface{}{
		"network": network,
	})
}

// TrackShippingAddressSubmitted records a submitted shipping address. Only country and postal code are kept.
func (e *Emitter) TrackShippingAddressSubmitted(ctx context.Context, recipientID, campaignID, country, postalCode string) {
	e.Emit(ctx, models.TouchpointShippingAddressSubmitted, recipientID, campaignID, map[string]interface{}{
		"country":    country,
		"postalCode": postalCode,
	})
}

// Feedback lifecycle. Recording helpers take the media type the browser
// produced; durations are in seconds.

// TrackFeedbackModalOpened records the feedback modal opening for modality.
func (e *Emitter) TrackFeedbackModalOpened(ctx context.Context, recipientID, campaignID, modality string) {
	e.Emit(ctx, models.TouchpointFeedbackModalOpened, recipientID, campaignID, map[string]interface{}{
		"modality": modality,
	})
}

// TrackFeedbackModalClosed records the feedback modal closing, with or without a submission.
func (e *Emitter) TrackFeedbackModalClosed(ctx context.Context, recipientID, campaignID, modality string, submitted bool) {
	e.Emit(ctx, models.TouchpointFeedbackModalClosed, recipientID, campaignID, map[string]interface{}{
		"modality":  modality,
		"submitted": submitted,
	})
}

// TrackTextFeedbackStarted records the first keystroke of written feedback.
func (e *Emitter) TrackTextFeedbackStarted(ctx context.Context, recipientID, campaignID string) {
	e.Emit(ctx, models.TouchpointTextFeedbackStarted, recipientID, campaignID, nil)
}

// TrackTextFeedbackSubmitted records submitted written feedback.
func (e *Emitter) TrackTextFeedbackSubmitted(ctx context.Context, recipientID, campaignID, message string, characterCount int) {
	e.Emit(ctx, models.TouchpointTextFeedbackSubmitted, recipientID, campaignID, map[string]interface{}{
		"message":        message,
		"characterCount": characterCount,
	})
}

// TrackAudioRecordingStarted records the microphone recorder starting.
func (e *Emitter) TrackAudioRecordingStarted(ctx context.Context, recipientID, campaignID, mimeType string) {
	e.Emit(ctx, models.TouchpointAudioRecordingStarted, recipientID, campaignID, map[string]interface{}{
		"mimeType": mimeType,
	})
}

// TrackAudioRecordingStopped records the microphone recorder stopping with a take ready to send.
func (e *Emitter) TrackAudioRecordingStopped(ctx context.Context, recipientID, campaignID string, durationSeconds float64, mimeType string) {
	e.Emit(ctx, models.TouchpointAudioRecordingStopped, recipientID, campaignID, map[string]interface{}{
		"durationSeconds": durationSeconds,
		"mimeType":        mimeType,
	})
}

// TrackAudioRecordingDiscarded records an audio take thrown away before upload.
func (e *Emitter) TrackAudioRecordingDiscarded(ctx context.Context, recipientID, campaignID string, durationSeconds float64) {
	e.Emit(ctx, models.TouchpointAudioRecordingDiscarded, recipientID, campaignID, map[string]interface{}{
		"durationSeconds": durationSeconds,
	})
}

// TrackAudioFeedbackSubmitted records an uploaded audio reply.
func (e *Emitter) TrackAudioFeedbackSubmitted(ctx context.Context, recipientID, campaignID, mediaURL string, durationSeconds float64) {
	e.Emit(ctx, models.TouchpointAudioFeedbackSubmitted, recipientID, campaignID, map[string]interface{}{
		"mediaUrl":        mediaURL,
		"durationSeconds": durationSeconds,
	})
}

// TrackVideoRecordingStarted records the camera recorder starting.
func (e *Emitter) TrackVideoRecordingStarted(ctx context.Context, recipientID, campaignID, mimeType string) {
	e.Emit(ctx, models.TouchpointVideoRecordingStarted, recipientID, campaignID, map[string]interface{}{
		"mimeType": mimeType,
	})
}

// TrackVideoRecordingStopped records the camera recorder stopping with a take ready to send.
func (e *Emitter) TrackVideoRecordingStopped(ctx context.Context, recipientID, campaignID string, durationSeconds float64, mimeType string) {
	e.Emit(ctx, models.TouchpointVideoRecordingStopped, recipientID, campaignID, map[string]interface{}{
		"durationSeconds": durationSeconds,
		"mimeType":        mimeType,
	})
}

// TrackVideoRecordingDiscarded records a video take thrown away before upload.
func (e *Emitter) TrackVideoRecordingDiscarded(ctx context.Context, recipientID, campaignID string, durationSeconds float64) {
	e.Emit(ctx, models.TouchpointVideoRecordingDiscarded, recipientID, campaignID, map[string]interface{}{
		"durationSeconds": durationSeconds,
	})
}

// TrackVideoFeedbackSubmitted records an uploaded video reply.
func (e *Emitter) TrackVideoFeedbackSubmitted(ctx context.Context, recipientID, campaignID, mediaURL string, durationSeconds float64) {
	e.Emit(ctx, models.TouchpointVideoFeedbackSubmitted, recipientID, campaignID, map[string]interface{}{
		"mediaUrl":        mediaURL,
		"durationSeconds": durationSeconds,
	})
}

// TrackMediaPermissionGranted records the browser granting microphone or camera access.
func (e *Emitter) TrackMediaPermissionGranted(ctx context.Context, recipientID, campaignID, mediaKind string) {
	e.Emit(ctx, models.TouchpointMediaPermissionGranted, recipientID, campaignID, map[string]interface{}{
		"mediaKind": mediaKind,
	})
}

// TrackMediaPermissionDenied records a refused microphone or camera prompt.
func (e *Emitter) TrackMediaPermissionDenied(ctx context.Context, recipientID, campaignID, mediaKind, reason string) {
	e.Emit(ctx, models.TouchpointMediaPermissionDenied, recipientID, campaignID, map[string]interface{}{
		"mediaKind": mediaKind,
		"reason":    reason,
	})
}

// TrackFeedbackUploadFailed records a feedback upload that did not reach storage.
func (e *Emitter) TrackFeedbackUploadFailed(ctx context.Context, recipientID, campaignID, modality, reason string) {
	e.Emit(ctx, models.TouchpointFeedbackUploadFailed, recipientID, campaignID, map[string]interface{}{
		"modality": modality,
		"reason":   reason,
	})
}

// TrackReactionSelected records a one-tap reaction.
func (e *Emitter) TrackReactionSelected(ctx context.Context, recipientID, campaignID, reaction string) {
	e.Emit(ctx, models.TouchpointReactionSelected, recipientID, campaignID, map[string]interface{}{
		"reaction": reaction,
	})
}

// TrackRatingSubmitted records a rating out of maxRating.
func (e *Emitter) TrackRatingSubmitted(ctx context.Context, recipientID, campaignID string, rating, maxRating int) {
	e.Emit(ctx, models.TouchpointRatingSubmitted, recipientID, campaignID, map[string]interface{}{
		"rating":    rating,
		"maxRating": maxRating,
	})
}

// Identity capture after the gift is claimed.

// TrackIdentityPromptShown records the "who are you" prompt being shown.
func (e *Emitter) TrackIdentityPromptShown(ctx context.Context, recipientID, campaignID string) {
	e.Emit(ctx, models.TouchpointIdentityPromptShown, recipientID, campaignID, nil)
}

// TrackLinkedInConnectClicked records the start of the LinkedIn connect flow.
func (e *Emitter) TrackLinkedInConnectClicked(ctx context.Context, recipientID, campaignID string) {
	e.Emit(ctx, models.TouchpointLinkedInConnectClicked, recipientID, campaignID, nil)
}

// TrackLinkedInProfileCaptured records the profile returned by the LinkedIn connect flow.
func (e *Emitter) TrackLinkedInProfileCaptured(ctx context.Context, recipientID, campaignID, profileURL string) {
	e.Emit(ctx, models.TouchpointLinkedInProfileCaptured, recipientID, campaignID, map[string]interface{}{
		"profileUrl": profileURL,
	})
}

// TrackEmailCaptured records an email address typed in by the recipient.
func (e *Emitter) TrackEmailCaptured(ctx context.Context, recipientID, campaignID, email string) {
	e.Emit(ctx, models.TouchpointEmailCaptured, recipientID, campaignID, map[string]interface{}{
		"email": email,
	})
}

// TrackIdentityPromptSkipped records the recipient dismissing the identity prompt.
func (e *Emitter) TrackIdentityPromptSkipped(ctx context.Context, recipientID, campaignID string) {
	e.Emit(ctx, models.TouchpointIdentityPromptSkipped, recipientID, campaignID, nil)
}

// TrackThankYouViewed records the closing thank-you screen.
func (e *Emitter) TrackThankYouViewed(ctx context.Context, recipientID, campaignID string) {
	e.Emit(ctx, models.TouchpointThankYouViewed, recipientID, campaignID, nil)
}

// System fetch outcomes. Latency is in milliseconds.

// TrackCampaignFetchSucceeded records how long the campaign took to load.
func (e *Emitter) TrackCampaignFetchSucceeded(ctx context.Context, recipientID, campaignID string, latencyMs int64) {
	e.Emit(ctx, models.TouchpointCampaignFetchSucceeded, recipientID, campaignID, map[string]interface{}{
		"latencyMs": latencyMs,
	})
}

// TrackCampaignFetchFailed records a failed campaign load.
func (e *Emitter) TrackCampaignFetchFailed(ctx context.Context, recipientID, campaignID, errorMessage string) {
	e.Emit(ctx, models.TouchpointCampaignFetchFailed, recipientID, campaignID, map[string]interface{}{
		"errorMessage": errorMessage,
	})
}

// TrackRecipientFetchSucceeded records how long the recipient took to load.
func (e *Emitter) TrackRecipientFetchSucceeded(ctx context.Context, recipientID, campaignID string, latencyMs int64) {
	e.Emit(ctx, models.TouchpointRecipientFetchSucceeded, recipientID, campaignID, map[string]interface{}{
		"latencyMs": latencyMs,
	})
}

// TrackRecipientFetchFailed records a failed recipient load.
func (e *Emitter) TrackRecipientFetchFailed(ctx context.Context, recipientID, campaignID, errorMessage string) {
	e.Emit(ctx, models.TouchpointRecipientFetchFailed, recipientID, campaignID, map[string]interface{}{
		"errorMessage": errorMessage,
	})
}

// TrackGiftFetchSucceeded records how long the gift catalogue took to load.
func (e *Emitter) TrackGiftFetchSucceeded(ctx context.Context, recipientID, campaignID string, latencyMs int64) {
	e.Emit(ctx, models.TouchpointGiftFetchSucceeded, recipientID, campaignID, map[string]interface{}{
		"latencyMs": latencyMs,
	})
}

// TrackGiftFetchFailed records a failed gift catalogue load.
func (e *Emitter) TrackGiftFetchFailed(ctx context.Context, recipientID, campaignID, errorMessage string) {
	e.Emit(ctx, models.TouchpointGiftFetchFailed, recipientID, campaignID, map[string]interface{}{
		"errorMessage": errorMessage,
	})
}
