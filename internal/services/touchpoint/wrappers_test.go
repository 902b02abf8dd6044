package touchpoint

import (
	"context"
	"net/http"
	"testing"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedHelpersEmitTheirOwnType(t *testing.T) {
	ctx := context.Background()
	const r, c = "r_1", "cmp_1"

	tests := []struct {
		want  models.TouchpointType
		track func(e *Emitter)
	}{
		{models.TouchpointLandingPageVisited, func(e *Emitter) { e.TrackLandingPageVisited(ctx, r, c, "https://mail.example.com", "https://gifts.example.com/g/1") }},
		{models.TouchpointGiftLinkOpened, func(e *Emitter) { e.TrackGiftLinkOpened(ctx, r, c, "l_1") }},
		{models.TouchpointQRCodeScanned, func(e *Emitter) { e.TrackQRCodeScanned(ctx, r, c, "booth_1") }},
		{models.TouchpointEmailLinkClicked, func(e *Emitter) { e.TrackEmailLinkClicked(ctx, r, c, "tpl_1", "https://gifts.example.com") }},
		{models.TouchpointVideoMessageViewed, func(e *Emitter) { e.TrackVideoMessageViewed(ctx, r, c, "https://cdn.example.com/v.mp4") }},
		{models.TouchpointVideoMessageCompleted, func(e *Emitter) { e.TrackVideoMessageCompleted(ctx, r, c, "https://cdn.example.com/v.mp4", 42.5) }},
		{models.TouchpointGiftDetailsViewed, func(e *Emitter) { e.TrackGiftDetailsViewed(ctx, r, c, "g_1", "Coffee kit") }},
		{models.TouchpointCampaignMessageViewed, func(e *Emitter) { e.TrackCampaignMessageViewed(ctx, r, c, "msg_1") }},
		{models.TouchpointGiftOptionsViewed, func(e *Emitter) { e.TrackGiftOptionsViewed(ctx, r, c, []string{"g_1", "g_2"}) }},
		{models.TouchpointGiftOptionSelected, func(e *Emitter) { e.TrackGiftOptionSelected(ctx, r, c, "g_2", "Tea set") }},
		{models.TouchpointPrimaryCTAClicked, func(e *Emitter) { e.TrackPrimaryCTAClicked(ctx, r, c, "Claim", "https://gifts.example.com/claim") }},
		{models.TouchpointSecondaryCTAClicked, func(e *Emitter) { e.TrackSecondaryCTAClicked(ctx, r, c, "Learn more", "https://example.com") }},
		{models.TouchpointMeetingLinkClicked, func(e *Emitter) { e.TrackMeetingLinkClicked(ctx, r, c, "https://cal.example.com/rep") }},
		{models.TouchpointEventRegistrationClicked, func(e *Emitter) { e.TrackEventRegistrationClicked(ctx, r, c, "evt_1", "https://events.example.com") }},
		{models.TouchpointSocialShareClicked, func(e *Emitter) { e.TrackSocialShareClicked(ctx, r, c, "linkedin") }},
		{models.TouchpointShippingAddressSubmitted, func(e *Emitter) { e.TrackShippingAddressSubmitted(ctx, r, c, "VN", "700000") }},
		{models.TouchpointFeedbackModalOpened, func(e *Emitter) { e.TrackFeedbackModalOpened(ctx, r, c, "audio") }},
		{models.TouchpointFeedbackModalClosed, func(e *Emitter) { e.TrackFeedbackModalClosed(ctx, r, c, "audio", false) }},
		{models.TouchpointTextFeedbackStarted, func(e *Emitter) { e.TrackTextFeedbackStarted(ctx, r, c) }},
		{models.TouchpointTextFeedbackSubmitted, func(e *Emitter) { e.TrackTextFeedbackSubmitted(ctx, r, c, "Thanks!", 7) }},
		{models.TouchpointAudioRecordingStarted, func(e *Emitter) { e.TrackAudioRecordingStarted(ctx, r, c, "audio/webm") }},
		{models.TouchpointAudioRecordingStopped, func(e *Emitter) { e.TrackAudioRecordingStopped(ctx, r, c, 12.3, "audio/webm") }},
		{models.TouchpointAudioRecordingDiscarded, func(e *Emitter) { e.TrackAudioRecordingDiscarded(ctx, r, c, 3.1) }},
		{models.TouchpointAudioFeedbackSubmitted, func(e *Emitter) { e.TrackAudioFeedbackSubmitted(ctx, r, c, "https://cdn.example.com/a.webm", 12.3) }},
		{models.TouchpointVideoRecordingStarted, func(e *Emitter) { e.TrackVideoRecordingStarted(ctx, r, c, "video/webm") }},
		{models.TouchpointVideoRecordingStopped, func(e *Emitter) { e.TrackVideoRecordingStopped(ctx, r, c, 20, "video/webm") }},
		{models.TouchpointVideoRecordingDiscarded, func(e *Emitter) { e.TrackVideoRecordingDiscarded(ctx, r, c, 4) }},
		{models.TouchpointVideoFeedbackSubmitted, func(e *Emitter) { e.TrackVideoFeedbackSubmitted(ctx, r, c, "https://cdn.example.com/v.webm", 20) }},
		{models.TouchpointMediaPermissionGranted, func(e *Emitter) { e.TrackMediaPermissionGranted(ctx, r, c, "camera") }},
		{models.TouchpointMediaPermissionDenied, func(e *Emitter) { e.TrackMediaPermissionDenied(ctx, r, c, "microphone", "NotAllowedError") }},
		{models.TouchpointFeedbackUploadFailed, func(e *Emitter) { e.TrackFeedbackUploadFailed(ctx, r, c, "video", "timeout") }},
		{models.TouchpointReactionSelected, func(e *Emitter) { e.TrackReactionSelected(ctx, r, c, "heart") }},
		{models.TouchpointRatingSubmitted, func(e *Emitter) { e.TrackRatingSubmitted(ctx, r, c, 4, 5) }},
		{models.TouchpointIdentityPromptShown, func(e *Emitter) { e.TrackIdentityPromptShown(ctx, r, c) }},
		{models.TouchpointLinkedInConnectClicked, func(e *Emitter) { e.TrackLinkedInConnectClicked(ctx, r, c) }},
		{models.TouchpointLinkedInProfileCaptured, func(e *Emitter) { e.TrackLinkedInProfileCaptured(ctx, r, c, "https://linkedin.com/in/someone") }},
		{models.TouchpointEmailCaptured, func(e *Emitter) { e.TrackEmailCaptured(ctx, r, c, "someone@example.com") }},
		{models.TouchpointIdentityPromptSkipped, func(e *Emitter) { e.TrackIdentityPromptSkipped(ctx, r, c) }},
		{models.TouchpointThankYouViewed, func(e *Emitter) { e.TrackThankYouViewed(ctx, r, c) }},
		{models.TouchpointCampaignFetchSucceeded, func(e *Emitter) { e.TrackCampaignFetchSucceeded(ctx, r, c, 120) }},
		{models.TouchpointCampaignFetchFailed, func(e *Emitter) { e.TrackCampaignFetchFailed(ctx, r, c, "502 Bad Gateway") }},
		{models.TouchpointRecipientFetchSucceeded, func(e *Emitter) { e.TrackRecipientFetchSucceeded(ctx, r, c, 80) }},
		{models.TouchpointRecipientFetchFailed, func(e *Emitter) { e.TrackRecipientFetchFailed(ctx, r, c, "not found") }},
		{models.TouchpointGiftFetchSucceeded, func(e *Emitter) { e.TrackGiftFetchSucceeded(ctx, r, c, 95) }},
		{models.TouchpointGiftFetchFailed, func(e *Emitter) { e.TrackGiftFetchFailed(ctx, r, c, "timeout") }},
	}

	require.Len(t, tests, 45)
	seen := make(map[models.TouchpointType]bool, len(tests))
	for _, tt := range tests {
		assert.False(t, seen[tt.want], "%s covered twice", tt.want)
		seen[tt.want] = true
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			rec := newTimelineRecorder(t, http.StatusCreated)
			tracker := rec.tracker()

			tt.track(tracker.For(staticContext(desktopUA, "gifts.example.com")))
			tracker.Wait()

			events := rec.received()
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].TouchpointType)
			assert.Equal(t, r, events[0].RecipientID)
			assert.Equal(t, c, events[0].CampaignID)
		})
	}
}
