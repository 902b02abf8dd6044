package models

import (
	"time"
)

// Gift is a catalog gift picked in the campaign designer
type Gift struct {
	ID        string  `json:"_id" example:"g1"`
	Name      string  `json:"name,omitempty" example:"Coffee Sampler"`
	Price     float64 `json:"price,omitempty" example:"45"`
	CatalogID string  `json:"catalogId,omitempty" example:"cat_123"`
}

// Bundle is a curated gift catalog; it is metadata independent of the gift mode
type Bundle struct {
	ID      string   `json:"_id" example:"bundle_1"`
	Name    string   `json:"name,omitempty" example:"Holiday bundle"`
	GiftIDs []string `json:"giftIds,omitempty"`
}

// Contact is a recipient reference from a contact list
type Contact struct {
	ID    string `json:"_id" example:"c1"`
	Email string `json:"email,omitempty" example:"jane@example.com"`
	Name  string `json:"name,omitempty" example:"Jane Doe"`
}

// RecipientGift pins a gift to one recipient
type RecipientGift struct {
	RecipientID string `json:"recipientId"`
	GiftID      string `json:"giftId"`
}

// DesignerSnapshot is the campaign draft aggregated from the designer panels.
// A flow captures it once (see Clone) and never reads live designer state again.
type DesignerSnapshot struct {
	// Set when the flow should update an existing campaign instead of creating one
	CampaignID string `json:"campaignId,omitempty"`

	CampaignName string `json:"campaignName" example:"Q3 pipeline push"`
	Description  string `json:"description,omitempty"`
	Goal         string `json:"goal" example:"drive-event"`
	Source       string `json:"source,omitempty" example:"campaign-designer"`
	Motion       string `json:"motion,omitempty" example:"event_follow_up"`
	EventID      string `json:"eventId,omitempty"`

	// Budget
	BudgetTotal     float64 `json:"budgetTotal"`
	GiftCost        float64 `json:"giftCost,omitempty"`
	PerRecipientMax float64 `json:"perRecipientMax,omitempty"`

	// Recipients
	RecipientCount          int       `json:"recipientCount,omitempty"`
	SelectedContactsCount   int       `json:"selectedContactsCount,omitempty"`
	FilteredRecipientsCount int       `json:"filteredRecipientsCount,omitempty"`
	SelectedContacts        []Contact `json:"selectedContacts,omitempty"`
	FilteredRecipients      []Contact `json:"filteredRecipients,omitempty"`
	OriginalRecipients      []Contact `json:"originalRecipients,omitempty"`
	ContactListID           string    `json:"contactListId,omitempty"`
	BoothCapacity           int       `json:"boothCapacity,omitempty"`

	// Gift selection
	SelectedGiftMode       string          `json:"selectedGiftMode,omitempty" example:"manual_gift"`
	HyperPersonalization   bool            `json:"hyperPersonalization,omitempty"`
	SelectedGift           *Gift           `json:"selectedGift,omitempty"`
	SelectedGifts          []Gift          `json:"selectedGifts,omitempty"`
	SelectedRecipientGifts []RecipientGift `json:"selectedRecipientGifts,omitempty"`
	SelectedBundle         *Bundle         `json:"selectedBundle,omitempty"`

	// Recipient-facing configuration
	LandingPageConfig JSON `json:"landingPageConfig,omitempty" swaggertype:"object"`
	OutcomeCard       JSON `json:"outcomeCard,omitempty" swaggertype:"object"`
	EmailTemplates    JSON `json:"emailTemplates,omitempty" swaggertype:"object"`

	// Dates
	StartByDate    *time.Time `json:"startByDate,omitempty"`
	DeliveryByDate *time.Time `json:"deliveryByDate,omitempty"`

	CTALink string `json:"ctaLink,omitempty"`
}

// Clone returns a copy that shares no slices, maps or pointers with s
func (s DesignerSnapshot) Clone() DesignerSnapshot {
	out := s

	out.SelectedContacts = append([]Contact(nil), s.SelectedContacts...)
	out.FilteredRecipients = append([]Contact(nil), s.FilteredRecipients...)
	out.OriginalRecipients = append([]Contact(nil), s.OriginalRecipients...)
	out.SelectedGifts = append([]Gift(nil), s.SelectedGifts...)
	out.SelectedRecipientGifts = append([]RecipientGift(nil), s.SelectedRecipientGifts...)

	if s.SelectedGift != nil {
		gift := *s.SelectedGift
		out.SelectedGift = &gift
	}
	if s.SelectedBundle != nil {
		bundle := *s.SelectedBundle
		bundle.GiftIDs = append([]string(nil), s.SelectedBundle.GiftIDs...)
		out.SelectedBundle = &bundle
	}

	out.LandingPageConfig = s.LandingPageConfig.Clone()
	out.OutcomeCard = s.OutcomeCard.Clone()
	out.EmailTemplates = s.EmailTemplates.Clone()

	if s.StartByDate != nil {
		t := *s.StartByDate
		out.StartByDate = &t
	}
	if s.DeliveryByDate != nil {
		t := *s.DeliveryByDate
		out.DeliveryByDate = &t
	}

	return out
}

// ContactIDs resolves recipient ids from the first non-empty list in priority
// order: selected contacts, filtered recipients, original recipients.
// Entries without an id are dropped.
func (s DesignerSnapshot) ContactIDs() []string {
	source := s.SelectedContacts
	if len(source) == 0 {
		source = s.FilteredRecipients
	}
	if len(source) == 0 {
		source = s.OriginalRecipients
	}

	ids := make([]string, 0, len(source))
	for _, contact := range source {
		if contact.ID != "" {
			ids = append(ids, contact.ID)
		}
	}
	return ids
}

// ResolveRecipientCount returns the first non-zero count in priority order.
// Zero is treated as unset, so a later field may win over an explicit 0.
func (s DesignerSnapshot) ResolveRecipientCount() int {
	candidates := []int{
		s.RecipientCount,
		s.SelectedContactsCount,
		s.FilteredRecipientsCount,
		len(s.ContactIDs()),
	}
	for _, count := range candidates {
		if count > 0 {
			return count
		}
	}
	return 0
}
