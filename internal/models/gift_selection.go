package models

// GiftMode is how gifts are assigned to a campaign's recipients
type GiftMode string

const (
	// GiftModeManual sends one gift to every recipient
	GiftModeManual GiftMode = "manual_gift"
	// GiftModeMulti lets recipients choose among a fixed set
	GiftModeMulti GiftMode = "multi_gift"
	// GiftModeHyperPersonalize lets the backend pick per recipient within a budget
	GiftModeHyperPersonalize GiftMode = "hyper_personalize"
)

// GiftSelection is the synchronized gift state of the designer.
// At most one of Gift and Gifts is non-empty; Bundle is independent of the mode.
type GiftSelection struct {
	Mode            GiftMode `json:"mode" example:"manual_gift"`
	Gift            *Gift    `json:"selectedGift,omitempty"`
	Gifts           []Gift   `json:"selectedGifts,omitempty"`
	Bundle          *Bundle  `json:"selectedBundle,omitempty"`
	PerRecipientMax float64  `json:"perRecipientMax,omitempty"`
}

// SetMode switches the selection to mode and clears the data owned by the
// other modes. A gift carried by the previous mode seeds the new one.
func (s *GiftSelection) SetMode(mode GiftMode) {
	switch mode {
	case GiftModeMulti:
		if len(s.Gifts) == 0 && s.Gift != nil {
			s.Gifts = []Gift{*s.Gift}
		}
		s.Gift = nil
	case GiftModeHyperPersonalize:
		s.Gift = nil
		s.Gifts = nil
	default:
		mode = GiftModeManual
		if s.Gift == nil && len(s.Gifts) > 0 {
			gift := s.Gifts[0]
			s.Gift = &gift
		}
		s.Gifts = nil
	}
	s.Mode = mode
}

// SelectGift picks the single gift and switches to manual mode
func (s *GiftSelection) SelectGift(gift Gift) {
	s.Gift = &gift
	s.Gifts = nil
	s.Mode = GiftModeManual
}

// SelectGifts picks the recipient-choice set and switches to multi mode
func (s *GiftSelection) SelectGifts(gifts []Gift) {
	s.Gifts = append([]Gift(nil), gifts...)
	s.Gift = nil
	s.Mode = GiftModeMulti
}

// GiftIDs returns the ids of the gifts owned by the current mode
func (s GiftSelection) GiftIDs() []string {
	var ids []string
	if s.Gift != nil && s.Gift.ID != "" {
		ids = append(ids, s.Gift.ID)
	}
	for _, gift := range s.Gifts {
		if gift.ID != "" {
			ids = append(ids, gift.ID)
		}
	}
	return ids
}

// IsEmpty reports whether no gift or bundle has been selected
func (s GiftSelection) IsEmpty() bool {
	return len(s.GiftIDs()) == 0 && s.Bundle == nil
}
