package campaign

import (
	"strings"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
)

var giftModeSynonyms = map[string]models.GiftMode{
	"manual_gift":           models.GiftModeManual,
	"manual":                models.GiftModeManual,
	"single":                models.GiftModeManual,
	"single_gift":           models.GiftModeManual,
	"one_gift":              models.GiftModeManual,
	"multi_gift":            models.GiftModeMulti,
	"multi":                 models.GiftModeMulti,
	"multiple":              models.GiftModeMulti,
	"multiple_gift":         models.GiftModeMulti,
	"recipients_choice":     models.GiftModeMulti,
	"recipient_choice":      models.GiftModeMulti,
	"hyper_personalize":     models.GiftModeHyperPersonalize,
	"hyper_personalization": models.GiftModeHyperPersonalize,
	"hyper_personalized":    models.GiftModeHyperPersonalize,
	"smart_match":           models.GiftModeHyperPersonalize,
	"ai_personalized":       models.GiftModeHyperPersonalize,
}

// ParseGiftMode recognizes a gift mode name or one of its synonyms.
// Dashes, spaces and case are ignored.
func ParseGiftMode(value string) (models.GiftMode, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	mode, ok := giftModeSynonyms[normalized]
	return mode, ok
}

// ResolveGiftMode determines the gift mode of a snapshot. Precedence:
// explicit mode field, hyper-personalization flag, inference from the selection
// arrays, then manual.
func ResolveGiftMode(snapshot models.DesignerSnapshot) models.GiftMode {
	if mode, ok := ParseGiftMode(snapshot.SelectedGiftMode); ok {
		return mode
	}
	if snapshot.HyperPersonalization {
		return models.GiftModeHyperPersonalize
	}
	if len(snapshot.SelectedGifts) > 0 && snapshot.SelectedGift == nil {
		return models.GiftModeMulti
	}
	// A single gift or bundle infers manual, which is also the default
	return models.GiftModeManual
}

// SyncGiftSelection builds the synchronized selection from a snapshot, applying
// the resolved mode so only that mode's data survives
func SyncGiftSelection(snapshot models.DesignerSnapshot) models.GiftSelection {
	selection := models.GiftSelection{
		Gifts:           append([]models.Gift(nil), snapshot.SelectedGifts...),
		PerRecipientMax: snapshot.PerRecipientMax,
	}
	if snapshot.SelectedGift != nil {
		gift := *snapshot.SelectedGift
		selection.Gift = &gift
	}
	if snapshot.SelectedBundle != nil {
		bundle := *snapshot.SelectedBundle
		selection.Bundle = &bundle
	}
	selection.SetMode(ResolveGiftMode(snapshot))
	return selection
}

// giftAssignment is the catalog payload sent to a gift mode endpoint
type giftAssignment struct {
	CatalogID    string   `json:"catalogId"`
	SelectedGift []string `json:"selectedGift"`
}

// resolveGiftAssignment picks the gift ids and catalog for mode. The synced
// selection wins; when it is empty the raw snapshot fields are used so a
// selection made without the sync pass still launches.
func resolveGiftAssignment(mode models.GiftMode, selection models.GiftSelection, snapshot models.DesignerSnapshot) giftAssignment {
	ids := selection.GiftIDs()
	bundle := selection.Bundle
	if bundle == nil {
		bundle = snapshot.SelectedBundle
	}

	if len(ids) == 0 {
		ids = snapshotGiftIDs(mode, snapshot)
	}

	assignment := giftAssignment{SelectedGift: ids}
	if assignment.SelectedGift == nil {
		assignment.SelectedGift = []string{}
	}

	switch {
	case bundle != nil && bundle.ID != "":
		assignment.CatalogID = bundle.ID
	case selection.Gift != nil && selection.Gift.CatalogID != "":
		assignment.CatalogID = selection.Gift.CatalogID
	case snapshot.SelectedGift != nil && snapshot.SelectedGift.CatalogID != "":
		assignment.CatalogID = snapshot.SelectedGift.CatalogID
	default:
		assignment.CatalogID = firstCatalogID(selection.Gifts)
		if assignment.CatalogID == "" {
			assignment.CatalogID = firstCatalogID(snapshot.SelectedGifts)
		}
	}

	return assignment
}

func snapshotGiftIDs(mode models.GiftMode, snapshot models.DesignerSnapshot) []string {
	var ids []string
	seen := map[string]bool{}
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	switch mode {
	case models.GiftModeMulti:
		for _, gift := range snapshot.SelectedGifts {
			add(gift.ID)
		}
		for _, pinned := range snapshot.SelectedRecipientGifts {
			add(pinned.GiftID)
		}
	case models.GiftModeManual:
		if snapshot.SelectedGift != nil {
			add(snapshot.SelectedGift.ID)
		}
		if len(ids) == 0 && len(snapshot.SelectedGifts) > 0 {
			add(snapshot.SelectedGifts[0].ID)
		}
	case models.GiftModeHyperPersonalize:
		// The backend picks gifts; a bundle scopes the catalog
		if snapshot.SelectedBundle != nil {
			for _, id := range snapshot.SelectedBundle.GiftIDs {
				add(id)
			}
		}
	}
	return ids
}

func firstCatalogID(gifts []models.Gift) string {
	for _, gift := range gifts {
		if gift.CatalogID != "" {
			return gift.CatalogID
		}
	}
	return ""
}
