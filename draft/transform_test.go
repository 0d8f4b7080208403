package draft

import (
	"errors"
	"testing"

	"virasat/models"
)

func boolPtr(b bool) *bool { return &b }

func sampleDetail() *models.SiteDetail {
	return &models.SiteDetail{
		Site: &models.HeritageSite{
			SiteID:     "s_modhera01",
			Name:       "Sun Temple, Modhera",
			ShortDesc:  "Chaulukya-era sun temple",
			Address:    "Modhera, Mehsana district",
			City:       "Mehsana",
			State:      "Gujarat",
			Country:    "India",
			Latitude:   23.5837,
			Longitude:  72.1322,
			EntryType:  models.EntryTypePaid,
			Status:     models.SiteStatusDraft,
			Etiquettes: []string{"Do not touch the carvings"},
			OverviewTranslations: map[string]string{
				"EN": "Built in 1026 CE.",
				"gu": "ઈ.સ. ૧૦૨૬માં બંધાયું.",
			},
			HistoryTranslations: map[string]string{
				"en": "Commissioned under Bhima I.",
			},
		},
		VisitingHours: []models.VisitingHour{
			{DayOfWeek: 1, IsClosed: boolPtr(false), OpenTime: "06:00:00", CloseTime: "18:00:00"},
			{Day: "Saturday", IsOpen: boolPtr(true), OpeningTime: "06:00", ClosingTime: "20:00"},
		},
		Media: []models.SiteMedia{
			{MediaID: "m1", MediaType: "image", URL: "/p/m1.jpg", Caption: "East face"},
			{MediaID: "m2", MediaType: "video", URL: "/p/m2.mp4", IsPrimary: true},
			{MediaID: "m3", MediaType: "audio", Language: "EN", URL: "/a/en.mp3", Duration: 300},
			{MediaID: "m4", MediaType: "audio", Language: "hi", URL: "/a/hi.mp3", Duration: 280},
		},
		TicketTypes: []models.TicketType{
			{VisitorType: "Adult", Amount: 50},
			{VisitorType: "Child", Amount: 0, Notes: "under 12"},
		},
		Transportation: []models.Transportation{
			{Category: "transport", Mode: "bus", Name: "GSRTC from Mehsana"},
			{Category: "attraction", Name: "Modhera lake"},
		},
	}
}

func TestHydrateNoCoreRecord(t *testing.T) {
	if _, err := Hydrate(nil); !errors.Is(err, ErrNoSiteRecord) {
		t.Errorf("nil detail: expected ErrNoSiteRecord, got %v", err)
	}
	if _, err := Hydrate(&models.SiteDetail{}); !errors.Is(err, ErrNoSiteRecord) {
		t.Errorf("missing core record: expected ErrNoSiteRecord, got %v", err)
	}
}

func TestHydratePartialAggregateUsesDefaults(t *testing.T) {
	d, err := Hydrate(&models.SiteDetail{Site: &models.HeritageSite{SiteID: "s1", Name: "X"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Schedule) != 7 {
		t.Errorf("schedule must hydrate to 7 days, got %d", len(d.Schedule))
	}
	if len(d.AudioGuides) != len(SupportedLanguages) {
		t.Errorf("expected %d audio guide slots", len(SupportedLanguages))
	}
	for _, lang := range SupportedLanguages {
		if _, ok := d.Overview[lang]; !ok {
			t.Errorf("overview scaffold missing %s", lang)
		}
	}
}

func TestHydrateMediaPartition(t *testing.T) {
	d, err := Hydrate(sampleDetail())
	if err != nil {
		t.Fatal(err)
	}

	if len(d.Media) != 2 {
		t.Fatalf("expected 2 gallery items, got %+v", d.Media)
	}
	if !d.Media[1].IsPrimary || d.Media[0].IsPrimary {
		t.Error("persisted primary flag must be preserved")
	}

	var hiGuide, esGuide AudioGuide
	for _, guide := range d.AudioGuides {
		switch guide.Language {
		case "hi":
			hiGuide = guide
		case "es":
			esGuide = guide
		}
	}
	if hiGuide.URL != "/a/hi.mp3" || hiGuide.DurationSeconds != 280 {
		t.Errorf("hi audio row not matched case-insensitively: %+v", hiGuide)
	}
	if esGuide.URL != "" {
		t.Errorf("es has no stored guide; slot must stay empty: %+v", esGuide)
	}
}

func TestHydrateNoPrimaryForcesFirst(t *testing.T) {
	detail := sampleDetail()
	for i := range detail.Media {
		detail.Media[i].IsPrimary = false
	}
	d, err := Hydrate(detail)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Media[0].IsPrimary {
		t.Error("first gallery item must be forced primary when none is flagged")
	}
}

func TestHydrateDropsStaleFeesUnderFreeEntry(t *testing.T) {
	detail := sampleDetail()
	detail.Site.EntryType = models.EntryTypeFree
	d, err := Hydrate(detail)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Ticketing.Fees) != 0 {
		t.Errorf("stale paid fees must not hydrate under free entry: %+v", d.Ticketing.Fees)
	}
}

func TestSerializeMediaOrderingAndPrimary(t *testing.T) {
	d := NewDraft()
	d.Name = "X"
	d.Address = "Y"
	d.Media = []MediaItem{
		{ID: "g1", SourceFile: "front.jpg", PreviewURL: "/p/g1.jpg"},
		{ID: "g2", SourceFile: "walkthrough.mp4"},
	}
	d.UpdateAudioGuide("en", AudioGuidePatch{URL: strPtr("/a/en.mp3")})
	d.UpdateAudioGuide("gu", AudioGuidePatch{SourceFile: strPtr("gu.mp3")}) // no URL, dropped

	payload := Serialize(d)

	if len(payload.Media) != 3 {
		t.Fatalf("expected 2 gallery + 1 audio, got %+v", payload.Media)
	}
	for i, m := range payload.Media {
		if m.Position != i+1 {
			t.Errorf("position must be continuous, got %d at index %d", m.Position, i)
		}
	}
	if payload.Media[0].MediaType != "image" || payload.Media[1].MediaType != "video" {
		t.Errorf("MIME sniffing failed: %s/%s", payload.Media[0].MediaType, payload.Media[1].MediaType)
	}
	if payload.Media[2].MediaType != "audio" || payload.Media[2].Language != "en" {
		t.Errorf("audio row malformed: %+v", payload.Media[2])
	}
	if !payload.Media[0].IsPrimary {
		t.Error("no item was primary; serializer must force the first")
	}
}

func TestSerializeFeesOnlyWhenPaid(t *testing.T) {
	d := NewDraft()
	d.SetEntryType(models.EntryTypePaid)
	d.AddFee(FeeBreakup{VisitorType: "Adult", Amount: "50.5"})
	d.AddFee(FeeBreakup{VisitorType: "  ", Amount: "10"})
	d.AddFee(FeeBreakup{VisitorType: "Child", Amount: "not-a-number"})

	payload := Serialize(d)
	if len(payload.TicketTypes) != 2 {
		t.Fatalf("blank visitor types must be filtered: %+v", payload.TicketTypes)
	}
	if payload.TicketTypes[0].Amount != 50.5 {
		t.Errorf("amount parse failed: %+v", payload.TicketTypes[0])
	}
	if payload.TicketTypes[1].Amount != 0 {
		t.Errorf("unparseable amount must coerce to 0: %+v", payload.TicketTypes[1])
	}

	d.SetEntryType(models.EntryTypeFree)
	if got := Serialize(d).TicketTypes; len(got) != 0 {
		t.Errorf("free entry must serialize no ticket types: %+v", got)
	}

	d.SetEntryType(models.EntryTypePaid)
	if got := Serialize(d).TicketTypes; len(got) != 0 {
		t.Errorf("fees must stay gone after the free round trip: %+v", got)
	}
}

func TestSerializeStatusFlags(t *testing.T) {
	d := NewDraft()
	d.Admin.SaveOption = SaveOptionDraft
	site := Serialize(d).Site
	if site.Status != models.SiteStatusDraft || site.IsActive {
		t.Errorf("draft save: got status=%s active=%v", site.Status, site.IsActive)
	}

	d.Admin.SaveOption = SaveOptionApproval
	site = Serialize(d).Site
	if site.Status != models.SiteStatusPendingReview || !site.IsActive {
		t.Errorf("approval save: got status=%s active=%v", site.Status, site.IsActive)
	}
}

func TestSerializeCoordinateStrings(t *testing.T) {
	d := NewDraft()
	d.Latitude = "23.5837"
	d.Longitude = "junk"
	site := Serialize(d).Site
	if site.Latitude != 23.5837 {
		t.Errorf("latitude parse failed: %v", site.Latitude)
	}
	if site.Longitude != 0 {
		t.Errorf("bad longitude must coerce to 0: %v", site.Longitude)
	}
}

// Round trip: hydrate → serialize → hydrate preserves openness/times, primary
// selection, and non-empty translation text.
func TestRoundTripPreservesCoreEdits(t *testing.T) {
	first, err := Hydrate(sampleDetail())
	if err != nil {
		t.Fatal(err)
	}

	payload := Serialize(first)
	site := payload.Site
	second, err := Hydrate(&models.SiteDetail{
		Site:           &site,
		VisitingHours:  payload.VisitingHours,
		Media:          payload.Media,
		TicketTypes:    payload.TicketTypes,
		Transportation: payload.Transportation,
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := range first.Schedule {
		if first.Schedule[i] != second.Schedule[i] {
			t.Errorf("schedule drifted on %s: %+v vs %+v",
				first.Schedule[i].Day, first.Schedule[i], second.Schedule[i])
		}
	}

	if len(second.Media) != len(first.Media) {
		t.Fatalf("gallery length drifted: %d vs %d", len(first.Media), len(second.Media))
	}
	for i := range first.Media {
		if first.Media[i].IsPrimary != second.Media[i].IsPrimary {
			t.Errorf("primary selection drifted at %d", i)
		}
	}

	for _, lang := range SupportedLanguages {
		if first.Overview[lang] != "" && first.Overview[lang] != second.Overview[lang] {
			t.Errorf("overview[%s] lost: %q vs %q", lang, first.Overview[lang], second.Overview[lang])
		}
		if first.History[lang] != "" && first.History[lang] != second.History[lang] {
			t.Errorf("history[%s] lost: %q vs %q", lang, first.History[lang], second.History[lang])
		}
	}

	if len(second.Transport) != 1 || len(second.Attractions) != 1 {
		t.Errorf("transportation split drifted: %+v / %+v", second.Transport, second.Attractions)
	}
}
