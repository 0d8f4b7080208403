package draft

import (
	"testing"

	"virasat/models"
)

func countPrimary(media []MediaItem) int {
	n := 0
	for _, m := range media {
		if m.IsPrimary {
			n++
		}
	}
	return n
}

func TestFirstMediaBecomesPrimary(t *testing.T) {
	d := NewDraft()
	d.AddMedia(MediaItem{ID: "a"})
	if !d.Media[0].IsPrimary {
		t.Fatal("first item added to an empty gallery must be primary")
	}

	d.AddMedia(MediaItem{ID: "b"})
	if d.Media[1].IsPrimary {
		t.Error("second item must not steal primary")
	}
	if countPrimary(d.Media) != 1 {
		t.Errorf("expected exactly 1 primary, got %d", countPrimary(d.Media))
	}
}

func TestRemovePrimaryPromotesFirst(t *testing.T) {
	d := NewDraft()
	d.Media = []MediaItem{{ID: "a"}, {ID: "b", IsPrimary: true}}

	d.RemoveMedia(1)

	if len(d.Media) != 1 || d.Media[0].ID != "a" {
		t.Fatalf("unexpected media after remove: %+v", d.Media)
	}
	if !d.Media[0].IsPrimary {
		t.Error("remaining first item must become primary")
	}
}

func TestSetPrimaryMediaExclusive(t *testing.T) {
	d := NewDraft()
	d.AddMedia(MediaItem{ID: "a"})
	d.AddMedia(MediaItem{ID: "b"})
	d.AddMedia(MediaItem{ID: "c"})

	d.SetPrimaryMedia("c")

	if !d.Media[2].IsPrimary {
		t.Error("c should be primary")
	}
	if countPrimary(d.Media) != 1 {
		t.Errorf("expected exactly 1 primary, got %d", countPrimary(d.Media))
	}
}

func TestSetPrimaryMediaUnknownIDIsNoop(t *testing.T) {
	d := NewDraft()
	d.AddMedia(MediaItem{ID: "a"})
	d.AddMedia(MediaItem{ID: "b"})

	d.SetPrimaryMedia("nonexistent")

	if countPrimary(d.Media) != 1 {
		t.Fatalf("non-empty gallery must keep exactly one primary, got %d", countPrimary(d.Media))
	}
	if !d.Media[0].IsPrimary {
		t.Error("existing primary must survive a miss")
	}
}

func TestMediaInvariantUnderEditSequences(t *testing.T) {
	d := NewDraft()
	d.AddMedia(MediaItem{ID: "a"})
	d.AddMedia(MediaItem{ID: "b"})
	d.SetPrimaryMedia("b")
	d.RemoveMedia(0)
	d.AddMedia(MediaItem{ID: "c"})
	d.RemoveMedia(0)
	d.RemoveMedia(0)

	if len(d.Media) != 0 {
		t.Fatalf("expected empty gallery, got %+v", d.Media)
	}

	d.AddMedia(MediaItem{ID: "d"})
	if countPrimary(d.Media) != 1 {
		t.Errorf("expected exactly 1 primary after refill, got %d", countPrimary(d.Media))
	}
}

func TestUpdateMediaPartial(t *testing.T) {
	d := NewDraft()
	d.AddMedia(MediaItem{ID: "a", Label: "old", PreviewURL: "/p/a.jpg"})

	label := "new"
	d.UpdateMedia(0, MediaPatch{Label: &label})

	if d.Media[0].Label != "new" {
		t.Errorf("label not merged: %+v", d.Media[0])
	}
	if d.Media[0].PreviewURL != "/p/a.jpg" {
		t.Error("unpatched field must survive the merge")
	}
	if !d.Media[0].IsPrimary {
		t.Error("update must not disturb the primary flag")
	}
}

func TestUpdateAudioGuideByLanguage(t *testing.T) {
	d := NewDraft()
	url := "https://cdn.example.com/guide-hi.mp3"
	dur := 240
	d.UpdateAudioGuide("hi", AudioGuidePatch{URL: &url, DurationSeconds: &dur})

	for _, guide := range d.AudioGuides {
		if guide.Language == "hi" {
			if guide.URL != url || guide.DurationSeconds != 240 {
				t.Errorf("hi guide not updated: %+v", guide)
			}
		} else if guide.URL != "" {
			t.Errorf("other language touched: %+v", guide)
		}
	}
}

func TestEntryTypeFreeDiscardsFees(t *testing.T) {
	d := NewDraft()
	d.SetEntryType(models.EntryTypePaid)
	d.AddFee(FeeBreakup{VisitorType: "Adult", Amount: "50"})
	d.AddFee(FeeBreakup{VisitorType: "Child", Amount: "20"})

	d.SetEntryType(models.EntryTypeFree)
	if len(d.Ticketing.Fees) != 0 {
		t.Fatal("switching to free must discard fee rows")
	}

	// fees do not come back on a paid round trip
	d.SetEntryType(models.EntryTypePaid)
	if len(d.Ticketing.Fees) != 0 {
		t.Fatal("fees must not be restored from memory after a free round trip")
	}
}

func TestUpdateFeePartial(t *testing.T) {
	d := NewDraft()
	d.SetEntryType(models.EntryTypePaid)
	d.AddFee(FeeBreakup{VisitorType: "Foreign adult", Amount: "50", Notes: "card only"})

	d.UpdateFee(0, FeePatch{Amount: strPtr("60")})

	f := d.Ticketing.Fees[0]
	if f.Amount != "60" {
		t.Errorf("amount not updated: %+v", f)
	}
	if f.VisitorType != "Foreign adult" || f.Notes != "card only" {
		t.Errorf("unpatched fee fields must survive: %+v", f)
	}
}

func TestUpdateAttractionPartial(t *testing.T) {
	d := NewDraft()
	d.AddAttraction(Attraction{Name: "Stepwell", DistanceKm: "0.4", Notes: "east gate"})

	d.UpdateAttraction(0, AttractionPatch{DistanceKm: strPtr("0.5")})

	a := d.Attractions[0]
	if a.DistanceKm != "0.5" {
		t.Errorf("distance not updated: %+v", a)
	}
	if a.Name != "Stepwell" || a.Notes != "east gate" {
		t.Errorf("unpatched attraction fields must survive: %+v", a)
	}
}

func TestTransportInsertionOrderPreserved(t *testing.T) {
	d := NewDraft()
	d.AddTransport(TransportOption{Mode: "bus", Name: "City Bus 12"})
	d.AddTransport(TransportOption{Mode: "train", Name: "Metro Blue Line"})
	d.AddTransport(TransportOption{Mode: "auto", Name: "Auto stand"})

	d.UpdateTransport(1, TransportPatch{Name: strPtr("Metro Green Line")})
	d.RemoveTransport(0)

	if d.Transport[0].Name != "Metro Green Line" || d.Transport[1].Name != "Auto stand" {
		t.Errorf("order not preserved: %+v", d.Transport)
	}
	if d.Transport[0].Mode != "train" {
		t.Errorf("unpatched transport fields must survive: %+v", d.Transport[0])
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	d := NewDraft()
	d.AddEtiquette("Remove footwear before entering")
	d.RemoveEtiquette(5)
	d.RemoveEtiquette(-1)
	if len(d.Etiquette) != 1 {
		t.Errorf("out-of-range remove must not change the list: %+v", d.Etiquette)
	}
}
