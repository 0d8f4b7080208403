package draft

import (
	"virasat/models"
)

// The collection editors are pure transitions: each returns a fresh slice so
// edits never alias previously captured state. The draft methods assign the
// result back, which keeps every rule unit-testable without a form runtime.

func appendItem[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

func updateAt[T any](list []T, index int, merge func(T) T) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]T, len(list))
	copy(out, list)
	out[index] = merge(out[index])
	return out
}

func removeAt[T any](list []T, index int) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// --- Media (single-primary invariant) ---

// MediaPatch carries partial media edits; nil fields are left untouched.
type MediaPatch struct {
	SourceFile *string
	PreviewURL *string
	Label      *string
}

// AddMedia appends a gallery item. The first item added to an empty gallery
// becomes primary.
func (d *SiteDraft) AddMedia(item MediaItem) {
	if len(d.Media) == 0 {
		item.IsPrimary = true
	}
	d.Media = appendItem(d.Media, item)
}

func (d *SiteDraft) UpdateMedia(index int, patch MediaPatch) {
	d.Media = updateAt(d.Media, index, func(m MediaItem) MediaItem {
		if patch.SourceFile != nil {
			m.SourceFile = *patch.SourceFile
		}
		if patch.PreviewURL != nil {
			m.PreviewURL = *patch.PreviewURL
		}
		if patch.Label != nil {
			m.Label = *patch.Label
		}
		return m
	})
}

// RemoveMedia drops the item and re-establishes the single-primary invariant:
// when the primary goes away, the new first item takes over.
func (d *SiteDraft) RemoveMedia(index int) {
	if index < 0 || index >= len(d.Media) {
		return
	}
	wasPrimary := d.Media[index].IsPrimary
	d.Media = removeAt(d.Media, index)
	if wasPrimary && len(d.Media) > 0 {
		d.Media = updateAt(d.Media, 0, func(m MediaItem) MediaItem {
			m.IsPrimary = true
			return m
		})
	}
}

// SetPrimaryMedia marks exactly one item primary, clearing all others. An id
// that matches no item leaves the gallery untouched, so a non-empty gallery
// never ends up with zero primaries.
func (d *SiteDraft) SetPrimaryMedia(id string) {
	found := false
	for i := range d.Media {
		if d.Media[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return
	}
	out := make([]MediaItem, len(d.Media))
	copy(out, d.Media)
	for i := range out {
		out[i].IsPrimary = out[i].ID == id
	}
	d.Media = out
}

// --- Audio guides (fixed one-per-language slots) ---

type AudioGuidePatch struct {
	URL             *string
	DurationSeconds *int
	FileName        *string
	SourceFile      *string
}

func (d *SiteDraft) UpdateAudioGuide(language string, patch AudioGuidePatch) {
	for i, guide := range d.AudioGuides {
		if guide.Language != language {
			continue
		}
		d.AudioGuides = updateAt(d.AudioGuides, i, func(g AudioGuide) AudioGuide {
			if patch.URL != nil {
				g.URL = *patch.URL
			}
			if patch.DurationSeconds != nil {
				g.DurationSeconds = *patch.DurationSeconds
			}
			if patch.FileName != nil {
				g.FileName = *patch.FileName
			}
			if patch.SourceFile != nil {
				g.SourceFile = *patch.SourceFile
			}
			return g
		})
		return
	}
}

// --- Fees ---

// FeePatch carries partial fee edits; nil fields are left untouched.
type FeePatch struct {
	VisitorType *string
	Amount      *string
	Notes       *string
}

func (d *SiteDraft) AddFee(fee FeeBreakup) {
	d.Ticketing.Fees = appendItem(d.Ticketing.Fees, fee)
}

func (d *SiteDraft) UpdateFee(index int, patch FeePatch) {
	d.Ticketing.Fees = updateAt(d.Ticketing.Fees, index, func(f FeeBreakup) FeeBreakup {
		if patch.VisitorType != nil {
			f.VisitorType = *patch.VisitorType
		}
		if patch.Amount != nil {
			f.Amount = *patch.Amount
		}
		if patch.Notes != nil {
			f.Notes = *patch.Notes
		}
		return f
	})
}

func (d *SiteDraft) RemoveFee(index int) {
	d.Ticketing.Fees = removeAt(d.Ticketing.Fees, index)
}

// SetEntryType switches free/paid. Going free discards the fee rows instead
// of hiding them, so a later switch back to paid starts from an empty list.
func (d *SiteDraft) SetEntryType(entryType string) {
	d.Ticketing.EntryType = entryType
	if entryType == models.EntryTypeFree {
		d.Ticketing.Fees = []FeeBreakup{}
	}
}

// --- Transport and attractions (insertion order preserved) ---

// TransportPatch carries partial transport edits; nil fields are left untouched.
type TransportPatch struct {
	Mode       *string
	Name       *string
	DistanceKm *string
	Notes      *string
}

// AttractionPatch carries partial attraction edits; nil fields are left untouched.
type AttractionPatch struct {
	Name       *string
	DistanceKm *string
	Notes      *string
}

func (d *SiteDraft) AddTransport(opt TransportOption) {
	d.Transport = appendItem(d.Transport, opt)
}

func (d *SiteDraft) UpdateTransport(index int, patch TransportPatch) {
	d.Transport = updateAt(d.Transport, index, func(t TransportOption) TransportOption {
		if patch.Mode != nil {
			t.Mode = *patch.Mode
		}
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.DistanceKm != nil {
			t.DistanceKm = *patch.DistanceKm
		}
		if patch.Notes != nil {
			t.Notes = *patch.Notes
		}
		return t
	})
}

func (d *SiteDraft) RemoveTransport(index int) {
	d.Transport = removeAt(d.Transport, index)
}

func (d *SiteDraft) AddAttraction(a Attraction) {
	d.Attractions = appendItem(d.Attractions, a)
}

func (d *SiteDraft) UpdateAttraction(index int, patch AttractionPatch) {
	d.Attractions = updateAt(d.Attractions, index, func(a Attraction) Attraction {
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.DistanceKm != nil {
			a.DistanceKm = *patch.DistanceKm
		}
		if patch.Notes != nil {
			a.Notes = *patch.Notes
		}
		return a
	})
}

func (d *SiteDraft) RemoveAttraction(index int) {
	d.Attractions = removeAt(d.Attractions, index)
}

// --- Amenities and etiquette ---

func (d *SiteDraft) AddAmenity(a models.Amenity) {
	d.Amenities = appendItem(d.Amenities, a)
}

func (d *SiteDraft) RemoveAmenity(index int) {
	d.Amenities = removeAt(d.Amenities, index)
}

func (d *SiteDraft) AddEtiquette(rule string) {
	d.Etiquette = appendItem(d.Etiquette, rule)
}

func (d *SiteDraft) UpdateEtiquette(index int, rule string) {
	d.Etiquette = updateAt(d.Etiquette, index, func(string) string { return rule })
}

func (d *SiteDraft) RemoveEtiquette(index int) {
	d.Etiquette = removeAt(d.Etiquette, index)
}

// --- Schedule ---

// SetDayOpen toggles one weekday without touching its stored times.
func (d *SiteDraft) SetDayOpen(index int, open bool) {
	if index < 0 || index >= len(d.Schedule) {
		return
	}
	d.Schedule[index].IsOpen = open
}

func (d *SiteDraft) SetDayTimes(index int, opening, closing string) {
	if index < 0 || index >= len(d.Schedule) {
		return
	}
	d.Schedule[index].OpeningTime = opening
	d.Schedule[index].ClosingTime = closing
}

// --- Translations ---

func (d *SiteDraft) SetOverview(lang, text string) {
	if d.Overview == nil {
		d.Overview = emptyTranslationMap()
	}
	d.Overview[lang] = text
}

func (d *SiteDraft) SetHistory(lang, text string) {
	if d.History == nil {
		d.History = emptyTranslationMap()
	}
	d.History[lang] = text
}
