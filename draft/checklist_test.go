package draft

import (
	"testing"

	"virasat/models"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestChecklistEmptyDraft(t *testing.T) {
	d := NewDraft()
	result := EvaluateChecklist(d)

	// a fresh draft already has open days and free entry
	if !contains(result.Completed, SectionHours) {
		t.Error("default week has open days; hours section should be complete")
	}
	if !contains(result.Completed, SectionEntryFee) {
		t.Error("free entry satisfies the fee section")
	}
	for _, section := range []string{SectionName, SectionAddress, SectionGallery, SectionOverview, SectionHistory, SectionAudio} {
		if !contains(result.Missing, section) {
			t.Errorf("%s should be missing on an empty draft", section)
		}
	}
}

func TestChecklistIndependentChecks(t *testing.T) {
	d := NewDraft()
	d.Name = "Lothal"
	// address left empty on purpose; later checks must still evaluate
	d.AddMedia(MediaItem{ID: "m1"})
	d.SetOverview("en", "Harappan port town.")

	result := EvaluateChecklist(d)

	if !contains(result.Completed, SectionName) {
		t.Error("name check failed")
	}
	if !contains(result.Missing, SectionAddress) {
		t.Error("address should be missing")
	}
	if !contains(result.Completed, SectionGallery) {
		t.Error("gallery check must not depend on the failed address check")
	}
	if !contains(result.Completed, SectionOverview) {
		t.Error("overview check must not depend on earlier failures")
	}

	if len(result.Completed)+len(result.Missing) != 8 {
		t.Errorf("every check must land in exactly one list: %+v", result)
	}
}

func TestChecklistPaidNeedsFees(t *testing.T) {
	d := NewDraft()
	d.SetEntryType(models.EntryTypePaid)
	if result := EvaluateChecklist(d); !contains(result.Missing, SectionEntryFee) {
		t.Error("paid entry with no fee rows is incomplete")
	}

	d.AddFee(FeeBreakup{VisitorType: "Adult", Amount: "50"})
	if result := EvaluateChecklist(d); !contains(result.Completed, SectionEntryFee) {
		t.Error("paid entry with a fee row is complete")
	}
}

func TestChecklistAudioNeedsAllLanguages(t *testing.T) {
	d := NewDraft()
	for _, lang := range []string{"en", "gu", "hi"} {
		url := "/a/" + lang + ".mp3"
		d.UpdateAudioGuide(lang, AudioGuidePatch{URL: &url})
	}
	if result := EvaluateChecklist(d); !contains(result.Missing, SectionAudio) {
		t.Error("three of four guides is not complete")
	}

	src := "es.mp3"
	d.UpdateAudioGuide("es", AudioGuidePatch{SourceFile: &src})
	if result := EvaluateChecklist(d); !contains(result.Completed, SectionAudio) {
		t.Error("a source file counts as much as a URL")
	}
}

func TestChecklistClosedWeek(t *testing.T) {
	d := NewDraft()
	for i := range d.Schedule {
		d.SetDayOpen(i, false)
	}
	if result := EvaluateChecklist(d); !contains(result.Missing, SectionHours) {
		t.Error("a fully closed week leaves the hours section missing")
	}
}
