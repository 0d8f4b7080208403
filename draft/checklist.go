package draft

import (
	"strings"

	"virasat/models"
)

// Checklist is UI feedback only; it never blocks submission.
type Checklist struct {
	Completed []string `json:"completed"`
	Missing   []string `json:"missing"`
}

const (
	SectionName      = "Site name"
	SectionAddress   = "Address"
	SectionGallery   = "Photo gallery"
	SectionHours     = "Visiting hours"
	SectionEntryFee  = "Entry fee"
	SectionOverview  = "Overview translations"
	SectionHistory   = "History translations"
	SectionAudio     = "Audio guides"
)

// EvaluateChecklist derives the completed/missing section lists from the
// draft. Every check stands alone; none depends on another's outcome.
func EvaluateChecklist(d *SiteDraft) Checklist {
	checks := []struct {
		section string
		done    bool
	}{
		{SectionName, strings.TrimSpace(d.Name) != ""},
		{SectionAddress, strings.TrimSpace(d.Address) != ""},
		{SectionGallery, len(d.Media) > 0},
		{SectionHours, anyOpenDay(d)},
		{SectionEntryFee, d.Ticketing.EntryType == models.EntryTypeFree || len(d.Ticketing.Fees) > 0},
		{SectionOverview, anyText(d.Overview)},
		{SectionHistory, anyText(d.History)},
		{SectionAudio, allGuidesFilled(d)},
	}

	var result Checklist
	for _, check := range checks {
		if check.done {
			result.Completed = append(result.Completed, check.section)
		} else {
			result.Missing = append(result.Missing, check.section)
		}
	}
	return result
}

func anyOpenDay(d *SiteDraft) bool {
	for _, day := range d.Schedule {
		if day.IsOpen {
			return true
		}
	}
	return false
}

func anyText(m map[string]string) bool {
	for _, text := range m {
		if strings.TrimSpace(text) != "" {
			return true
		}
	}
	return false
}

func allGuidesFilled(d *SiteDraft) bool {
	if len(d.AudioGuides) == 0 {
		return false
	}
	for _, guide := range d.AudioGuides {
		if strings.TrimSpace(guide.URL) == "" && strings.TrimSpace(guide.SourceFile) == "" {
			return false
		}
	}
	return true
}
