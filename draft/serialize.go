package draft

import (
	"strconv"
	"strings"

	"virasat/filemgr"
	"virasat/models"
	"virasat/schedule"
)

// Serialize turns the draft into the full-replace write payload. It is not a
// mirror of Hydrate: fee rows are pruned under free entry, audio guides
// without a URL are dropped, and empty translation text is never sent.
func Serialize(d *SiteDraft) *models.SitePayload {
	payload := &models.SitePayload{
		Site:           buildCore(d),
		Media:          buildMedia(d),
		VisitingHours:  schedule.ToRows(d.Schedule),
		TicketTypes:    buildTicketTypes(d),
		Transportation: buildTransportation(d),
		Amenities:      append([]models.Amenity{}, d.Amenities...),
		Etiquettes:     buildEtiquettes(d),
		Translations:   BuildTranslations(d),
	}
	return payload
}

func buildCore(d *SiteDraft) models.HeritageSite {
	site := models.HeritageSite{
		SiteID:        d.SiteID,
		Name:          strings.TrimSpace(d.Name),
		ShortDesc:     d.ShortDesc,
		Description:   d.Description,
		Address:       d.Address,
		Area:          d.Area,
		City:          d.City,
		State:         d.State,
		Country:       d.Country,
		PostalCode:    d.PostalCode,
		Latitude:      parseCoord(d.Latitude),
		Longitude:     parseCoord(d.Longitude),
		VideoURL:      d.VideoURL,
		ARAvailable:   d.ARAvailable,
		BookingURL:    d.Ticketing.BookingURL,
		OnlineBooking: d.Ticketing.OnlineBooking,
		SiteMapRef:    d.SiteMapRef,
		SiteType:      d.SiteType,
		Experience:    d.Experience,
		EntryType:     d.Ticketing.EntryType,
		Amenities:     append([]models.Amenity{}, d.Amenities...),
		Etiquettes:    append([]string{}, d.Etiquette...),
	}

	site.OverviewTranslations = nonEmptyEntries(d.Overview)
	site.HistoryTranslations = nonEmptyEntries(d.History)

	// the save option drives the review flags, nothing else
	if d.Admin.SaveOption == SaveOptionApproval {
		site.Status = models.SiteStatusPendingReview
		site.IsActive = true
	} else {
		site.Status = models.SiteStatusDraft
		site.IsActive = false
	}

	return site
}

// buildMedia lays all media out in one ordered list: gallery items first
// (positions 1..N), then audio guides that actually have a URL. The forced
// first-primary check here is deliberately independent of the editor-level
// invariant; serialization is the last line of defense.
func buildMedia(d *SiteDraft) []models.SiteMedia {
	out := make([]models.SiteMedia, 0, len(d.Media)+len(d.AudioGuides))
	position := 0

	for _, item := range d.Media {
		position++
		mediaType := "image"
		if item.SourceFile != "" {
			mediaType = filemgr.DetectMediaKind(item.SourceFile)
		}
		out = append(out, models.SiteMedia{
			MediaID:   item.ID,
			MediaType: mediaType,
			URL:       item.PreviewURL,
			Caption:   item.Label,
			FileName:  item.SourceFile,
			IsPrimary: item.IsPrimary,
			Position:  position,
		})
	}

	for _, guide := range d.AudioGuides {
		if strings.TrimSpace(guide.URL) == "" {
			continue
		}
		position++
		fileName := guide.FileName
		if fileName == "" {
			fileName = guide.SourceFile
		}
		out = append(out, models.SiteMedia{
			MediaType: "audio",
			Language:  guide.Language,
			URL:       guide.URL,
			FileName:  fileName,
			Duration:  guide.DurationSeconds,
			Position:  position,
		})
	}

	if len(out) > 0 {
		hasPrimary := false
		for _, m := range out {
			if m.IsPrimary {
				hasPrimary = true
				break
			}
		}
		if !hasPrimary {
			out[0].IsPrimary = true
		}
	}

	return out
}

func buildTicketTypes(d *SiteDraft) []models.TicketType {
	out := []models.TicketType{}
	if d.Ticketing.EntryType != models.EntryTypePaid {
		return out
	}
	for _, fee := range d.Ticketing.Fees {
		visitorType := strings.TrimSpace(fee.VisitorType)
		if visitorType == "" {
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(fee.Amount), 64)
		if err != nil {
			amount = 0
		}
		out = append(out, models.TicketType{
			VisitorType: visitorType,
			Amount:      amount,
			Notes:       fee.Notes,
		})
	}
	return out
}

func buildTransportation(d *SiteDraft) []models.Transportation {
	out := make([]models.Transportation, 0, len(d.Transport)+len(d.Attractions))
	for _, opt := range d.Transport {
		out = append(out, models.Transportation{
			Category:   models.TransportCategoryTransport,
			Mode:       opt.Mode,
			Name:       opt.Name,
			DistanceKm: parseDistance(opt.DistanceKm),
			Notes:      opt.Notes,
		})
	}
	for _, a := range d.Attractions {
		out = append(out, models.Transportation{
			Category:   models.TransportCategoryAttraction,
			Name:       a.Name,
			DistanceKm: parseDistance(a.DistanceKm),
			Notes:      a.Notes,
		})
	}
	return out
}

func buildEtiquettes(d *SiteDraft) []models.EtiquetteRule {
	out := []models.EtiquetteRule{}
	for _, rule := range d.Etiquette {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		out = append(out, models.EtiquetteRule{RuleTitle: rule})
	}
	return out
}

func nonEmptyEntries(m map[string]string) map[string]string {
	out := map[string]string{}
	for lang, text := range m {
		if strings.TrimSpace(text) != "" {
			out[lang] = text
		}
	}
	return out
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDistance(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
