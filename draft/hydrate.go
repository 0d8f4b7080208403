package draft

import (
	"errors"
	"strconv"
	"strings"

	"virasat/models"
	"virasat/schedule"
)

// ErrNoSiteRecord aborts hydration when the aggregate has no core record.
// Everything else missing hydrates with defaults instead of failing.
var ErrNoSiteRecord = errors.New("site detail has no core record")

// Hydrate converts a persisted site-detail aggregate into the editable draft.
func Hydrate(detail *models.SiteDetail) (*SiteDraft, error) {
	if detail == nil || detail.Site == nil {
		return nil, ErrNoSiteRecord
	}
	site := detail.Site

	d := NewDraft()
	d.SiteID = site.SiteID
	d.IsEdit = true

	d.Name = site.Name
	d.ShortDesc = site.ShortDesc
	d.Description = site.Description
	d.Address = site.Address
	d.Area = site.Area
	d.City = site.City
	d.State = site.State
	d.Country = site.Country
	d.PostalCode = site.PostalCode
	d.Latitude = formatCoord(site.Latitude)
	d.Longitude = formatCoord(site.Longitude)
	d.VideoURL = site.VideoURL
	d.ARAvailable = site.ARAvailable
	d.SiteMapRef = site.SiteMapRef
	d.SiteType = site.SiteType
	d.Experience = site.Experience

	d.Schedule = schedule.Normalize(detail.VisitingHours)

	hydrateMedia(d, detail.Media)
	hydrateTranslations(d, site)
	hydrateTransportation(d, detail.Transportation)

	d.Ticketing.EntryType = site.EntryType
	if d.Ticketing.EntryType == "" {
		d.Ticketing.EntryType = models.EntryTypeFree
	}
	d.Ticketing.BookingURL = site.BookingURL
	d.Ticketing.OnlineBooking = site.OnlineBooking
	// stale fee rows under a since-changed-to-free entry type stay out of
	// the editable view
	if d.Ticketing.EntryType == models.EntryTypePaid {
		for _, row := range detail.TicketTypes {
			d.Ticketing.Fees = append(d.Ticketing.Fees, FeeBreakup{
				VisitorType: row.VisitorType,
				Amount:      strconv.FormatFloat(row.Amount, 'f', -1, 64),
				Notes:       row.Notes,
			})
		}
	}

	if len(site.Amenities) > 0 {
		d.Amenities = append([]models.Amenity{}, site.Amenities...)
	}
	if len(site.Etiquettes) > 0 {
		d.Etiquette = append([]string{}, site.Etiquettes...)
	}

	if site.Status == models.SiteStatusDraft {
		d.Admin.SaveOption = SaveOptionDraft
	} else {
		d.Admin.SaveOption = SaveOptionApproval
	}

	return d, nil
}

// hydrateMedia partitions the flat media list: audio rows fill the fixed
// per-language guide slots, everything else becomes a gallery item.
func hydrateMedia(d *SiteDraft, rows []models.SiteMedia) {
	for _, row := range rows {
		if strings.EqualFold(row.MediaType, "audio") {
			continue
		}
		d.Media = append(d.Media, MediaItem{
			ID:         row.MediaID,
			SourceFile: row.FileName,
			PreviewURL: row.URL,
			Label:      row.Caption,
			IsPrimary:  row.IsPrimary,
		})
	}

	if len(d.Media) > 0 {
		hasPrimary := false
		for _, m := range d.Media {
			if m.IsPrimary {
				hasPrimary = true
				break
			}
		}
		if !hasPrimary {
			d.Media[0].IsPrimary = true
		}
	}

	for i, guide := range d.AudioGuides {
		for _, row := range rows {
			if !strings.EqualFold(row.MediaType, "audio") {
				continue
			}
			if !strings.EqualFold(row.Language, guide.Language) {
				continue
			}
			d.AudioGuides[i].URL = row.URL
			d.AudioGuides[i].DurationSeconds = row.Duration
			d.AudioGuides[i].FileName = row.FileName
			break
		}
	}
}

// hydrateTranslations overlays stored text onto the all-languages scaffold so
// every supported language keeps a bound input.
func hydrateTranslations(d *SiteDraft, site *models.HeritageSite) {
	for key, text := range site.OverviewTranslations {
		lang := strings.ToLower(strings.TrimSpace(key))
		if _, ok := d.Overview[lang]; ok {
			d.Overview[lang] = text
		}
	}
	for key, text := range site.HistoryTranslations {
		lang := strings.ToLower(strings.TrimSpace(key))
		if _, ok := d.History[lang]; ok {
			d.History[lang] = text
		}
	}
}

func hydrateTransportation(d *SiteDraft, rows []models.Transportation) {
	for _, row := range rows {
		switch row.Category {
		case models.TransportCategoryAttraction:
			d.Attractions = append(d.Attractions, Attraction{
				Name:       row.Name,
				DistanceKm: formatDistance(row.DistanceKm),
				Notes:      row.Notes,
			})
		default:
			d.Transport = append(d.Transport, TransportOption{
				Mode:       row.Mode,
				Name:       row.Name,
				DistanceKm: formatDistance(row.DistanceKm),
				Notes:      row.Notes,
			})
		}
	}
}

func formatCoord(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDistance(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
