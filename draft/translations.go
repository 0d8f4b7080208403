package draft

import (
	"strings"

	"virasat/models"
)

// BuildTranslations merges the per-language overview/history maps into one
// row per language. Location fields ride on the EN row only: they are not
// localized, but the target schema keeps them in the translation table, so
// the EN accumulator is force-created even when no English text was entered.
// Optional fields stay nil when never set; an explicitly cleared field is an
// empty-string pointer.
func BuildTranslations(d *SiteDraft) []models.SiteTranslation {
	rows := make(map[string]*models.SiteTranslation)

	ensure := func(lang string) *models.SiteTranslation {
		if row, ok := rows[lang]; ok {
			return row
		}
		row := &models.SiteTranslation{
			LanguageCode: strings.ToUpper(lang),
			Name:         d.Name,
		}
		rows[lang] = row
		return row
	}

	for _, lang := range SupportedLanguages {
		if text := strings.TrimSpace(d.Overview[lang]); text != "" {
			ensure(lang).ShortDesc = strPtr(text)
		}
		if text := strings.TrimSpace(d.History[lang]); text != "" {
			ensure(lang).FullDesc = strPtr(text)
		}
	}

	if d.Address != "" || d.City != "" || d.State != "" || d.Country != "" {
		en := ensure("en")
		if d.Address != "" {
			en.Address = strPtr(d.Address)
		}
		if d.City != "" {
			en.City = strPtr(d.City)
		}
		if d.State != "" {
			en.State = strPtr(d.State)
		}
		if d.Country != "" {
			en.Country = strPtr(d.Country)
		}
	}

	// fixed language order keeps output deterministic
	out := make([]models.SiteTranslation, 0, len(rows))
	for _, lang := range SupportedLanguages {
		if row, ok := rows[lang]; ok {
			out = append(out, *row)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }
