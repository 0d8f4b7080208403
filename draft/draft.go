// Package draft holds the in-memory editing state for one heritage site and
// the transforms between that state and the backend's multi-entity model.
package draft

import (
	"virasat/models"
	"virasat/schedule"
)

// SupportedLanguages is the fixed language set for translations and audio
// guides. The aggregator and the audio-guide editor share this list.
var SupportedLanguages = []string{"en", "gu", "hi", "es"}

const (
	SaveOptionDraft    = "draft"
	SaveOptionApproval = "approval"
)

// MediaItem is one gallery entry as the editor sees it.
type MediaItem struct {
	ID         string `json:"id"`
	SourceFile string `json:"sourceFile,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Label      string `json:"label,omitempty"`
	IsPrimary  bool   `json:"isPrimary"`
}

// AudioGuide is the per-language narration slot. Exactly one per supported
// language exists on every draft, empty or not.
type AudioGuide struct {
	Language        string `json:"language"`
	URL             string `json:"url,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	FileName        string `json:"fileName,omitempty"`
	SourceFile      string `json:"sourceFile,omitempty"`
}

// FeeBreakup keeps the amount as entered; it is parsed on serialization.
type FeeBreakup struct {
	VisitorType string `json:"visitorType"`
	Amount      string `json:"amount"`
	Notes       string `json:"notes,omitempty"`
}

type TransportOption struct {
	Mode       string `json:"mode"`
	Name       string `json:"name"`
	DistanceKm string `json:"distanceKm,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type Attraction struct {
	Name       string `json:"name"`
	DistanceKm string `json:"distanceKm,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type Ticketing struct {
	EntryType     string       `json:"entryType"`
	BookingURL    string       `json:"bookingUrl,omitempty"`
	OnlineBooking bool         `json:"onlineBookingAvailable"`
	Fees          []FeeBreakup `json:"fees"`
}

// AdminMeta only influences the status/isActive flags sent on submit; the
// notes never reach the core record.
type AdminMeta struct {
	SaveOption string `json:"saveOption"`
	Notes      string `json:"notes,omitempty"`
}

// SiteDraft is the single editable representation of one heritage site for
// the duration of an edit session. Coordinates stay decimal strings here
// because they are bound to text inputs; the serializer parses them.
type SiteDraft struct {
	SiteID string `json:"siteid,omitempty"`
	IsEdit bool   `json:"isEdit"`

	Name        string `json:"name"`
	ShortDesc   string `json:"shortDesc"`
	Description string `json:"description"`

	Address    string `json:"address"`
	Area       string `json:"area,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Latitude   string `json:"latitude,omitempty"`
	Longitude  string `json:"longitude,omitempty"`

	VideoURL    string `json:"videoUrl,omitempty"`
	ARAvailable bool   `json:"arAvailable"`
	SiteMapRef  string `json:"siteMap,omitempty"`
	SiteType    string `json:"siteType,omitempty"`
	Experience  string `json:"experience,omitempty"`

	Schedule []schedule.OpeningDay `json:"schedule"`

	Amenities   []models.Amenity `json:"amenities"`
	Media       []MediaItem      `json:"media"`
	AudioGuides []AudioGuide     `json:"audioGuides"`

	Overview map[string]string `json:"overview"`
	History  map[string]string `json:"history"`

	Ticketing   Ticketing         `json:"ticketing"`
	Transport   []TransportOption `json:"transport"`
	Attractions []Attraction      `json:"attractions"`
	Etiquette   []string          `json:"etiquette"`

	Admin AdminMeta `json:"admin"`
}

// emptyTranslationMap gives every supported language a controlled entry so
// the form always has an input to bind, stored or not.
func emptyTranslationMap() map[string]string {
	m := make(map[string]string, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		m[lang] = ""
	}
	return m
}

func emptyAudioGuides() []AudioGuide {
	guides := make([]AudioGuide, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		guides = append(guides, AudioGuide{Language: lang})
	}
	return guides
}

// NewDraft returns the empty create-mode draft.
func NewDraft() *SiteDraft {
	return &SiteDraft{
		Schedule:    schedule.DefaultWeek(),
		Amenities:   []models.Amenity{},
		Media:       []MediaItem{},
		AudioGuides: emptyAudioGuides(),
		Overview:    emptyTranslationMap(),
		History:     emptyTranslationMap(),
		Ticketing: Ticketing{
			EntryType: models.EntryTypeFree,
			Fees:      []FeeBreakup{},
		},
		Transport:   []TransportOption{},
		Attractions: []Attraction{},
		Etiquette:   []string{},
		Admin:       AdminMeta{SaveOption: SaveOptionDraft},
	}
}
