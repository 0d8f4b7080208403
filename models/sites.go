package models

import "time"

// HeritageSite is the core record. Translation text blobs live on the core
// document; gallery/audio rows, visiting hours, ticket types and
// transportation rows are stored in their own collections keyed by siteid.
type HeritageSite struct {
	SiteID        string  `json:"siteid" bson:"siteid"`
	Name          string  `json:"name" bson:"name"`
	ShortDesc     string  `json:"short_desc" bson:"short_desc"`
	Description   string  `json:"description" bson:"description"`
	Address       string  `json:"address" bson:"address"`
	Area          string  `json:"area,omitempty" bson:"area,omitempty"`
	City          string  `json:"city,omitempty" bson:"city,omitempty"`
	State         string  `json:"state,omitempty" bson:"state,omitempty"`
	Country       string  `json:"country,omitempty" bson:"country,omitempty"`
	PostalCode    string  `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Latitude      float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	VideoURL      string  `json:"video_url,omitempty" bson:"video_url,omitempty"`
	ARAvailable   bool    `json:"ar_available" bson:"ar_available"`
	BookingURL    string  `json:"booking_url,omitempty" bson:"booking_url,omitempty"`
	OnlineBooking bool    `json:"online_booking" bson:"online_booking"`
	SiteMapRef    string  `json:"site_map,omitempty" bson:"site_map,omitempty"`
	EntryType     string  `json:"entry_type" bson:"entry_type"`
	SiteType      string  `json:"site_type,omitempty" bson:"site_type,omitempty"`
	Experience    string  `json:"experience,omitempty" bson:"experience,omitempty"`
	Status        string  `json:"status" bson:"status"`
	IsActive      bool    `json:"isActive" bson:"isActive"`

	Amenities  []Amenity `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Etiquettes []string  `json:"etiquettes,omitempty" bson:"etiquettes,omitempty"`

	OverviewTranslations map[string]string `json:"overview_translations,omitempty" bson:"overview_translations,omitempty"`
	HistoryTranslations  map[string]string `json:"history_translations,omitempty" bson:"history_translations,omitempty"`

	CreatedBy string     `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

type Amenity struct {
	Name string `json:"name" bson:"name"`
	Icon string `json:"icon,omitempty" bson:"icon,omitempty"`
}

const (
	EntryTypeFree = "free"
	EntryTypePaid = "paid"

	SiteStatusDraft         = "draft"
	SiteStatusPendingReview = "pending_review"
	SiteStatusPublished     = "published"
)

// VisitingHour is one persisted opening-hours row. Older writers stored the
// weekday as a 1-7 integer with is_closed and open_time/close_time; newer
// rows carry the weekday name with is_open and opening_time/closing_time.
// Reads must cope with either shape (see the schedule package).
type VisitingHour struct {
	SiteID      string `json:"siteid,omitempty" bson:"siteid,omitempty"`
	Day         string `json:"day,omitempty" bson:"day,omitempty"`
	DayOfWeek   int    `json:"day_of_week,omitempty" bson:"day_of_week,omitempty"`
	IsOpen      *bool  `json:"is_open,omitempty" bson:"is_open,omitempty"`
	IsClosed    *bool  `json:"is_closed,omitempty" bson:"is_closed,omitempty"`
	OpenTime    string `json:"open_time,omitempty" bson:"open_time,omitempty"`
	CloseTime   string `json:"close_time,omitempty" bson:"close_time,omitempty"`
	OpeningTime string `json:"opening_time,omitempty" bson:"opening_time,omitempty"`
	ClosingTime string `json:"closing_time,omitempty" bson:"closing_time,omitempty"`
}

// SiteMedia covers both gallery entries and audio guides; audio rows are
// tagged media_type "audio" and carry a language code.
type SiteMedia struct {
	MediaID   string `json:"mediaid" bson:"mediaid"`
	SiteID    string `json:"siteid,omitempty" bson:"siteid,omitempty"`
	MediaType string `json:"media_type" bson:"media_type"`
	Language  string `json:"language,omitempty" bson:"language,omitempty"`
	URL       string `json:"url,omitempty" bson:"url,omitempty"`
	Caption   string `json:"caption,omitempty" bson:"caption,omitempty"`
	FileName  string `json:"file_name,omitempty" bson:"file_name,omitempty"`
	Duration  int    `json:"duration,omitempty" bson:"duration,omitempty"`
	IsPrimary bool   `json:"is_primary" bson:"is_primary"`
	Position  int    `json:"position" bson:"position"`
}

type TicketType struct {
	SiteID      string  `json:"siteid,omitempty" bson:"siteid,omitempty"`
	VisitorType string  `json:"visitor_type" bson:"visitor_type"`
	Amount      float64 `json:"amount" bson:"amount"`
	Notes       string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

const (
	TransportCategoryTransport  = "transport"
	TransportCategoryAttraction = "attraction"
)

// Transportation holds both how-to-reach options and nearby attractions,
// split by the category tag.
type Transportation struct {
	SiteID     string   `json:"siteid,omitempty" bson:"siteid,omitempty"`
	Category   string   `json:"category" bson:"category"`
	Mode       string   `json:"mode,omitempty" bson:"mode,omitempty"`
	Name       string   `json:"name" bson:"name"`
	DistanceKm *float64 `json:"distance_km,omitempty" bson:"distance_km,omitempty"`
	Notes      string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// SiteTranslation is one row per language. Optional fields are pointers so
// "not set" survives the round trip distinct from "cleared".
type SiteTranslation struct {
	SiteID       string  `json:"siteid,omitempty" bson:"siteid,omitempty"`
	LanguageCode string  `json:"languageCode" bson:"languageCode"`
	Name         string  `json:"name" bson:"name"`
	ShortDesc    *string `json:"shortDesc,omitempty" bson:"shortDesc,omitempty"`
	FullDesc     *string `json:"fullDesc,omitempty" bson:"fullDesc,omitempty"`
	Address      *string `json:"address,omitempty" bson:"address,omitempty"`
	City         *string `json:"city,omitempty" bson:"city,omitempty"`
	State        *string `json:"state,omitempty" bson:"state,omitempty"`
	Country      *string `json:"country,omitempty" bson:"country,omitempty"`
}

// SiteDetail is the read aggregate served to the editor.
type SiteDetail struct {
	Site           *HeritageSite    `json:"site"`
	VisitingHours  []VisitingHour   `json:"visitingHours"`
	Media          []SiteMedia      `json:"media"`
	TicketTypes    []TicketType     `json:"ticketTypes"`
	Transportation []Transportation `json:"transportation"`
}

type EtiquetteRule struct {
	RuleTitle string `json:"ruleTitle" bson:"ruleTitle"`
}

// SitePayload is the full-replace write payload. Every field is resent on
// every save; the backend treats it as authoritative.
type SitePayload struct {
	Site           HeritageSite      `json:"site"`
	Media          []SiteMedia       `json:"media"`
	VisitingHours  []VisitingHour    `json:"visitingHours"`
	TicketTypes    []TicketType      `json:"ticketTypes"`
	Transportation []Transportation  `json:"transportation"`
	Amenities      []Amenity         `json:"amenities"`
	Etiquettes     []EtiquetteRule   `json:"etiquettes"`
	Translations   []SiteTranslation `json:"translations"`
}

type SiteResult struct {
	Success bool   `json:"success"`
	SiteID  string `json:"siteid,omitempty"`
	Error   string `json:"error,omitempty"`
}
