package schedule

import (
	"strings"

	"virasat/models"
)

// Weekdays is the canonical weekday order. Both the normalizer and the
// serializer reference this list so the two directions of the transform
// cannot drift apart.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

const (
	DefaultOpeningTime = "09:00"
	DefaultClosingTime = "18:00"
)

// OpeningDay is the canonical in-memory shape the editor works with.
type OpeningDay struct {
	Day         string `json:"day"`
	IsOpen      bool   `json:"isOpen"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// DefaultWeek returns the schedule a fresh draft starts with: open every day
// except Sunday, 09:00-18:00.
func DefaultWeek() []OpeningDay {
	week := make([]OpeningDay, len(Weekdays))
	for i, day := range Weekdays {
		week[i] = OpeningDay{
			Day:         day,
			IsOpen:      day != "Sunday",
			OpeningTime: DefaultOpeningTime,
			ClosingTime: DefaultClosingTime,
		}
	}
	return week
}

// resolveDayName maps a persisted row to a canonical weekday name. Older rows
// store a 1-7 integer (1=Monday); newer ones a name in any casing.
func resolveDayName(row models.VisitingHour) string {
	if name := strings.TrimSpace(row.Day); name != "" {
		for _, day := range Weekdays {
			if strings.EqualFold(day, name) {
				return day
			}
		}
		return ""
	}
	if row.DayOfWeek >= 1 && row.DayOfWeek <= 7 {
		return Weekdays[row.DayOfWeek-1]
	}
	return ""
}

// resolveOpen applies the openness precedence: an is_closed flag wins over
// is_open (the two are semantically inverted); absent both, the day is open.
func resolveOpen(row models.VisitingHour) bool {
	if row.IsClosed != nil {
		return !*row.IsClosed
	}
	if row.IsOpen != nil {
		return *row.IsOpen
	}
	return true
}

// resolveTime prefers the legacy field name when present, truncates to HH:MM,
// and falls back to the given default.
func resolveTime(legacy, canonical, fallback string) string {
	t := strings.TrimSpace(legacy)
	if t == "" {
		t = strings.TrimSpace(canonical)
	}
	if t == "" {
		return fallback
	}
	if len(t) > 5 {
		t = t[:5]
	}
	return t
}

// Normalize reconciles persisted visiting-hour rows into exactly one entry
// per canonical weekday, Monday through Sunday. Days the rows never covered
// come back closed but still carry placeholder times so the editor never
// renders a blank time field. Normalizing already-canonical rows is a no-op.
func Normalize(rows []models.VisitingHour) []OpeningDay {
	byDay := make(map[string]models.VisitingHour, len(rows))
	for _, row := range rows {
		if name := resolveDayName(row); name != "" {
			if _, exists := byDay[name]; !exists {
				byDay[name] = row
			}
		}
	}

	week := make([]OpeningDay, len(Weekdays))
	for i, day := range Weekdays {
		row, found := byDay[day]
		if !found {
			week[i] = OpeningDay{
				Day:         day,
				IsOpen:      false,
				OpeningTime: DefaultOpeningTime,
				ClosingTime: DefaultClosingTime,
			}
			continue
		}
		week[i] = OpeningDay{
			Day:         day,
			IsOpen:      resolveOpen(row),
			OpeningTime: resolveTime(row.OpenTime, row.OpeningTime, DefaultOpeningTime),
			ClosingTime: resolveTime(row.CloseTime, row.ClosingTime, DefaultClosingTime),
		}
	}
	return week
}

// ToRows converts a canonical week into wire rows: weekday name, is_open,
// HH:MM:SS times.
func ToRows(week []OpeningDay) []models.VisitingHour {
	rows := make([]models.VisitingHour, 0, len(week))
	for _, day := range week {
		open := day.IsOpen
		rows = append(rows, models.VisitingHour{
			Day:         day.Day,
			IsOpen:      &open,
			OpeningTime: wireTime(day.OpeningTime),
			ClosingTime: wireTime(day.ClosingTime),
		})
	}
	return rows
}

func wireTime(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}
