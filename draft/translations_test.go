package draft

import (
	"testing"
)

func TestTranslationsOneRowPerLanguage(t *testing.T) {
	d := NewDraft()
	d.Name = "Rani ki Vav"
	d.SetOverview("en", "An 11th-century stepwell.")
	d.SetOverview("gu", "અગિયારમી સદીની વાવ.")
	d.SetHistory("gu", "રાણી ઉદયમતીએ બંધાવી.")
	d.SetHistory("hi", "रानी उदयमती ने बनवाई।")

	rows := BuildTranslations(d)

	byLang := map[string]int{}
	for _, row := range rows {
		byLang[row.LanguageCode]++
		if row.Name != "Rani ki Vav" {
			t.Errorf("%s: name must ride untranslated, got %q", row.LanguageCode, row.Name)
		}
	}
	for lang, n := range byLang {
		if n != 1 {
			t.Errorf("language %s emitted %d rows", lang, n)
		}
	}
	if byLang["GU"] != 1 || byLang["HI"] != 1 || byLang["EN"] != 1 {
		t.Errorf("missing expected languages: %+v", byLang)
	}

	for _, row := range rows {
		if row.LanguageCode == "GU" {
			if row.ShortDesc == nil || row.FullDesc == nil {
				t.Error("GU row should carry both overview and history")
			}
		}
		if row.LanguageCode == "HI" {
			if row.ShortDesc != nil {
				t.Error("HI overview was never set; shortDesc must stay nil, not empty")
			}
			if row.FullDesc == nil {
				t.Error("HI history missing")
			}
		}
	}
}

func TestLocationFieldsForceEnglishRow(t *testing.T) {
	d := NewDraft()
	d.Name = "Champaner"
	d.City = "Panchmahal"
	d.Country = "India"
	// no English overview or history text at all
	d.SetOverview("es", "Ciudad histórica.")

	rows := BuildTranslations(d)

	var en, es bool
	for _, row := range rows {
		switch row.LanguageCode {
		case "EN":
			en = true
			if row.City == nil || *row.City != "Panchmahal" {
				t.Error("EN row must carry the city")
			}
			if row.Country == nil || *row.Country != "India" {
				t.Error("EN row must carry the country")
			}
			if row.Address != nil {
				t.Error("address was never set; must stay nil")
			}
			if row.ShortDesc != nil || row.FullDesc != nil {
				t.Error("EN text was never entered; desc fields must stay nil")
			}
		case "ES":
			es = true
			if row.City != nil || row.Country != nil {
				t.Error("location fields must never attach to non-EN rows")
			}
		}
	}
	if !en {
		t.Fatal("EN row must exist whenever a location field is non-empty")
	}
	if !es {
		t.Fatal("ES row missing")
	}
}

func TestWhitespaceOnlyTextEmitsNoRow(t *testing.T) {
	d := NewDraft()
	d.Name = "Dholavira"
	d.SetOverview("hi", "   ")

	rows := BuildTranslations(d)
	for _, row := range rows {
		if row.LanguageCode == "HI" {
			t.Errorf("whitespace-only text must not produce a row: %+v", row)
		}
	}
}

func TestNoTextNoLocationNoRows(t *testing.T) {
	d := NewDraft()
	d.Name = "Unnamed"

	if rows := BuildTranslations(d); len(rows) != 0 {
		t.Errorf("expected no translation rows, got %+v", rows)
	}
}
