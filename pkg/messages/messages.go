// Package messages holds the user-facing validation texts and placeholder
// letters for each supported locale. French is the default.
package messages

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-datefield/pkg/dateformat"
)

// Catalog is the set of texts a field shows. Templates take one %s verb: the
// display format for InvalidFormat, a formatted date for the rule templates.
type Catalog struct {
	Locale         string
	Required       string
	InvalidFormat  string
	EndBeforeStart string
	NotBefore      string
	NotAfter       string
	Exact          string
	// Letters are the day, month and year placeholder letters.
	Letters [3]rune
}

var supported = []language.Tag{language.French, language.English, language.German}

var matcher = language.NewMatcher(supported)

var catalogs = []Catalog{
	{
		Locale:         "fr",
		Required:       "Ce champ est requis.",
		InvalidFormat:  "Format de date invalide, attendu %s.",
		EndBeforeStart: "La date de fin doit être postérieure à la date de début.",
		NotBefore:      "La date doit être postérieure ou égale au %s.",
		NotAfter:       "La date doit être antérieure ou égale au %s.",
		Exact:          "La date doit être le %s.",
		Letters:        [3]rune{'J', 'M', 'A'},
	},
	{
		Locale:         "en",
		Required:       "This field is required.",
		InvalidFormat:  "Invalid date format, expected %s.",
		EndBeforeStart: "The end date must not be before the start date.",
		NotBefore:      "The date must be on or after %s.",
		NotAfter:       "The date must be on or before %s.",
		Exact:          "The date must be %s.",
		Letters:        [3]rune{'D', 'M', 'Y'},
	},
	{
		Locale:         "de",
		Required:       "Dieses Feld ist erforderlich.",
		InvalidFormat:  "Ungültiges Datumsformat, erwartet %s.",
		EndBeforeStart: "Das Enddatum darf nicht vor dem Startdatum liegen.",
		NotBefore:      "Das Datum darf nicht vor dem %s liegen.",
		NotAfter:       "Das Datum darf nicht nach dem %s liegen.",
		Exact:          "Das Datum muss der %s sein.",
		Letters:        [3]rune{'T', 'M', 'J'},
	},
}

// Default returns the French catalog.
func Default() Catalog {
	return catalogs[0]
}

// For returns the catalog closest to locale (a BCP 47 tag such as `en-GB`).
// Unknown or malformed locales fall back to the default.
func For(locale string) Catalog {
	if locale == "" {
		return Default()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return catalogs[idx]
}

// DisplayFormat renders format with the catalog placeholder letters.
func (c Catalog) DisplayFormat(format string) string {
	return dateformat.DisplayFormat(format, dateformat.WithLetters(c.Letters[0], c.Letters[1], c.Letters[2]))
}

// InvalidFormatMessage names the expected display format.
func (c Catalog) InvalidFormatMessage(format string) string {
	return fmt.Sprintf(c.InvalidFormat, c.DisplayFormat(format))
}

// NotBeforeMessage renders the default message of a lower bound rule.
func (c Catalog) NotBeforeMessage(bound time.Time, layout dateformat.Layout) string {
	return fmt.Sprintf(c.NotBefore, dateformat.Format(bound, layout))
}

// NotAfterMessage renders the default message of an upper bound rule.
func (c Catalog) NotAfterMessage(bound time.Time, layout dateformat.Layout) string {
	return fmt.Sprintf(c.NotAfter, dateformat.Format(bound, layout))
}

// ExactMessage renders the default message of an exact date rule.
func (c Catalog) ExactMessage(bound time.Time, layout dateformat.Layout) string {
	return fmt.Sprintf(c.Exact, dateformat.Format(bound, layout))
}
