package spectable

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

const missingTitleIssue = "the service misspells the required-field word in the missing title message"

// ValidPlace is the place every case starts from before its own value is applied.
func ValidPlace() placeapi.PlaceDraft {
	return placeapi.NewPlaceDraft("Тестовое место", 55.7558, 37.6173).WithColor("BLUE")
}

func accepted(field placeapi.Field, name, value string) ValidationCase {
	return ValidationCase{Name: name, Field: field, Value: value, Status: http.StatusOK}
}

func rejected(field placeapi.Field, name, value, message string) ValidationCase {
	return ValidationCase{Name: name, Field: field, Value: value, Status: http.StatusBadRequest, Error: message}
}

func missing(field placeapi.Field, message string) ValidationCase {
	return ValidationCase{Name: "missing", Field: field, Omit: true, Status: http.StatusBadRequest, Error: message}
}

// DefaultTable returns every case of the suite, with messages in the catalog's locale.
func DefaultTable(cat Catalog) Table {
	var t Table
	t = append(t, titleCases(cat)...)
	t = append(t, coordinateCases(cat, placeapi.FieldLat, LatRange, 10)...)
	t = append(t, coordinateCases(cat, placeapi.FieldLon, LonRange, 20)...)
	t = append(t, colorCases(cat)...)
	return t
}

func titleCases(cat Catalog) Table {
	f := placeapi.FieldTitle
	t := Table{
		rejected(f, "empty", "", cat.EmptyIndicator()),
		accepted(f, "count symbols: 1", "1"),
		accepted(f, "count symbols: 2", "2"),
		accepted(f, "count symbols: 998", strings.Repeat("q", TitleMaxLength-1)),
		accepted(f, "count symbols: 999", strings.Repeat("q", TitleMaxLength)),
		rejected(f, "count symbols: 1000", strings.Repeat("q", TitleMaxLength+1), cat.TooLongIndicator(TitleMaxLength)),
		accepted(f, "cyrillic alphabet", "кириллица"),
		accepted(f, "latin alphabet", "lat"),
		accepted(f, "numbers", "1542"),
		accepted(f, "punctuation marks", ".?!,:;"),
	}
	for _, s := range []string{"@", "$", "%%%"} {
		t = append(t, ValidationCase{
			Name:       "special characters: " + s,
			Field:      f,
			Value:      s,
			Status:     http.StatusBadRequest,
			StatusOnly: true,
		})
	}
	m := missing(f, cat.RequiredIndicator())
	m.KnownIssue = missingTitleIssue
	return append(t, m)
}

// coordinateCases covers a numeric field at and around both bounds, across the whole range in
// fixed steps, and with values that are not numbers.
func coordinateCases(cat Catalog, f placeapi.Field, rng Range, step float64) Table {
	name := func(v float64) string {
		return fmt.Sprintf("%s: %s", f, placeapi.FormatCoordinate(v))
	}
	t := Table{
		rejected(f, "empty", "", cat.NotANumberIndicator(f)),
		rejected(f, "not a number", string(f), cat.NotANumberIndicator(f)),
		rejected(f, name(rng.Min-1), placeapi.FormatCoordinate(rng.Min-1), cat.NotLessIndicator(rng.Min)),
	}
	seen := make(map[float64]bool)
	addAccepted := func(v float64) {
		if !seen[v] {
			seen[v] = true
			t = append(t, accepted(f, name(v), placeapi.FormatCoordinate(v)))
		}
	}
	addAccepted(rng.Min)
	addAccepted(rng.Min + 1)
	for v := rng.Min + step; v < rng.Max; v += step {
		addAccepted(v)
	}
	addAccepted(rng.Max - 1)
	addAccepted(rng.Max)
	t = append(t,
		rejected(f, name(rng.Max+1), placeapi.FormatCoordinate(rng.Max+1), cat.NotMoreIndicator(rng.Max)),
		missing(f, cat.RequiredIndicator()),
	)
	return t
}

func colorCases(cat Catalog) Table {
	f := placeapi.FieldColor
	var t Table
	for _, c := range Colors {
		t = append(t, accepted(f, c, c))
	}
	return append(t,
		ValidationCase{Name: "absent", Field: f, Omit: true, Status: http.StatusOK},
		rejected(f, "invalid", "color", cat.ChoicesIndicator(Colors)),
	)
}
