package spectable

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

const (
	TitleMaxLength = 999

	// ForbiddenTitleChars are rejected anywhere in a title.
	ForbiddenTitleChars = "@$%"
)

// Colors is the color enumeration, in the order the service lists it.
var Colors = []string{"BLUE", "GREEN", "RED", "YELLOW"}

// Range is an inclusive numeric range.
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	LatRange = Range{Min: -90, Max: 90}
	LonRange = Range{Min: -180, Max: 180}
)

// RangeFor returns the range of a coordinate field.
func RangeFor(field placeapi.Field) (Range, bool) {
	switch field {
	case placeapi.FieldLat:
		return LatRange, true
	case placeapi.FieldLon:
		return LonRange, true
	}
	return Range{}, false
}

// Quirks are deviations of the deployed service from its documented behavior.
type Quirks struct {
	// MisspelledTitleRequired makes the missing-title message misspell its "required" word.
	MisspelledTitleRequired bool
}

// ObservedQuirks are the quirks of the deployed service at the time the table was written.
var ObservedQuirks = Quirks{MisspelledTitleRequired: true}

// Violation is the first rule a request breaks.
type Violation struct {
	Status  int
	Field   placeapi.Field
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

// Rules describe how the service validates a create-favorite request. Fields are checked in
// the order title, lat, lon, color and the first violation wins.
type Rules struct {
	Catalog Catalog
	Quirks  Quirks
}

// Check applies the field rules to a form body and returns nil if the request is acceptable.
func (r Rules) Check(form url.Values) *Violation {
	if v := r.checkTitle(form); v != nil {
		return v
	}
	for _, f := range []placeapi.Field{placeapi.FieldLat, placeapi.FieldLon} {
		if v := r.checkCoordinate(form, f); v != nil {
			return v
		}
	}
	return r.checkColor(form)
}

func (r Rules) badRequest(field placeapi.Field, message string) *Violation {
	return &Violation{Status: http.StatusBadRequest, Field: field, Message: message}
}

func lookup(form url.Values, field placeapi.Field) (string, bool) {
	values, ok := form[string(field)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (r Rules) checkTitle(form url.Values) *Violation {
	f := placeapi.FieldTitle
	title, ok := lookup(form, f)
	switch {
	case !ok:
		return r.badRequest(f, r.Catalog.RequiredMessage(f, r.Quirks.MisspelledTitleRequired))
	case title == "":
		return r.badRequest(f, r.Catalog.EmptyMessage(f))
	case utf8.RuneCountInString(title) > TitleMaxLength:
		return r.badRequest(f, r.Catalog.TooLongMessage(f, TitleMaxLength))
	case strings.ContainsAny(title, ForbiddenTitleChars):
		return r.badRequest(f, r.Catalog.ForbiddenCharsMessage(f))
	}
	return nil
}

// ParseCoordinate parses a form value as a finite number.
func ParseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (r Rules) checkCoordinate(form url.Values, f placeapi.Field) *Violation {
	raw, ok := lookup(form, f)
	if !ok {
		return r.badRequest(f, r.Catalog.RequiredMessage(f, false))
	}
	v, ok := ParseCoordinate(raw)
	if !ok {
		return r.badRequest(f, r.Catalog.NotANumberMessage(f))
	}
	rng, _ := RangeFor(f)
	if v < rng.Min {
		return r.badRequest(f, r.Catalog.NotLessMessage(f, rng.Min))
	}
	if v > rng.Max {
		return r.badRequest(f, r.Catalog.NotMoreMessage(f, rng.Max))
	}
	return nil
}

func (r Rules) checkColor(form url.Values) *Violation {
	f := placeapi.FieldColor
	color, ok := lookup(form, f)
	if !ok {
		return nil
	}
	for _, c := range Colors {
		if color == c {
			return nil
		}
	}
	return r.badRequest(f, r.Catalog.NotInEnumMessage(f, Colors))
}
