package placeapi

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Field is the name of a form field accepted by the favorites endpoint.
type Field string

const (
	FieldTitle Field = "title"
	FieldLat   Field = "lat"
	FieldLon   Field = "lon"
	FieldColor Field = "color"
)

// AllFields lists the fields in the order they are checked by the service.
var AllFields = []Field{FieldTitle, FieldLat, FieldLon, FieldColor}

func (f Field) Known() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

// PlaceDraft is the body of a create-favorite request. Every field is either omitted or holds
// the raw form value that will be sent, which may be deliberately invalid.
type PlaceDraft struct {
	Title ldvalue.OptionalString
	Lat   ldvalue.OptionalString
	Lon   ldvalue.OptionalString
	Color ldvalue.OptionalString
}

// DraftError is returned for a draft that cannot be serialized.
type DraftError struct {
	Field  Field
	Reason string
}

func (e *DraftError) Error() string {
	if e.Field == "" {
		return "invalid place draft: " + e.Reason
	}
	return fmt.Sprintf("invalid place draft field %q: %s", e.Field, e.Reason)
}

// NewPlaceDraft returns a draft with the three required fields set and no color.
func NewPlaceDraft(title string, lat, lon float64) PlaceDraft {
	return PlaceDraft{
		Title: ldvalue.NewOptionalString(title),
		Lat:   ldvalue.NewOptionalString(FormatCoordinate(lat)),
		Lon:   ldvalue.NewOptionalString(FormatCoordinate(lon)),
	}
}

// FormatCoordinate renders a number the way it is written in a form body, with no trailing
// zeroes or exponent.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (d PlaceDraft) WithColor(color string) PlaceDraft {
	d.Color = ldvalue.NewOptionalString(color)
	return d
}

// WithField returns a copy of the draft in which the field carries the given raw value.
func (d PlaceDraft) WithField(field Field, value string) (PlaceDraft, error) {
	p, err := d.slot(field)
	if err != nil {
		return d, err
	}
	*p = ldvalue.NewOptionalString(value)
	return d, nil
}

// WithoutField returns a copy of the draft in which the field is omitted from the request.
func (d PlaceDraft) WithoutField(field Field) (PlaceDraft, error) {
	p, err := d.slot(field)
	if err != nil {
		return d, err
	}
	*p = ldvalue.OptionalString{}
	return d, nil
}

// Get returns the raw value of a field, which is undefined if the field is omitted or unknown.
func (d PlaceDraft) Get(field Field) ldvalue.OptionalString {
	p, err := d.slot(field)
	if err != nil {
		return ldvalue.OptionalString{}
	}
	return *p
}

func (d *PlaceDraft) slot(field Field) (*ldvalue.OptionalString, error) {
	switch field {
	case FieldTitle:
		return &d.Title, nil
	case FieldLat:
		return &d.Lat, nil
	case FieldLon:
		return &d.Lon, nil
	case FieldColor:
		return &d.Color, nil
	}
	return nil, &DraftError{Field: field, Reason: "unknown field"}
}

// Validate checks that the draft can be encoded as a form body. It does not apply any of the
// service's own rules, since drafts are often meant to break them.
func (d PlaceDraft) Validate() error {
	defined := 0
	for _, f := range AllFields {
		v := d.Get(f)
		if !v.IsDefined() {
			continue
		}
		defined++
		if !utf8.ValidString(v.StringValue()) {
			return &DraftError{Field: f, Reason: "value is not valid UTF-8"}
		}
	}
	if defined == 0 {
		return &DraftError{Reason: "no fields are set"}
	}
	return nil
}

// Form validates the draft and returns it as form values. Omitted fields are absent from the
// result; fields set to an empty string are present with an empty value.
func (d PlaceDraft) Form() (url.Values, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	form := make(url.Values)
	for _, f := range AllFields {
		if v := d.Get(f); v.IsDefined() {
			form.Set(string(f), v.StringValue())
		}
	}
	return form, nil
}
