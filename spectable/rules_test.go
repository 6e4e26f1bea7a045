package spectable

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

func validForm() url.Values {
	return url.Values{"title": {"Test"}, "lat": {"55.7558"}, "lon": {"37.6173"}}
}

func TestRulesAcceptValidForm(t *testing.T) {
	r := Rules{Catalog: catalogs[LocaleEN]}
	assert.Nil(t, r.Check(validForm()))

	f := validForm()
	f.Set("color", "YELLOW")
	assert.Nil(t, r.Check(f))
}

func TestRulesViolations(t *testing.T) {
	r := Rules{Catalog: catalogs[LocaleEN]}
	cases := []struct {
		name    string
		field   string
		value   *string
		message string
	}{
		{"missing title", "title", nil, "Parameter 'title' is required"},
		{"empty title", "title", strPtr(""), "Parameter 'title' must not be empty"},
		{"long title", "title", strPtr(strings.Repeat("я", 1000)), "Parameter 'title' must be at most 999 characters"},
		{"forbidden title", "title", strPtr("a@b"), "Parameter 'title' contains forbidden characters"},
		{"missing lat", "lat", nil, "Parameter 'lat' is required"},
		{"text lat", "lat", strPtr("north"), "Parameter 'lat' must be a number"},
		{"NaN lat", "lat", strPtr("NaN"), "Parameter 'lat' must be a number"},
		{"low lat", "lat", strPtr("-90.5"), "Parameter 'lat' must be not less than -90"},
		{"high lon", "lon", strPtr("181"), "Parameter 'lon' must be not more than 180"},
		{"bad color", "color", strPtr("blue"), "Parameter 'color' must be one of: BLUE, GREEN, RED, YELLOW"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := validForm()
			if c.value == nil {
				f.Del(c.field)
			} else {
				f.Set(c.field, *c.value)
			}
			v := r.Check(f)
			require.NotNil(t, v)
			assert.Equal(t, http.StatusBadRequest, v.Status)
			assert.Equal(t, placeapi.Field(c.field), v.Field)
			assert.Equal(t, c.message, v.Error())
		})
	}
}

func TestRulesCountTitleInCharacters(t *testing.T) {
	r := Rules{Catalog: catalogs[LocaleRU]}
	f := validForm()
	f.Set("title", strings.Repeat("я", TitleMaxLength))
	assert.Nil(t, r.Check(f))
}

func TestRulesFirstViolationWins(t *testing.T) {
	r := Rules{Catalog: catalogs[LocaleEN]}
	v := r.Check(url.Values{"lat": {"x"}, "color": {"PINK"}})
	require.NotNil(t, v)
	assert.Equal(t, placeapi.FieldTitle, v.Field)
}

func TestRulesQuirk(t *testing.T) {
	r := Rules{Catalog: catalogs[LocaleRU], Quirks: ObservedQuirks}
	f := validForm()
	f.Del("title")
	assert.Equal(t, "Параметр 'title' является обзательным", r.Check(f).Message)

	f = validForm()
	f.Del("lat")
	assert.Equal(t, "Параметр 'lat' является обязательным", r.Check(f).Message)
}

func TestParseCoordinate(t *testing.T) {
	v, ok := ParseCoordinate(" -89.5 ")
	assert.True(t, ok)
	assert.Equal(t, -89.5, v)
	for _, s := range []string{"", "lat", "Inf", "-inf", "nan", "1,5"} {
		_, ok := ParseCoordinate(s)
		assert.False(t, ok, s)
	}
}

func TestRangeFor(t *testing.T) {
	r, ok := RangeFor(placeapi.FieldLon)
	assert.True(t, ok)
	assert.True(t, r.Contains(-180))
	assert.False(t, r.Contains(180.1))
	_, ok = RangeFor(placeapi.FieldTitle)
	assert.False(t, ok)
}

func strPtr(s string) *string { return &s }
