package spectable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

func allCatalogs(t *testing.T) []Catalog {
	var ret []Catalog
	for _, l := range []Locale{LocaleRU, LocaleEN} {
		c, err := CatalogFor(string(l))
		require.NoError(t, err)
		ret = append(ret, c)
	}
	return ret
}

func TestCatalogForIsCaseInsensitive(t *testing.T) {
	c, err := CatalogFor(" RU ")
	require.NoError(t, err)
	assert.Equal(t, LocaleRU, c.Locale)
}

func TestCatalogForUnknownLocale(t *testing.T) {
	_, err := CatalogFor("de")
	assert.Error(t, err)
}

func TestRussianFragmentsMatchObservedService(t *testing.T) {
	c, err := CatalogFor("ru")
	require.NoError(t, err)
	assert.Equal(t, "обязательным", c.RequiredIndicator())
	assert.Equal(t, "пустым", c.EmptyIndicator())
	assert.Equal(t, "999 символов", c.TooLongIndicator(999))
	assert.Equal(t, "'lat' должен быть числом", c.NotANumberIndicator(placeapi.FieldLat))
	assert.Equal(t, "не менее -90", c.NotLessIndicator(-90))
	assert.Equal(t, "не более 180", c.NotMoreIndicator(180))
	assert.Equal(t, "BLUE, GREEN, RED, YELLOW", c.ChoicesIndicator(Colors))
	assert.Equal(t, "несуществующий", c.TokenUnknownIndicator())
	assert.Equal(t, "протухший", c.TokenExpiredIndicator())
}

func TestMessagesContainTheirFragments(t *testing.T) {
	for _, c := range allCatalogs(t) {
		t.Run(string(c.Locale), func(t *testing.T) {
			title, lat := placeapi.FieldTitle, placeapi.FieldLat
			assert.Contains(t, c.RequiredMessage(title, false), c.RequiredIndicator())
			assert.NotContains(t, c.RequiredMessage(title, true), c.RequiredIndicator())
			assert.Contains(t, c.RequiredMessage(title, true), "title")
			assert.Contains(t, c.EmptyMessage(title), c.EmptyIndicator())
			assert.Contains(t, c.TooLongMessage(title, 999), c.TooLongIndicator(999))
			assert.Contains(t, c.NotANumberMessage(lat), c.NotANumberIndicator(lat))
			assert.Contains(t, c.NotLessMessage(lat, -90), c.NotLessIndicator(-90))
			assert.Contains(t, c.NotMoreMessage(lat, 90), c.NotMoreIndicator(90))
			assert.Contains(t, c.NotInEnumMessage(placeapi.FieldColor, Colors), c.ChoicesIndicator(Colors))

			for _, m := range []string{c.TokenRequiredMessage(), c.TokenUnknownMessage(), c.TokenExpiredMessage()} {
				assert.Contains(t, m, "token")
			}
			assert.Contains(t, c.TokenRequiredMessage(), c.TokenRequiredIndicator())
			assert.Contains(t, c.TokenUnknownMessage(), c.TokenUnknownIndicator())
			assert.Contains(t, c.TokenExpiredMessage(), c.TokenExpiredIndicator())
		})
	}
}
