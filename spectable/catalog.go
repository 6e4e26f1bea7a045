package spectable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

type Locale string

const (
	// LocaleRU is the language of the deployed service.
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// Catalog holds the wording of one service locale: the full messages the rules render, and the
// fragments that tests look for in those messages.
type Catalog struct {
	Locale Locale

	tokenRequired string
	tokenUnknown  string
	tokenExpired  string

	fieldRequired           string
	fieldRequiredMisspelled string
	fieldEmpty              string
	fieldTooLong            string
	fieldForbiddenChars     string
	notANumber              string
	notLess                 string
	notMore                 string
	notInEnum               string

	requiredWord     string
	emptyWord        string
	unknownWord      string
	expiredWord      string
	tooLongFragment  string
	notANumberPhrase string
	notLessPhrase    string
	notMorePhrase    string
}

var catalogs = map[Locale]Catalog{
	LocaleRU: {
		Locale:                  LocaleRU,
		tokenRequired:           "Параметр 'token' является обязательным",
		tokenUnknown:            "Передан несуществующий 'token'",
		tokenExpired:            "Передан протухший 'token'",
		fieldRequired:           "Параметр '%s' является обязательным",
		fieldRequiredMisspelled: "Параметр '%s' является обзательным",
		fieldEmpty:              "Параметр '%s' не может быть пустым",
		fieldTooLong:            "Параметр '%s' должен содержать не более %d символов",
		fieldForbiddenChars:     "Параметр '%s' содержит недопустимые символы",
		notANumber:              "Параметр '%s' должен быть числом",
		notLess:                 "Параметр '%s' должен быть не менее %s",
		notMore:                 "Параметр '%s' должен быть не более %s",
		notInEnum:               "Параметр '%s' может быть одним из следующих значений: %s",
		requiredWord:            "обязательным",
		emptyWord:               "пустым",
		unknownWord:             "несуществующий",
		expiredWord:             "протухший",
		tooLongFragment:         "%d символов",
		notANumberPhrase:        "'%s' должен быть числом",
		notLessPhrase:           "не менее %s",
		notMorePhrase:           "не более %s",
	},
	LocaleEN: {
		Locale:                  LocaleEN,
		tokenRequired:           "Parameter 'token' is required",
		tokenUnknown:            "Passed a nonexistent 'token'",
		tokenExpired:            "Passed an expired 'token'",
		fieldRequired:           "Parameter '%s' is required",
		fieldRequiredMisspelled: "Parameter '%s' is reqiured",
		fieldEmpty:              "Parameter '%s' must not be empty",
		fieldTooLong:            "Parameter '%s' must be at most %d characters",
		fieldForbiddenChars:     "Parameter '%s' contains forbidden characters",
		notANumber:              "Parameter '%s' must be a number",
		notLess:                 "Parameter '%s' must be not less than %s",
		notMore:                 "Parameter '%s' must be not more than %s",
		notInEnum:               "Parameter '%s' must be one of: %s",
		requiredWord:            "required",
		emptyWord:               "empty",
		unknownWord:             "nonexistent",
		expiredWord:             "expired",
		tooLongFragment:         "%d characters",
		notANumberPhrase:        "'%s' must be a number",
		notLessPhrase:           "not less than %s",
		notMorePhrase:           "not more than %s",
	},
}

// CatalogFor returns the catalog of a locale, matched case-insensitively.
func CatalogFor(locale string) (Catalog, error) {
	c, ok := catalogs[Locale(strings.ToLower(strings.TrimSpace(locale)))]
	if !ok {
		return Catalog{}, fmt.Errorf("unknown locale %q (expected %q or %q)", locale, LocaleRU, LocaleEN)
	}
	return c, nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fragments expected in error messages.

func (c Catalog) RequiredIndicator() string      { return c.requiredWord }
func (c Catalog) EmptyIndicator() string         { return c.emptyWord }
func (c Catalog) TokenRequiredIndicator() string { return c.requiredWord }
func (c Catalog) TokenUnknownIndicator() string  { return c.unknownWord }
func (c Catalog) TokenExpiredIndicator() string  { return c.expiredWord }

func (c Catalog) TooLongIndicator(max int) string {
	return fmt.Sprintf(c.tooLongFragment, max)
}

func (c Catalog) NotANumberIndicator(field placeapi.Field) string {
	return fmt.Sprintf(c.notANumberPhrase, field)
}

func (c Catalog) NotLessIndicator(bound float64) string {
	return fmt.Sprintf(c.notLessPhrase, formatBound(bound))
}

func (c Catalog) NotMoreIndicator(bound float64) string {
	return fmt.Sprintf(c.notMorePhrase, formatBound(bound))
}

func (c Catalog) ChoicesIndicator(choices []string) string {
	return strings.Join(choices, ", ")
}

// Full messages, as the service renders them.

func (c Catalog) TokenRequiredMessage() string { return c.tokenRequired }
func (c Catalog) TokenUnknownMessage() string  { return c.tokenUnknown }
func (c Catalog) TokenExpiredMessage() string  { return c.tokenExpired }

func (c Catalog) RequiredMessage(field placeapi.Field, misspelled bool) string {
	if misspelled {
		return fmt.Sprintf(c.fieldRequiredMisspelled, field)
	}
	return fmt.Sprintf(c.fieldRequired, field)
}

func (c Catalog) EmptyMessage(field placeapi.Field) string {
	return fmt.Sprintf(c.fieldEmpty, field)
}

func (c Catalog) TooLongMessage(field placeapi.Field, max int) string {
	return fmt.Sprintf(c.fieldTooLong, field, max)
}

func (c Catalog) ForbiddenCharsMessage(field placeapi.Field) string {
	return fmt.Sprintf(c.fieldForbiddenChars, field)
}

func (c Catalog) NotANumberMessage(field placeapi.Field) string {
	return fmt.Sprintf(c.notANumber, field)
}

func (c Catalog) NotLessMessage(field placeapi.Field, bound float64) string {
	return fmt.Sprintf(c.notLess, field, formatBound(bound))
}

func (c Catalog) NotMoreMessage(field placeapi.Field, bound float64) string {
	return fmt.Sprintf(c.notMore, field, formatBound(bound))
}

func (c Catalog) NotInEnumMessage(field placeapi.Field, choices []string) string {
	return fmt.Sprintf(c.notInEnum, field, c.ChoicesIndicator(choices))
}
