package spectable

import (
	"errors"
	"fmt"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

// ValidationCase is one row of the table: a value for one field, and what the service is
// expected to answer when that value is submitted with an otherwise valid place.
type ValidationCase struct {
	Name   string
	Field  placeapi.Field
	Value  string
	Omit   bool
	Status int

	// Error must appear in the error message, together with the field name. It is required for
	// a 4xx status unless StatusOnly is set, and must be empty for a 2xx status.
	Error      string
	StatusOnly bool

	// KnownIssue describes a defect of the service that makes this case fail. It excuses the
	// checks of the response body, never the status.
	KnownIssue string
}

func (c ValidationCase) ExpectsSuccess() bool {
	return c.Status >= 200 && c.Status < 300
}

// Apply returns the draft with this case's value in place.
func (c ValidationCase) Apply(draft placeapi.PlaceDraft) (placeapi.PlaceDraft, error) {
	if c.Omit {
		return draft.WithoutField(c.Field)
	}
	return draft.WithField(c.Field, c.Value)
}

func (c ValidationCase) Validate() error {
	if c.Name == "" {
		return errors.New("case has no name")
	}
	if !c.Field.Known() {
		return fmt.Errorf("case %q: unknown field %q", c.Name, c.Field)
	}
	if c.Omit && c.Value != "" {
		return fmt.Errorf("case %q: an omitted field cannot have a value", c.Name)
	}
	switch {
	case c.ExpectsSuccess():
		if c.Error != "" || c.StatusOnly {
			return fmt.Errorf("case %q: a successful case cannot expect an error message", c.Name)
		}
	case c.Status >= 400 && c.Status < 500:
		if c.StatusOnly && c.Error != "" {
			return fmt.Errorf("case %q: a status-only case cannot expect an error message", c.Name)
		}
		if !c.StatusOnly && c.Error == "" {
			return fmt.Errorf("case %q: a client error case must name the expected error message", c.Name)
		}
	default:
		return fmt.Errorf("case %q: status %d is neither success nor client error", c.Name, c.Status)
	}
	return nil
}

// Table is an ordered list of cases.
type Table []ValidationCase

// Validate checks every case, and that case names are unique within a field.
func (t Table) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for _, c := range t {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		key := string(c.Field) + "/" + c.Name
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate case %q for field %q", c.Name, c.Field))
		}
		seen[key] = true
	}
	return errors.Join(errs...)
}

// Fields returns the fields that have cases, in order of first appearance.
func (t Table) Fields() []placeapi.Field {
	var ret []placeapi.Field
	seen := make(map[placeapi.Field]bool)
	for _, c := range t {
		if !seen[c.Field] {
			seen[c.Field] = true
			ret = append(ret, c.Field)
		}
	}
	return ret
}

func (t Table) ForField(field placeapi.Field) Table {
	var ret Table
	for _, c := range t {
		if c.Field == field {
			ret = append(ret, c)
		}
	}
	return ret
}
