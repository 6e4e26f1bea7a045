package spectable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
)

type caseFile struct {
	Cases []caseRow `yaml:"cases"`
}

type caseRow struct {
	Name       string  `yaml:"name"`
	Field      string  `yaml:"field"`
	Value      *string `yaml:"value"`
	Repeat     int     `yaml:"repeat"`
	Omit       bool    `yaml:"omit"`
	Status     int     `yaml:"status"`
	Error      string  `yaml:"error"`
	StatusOnly bool    `yaml:"status_only"`
	KnownIssue string  `yaml:"known_issue"`
}

// LoadCases reads extra cases from a YAML file. See ParseCases for the format.
func LoadCases(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseCases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseCases parses cases from YAML of the form
//
//	cases:
//	  - name: "count symbols: 500"
//	    field: title
//	    value: q
//	    repeat: 500
//	    status: 200
//	  - name: missing
//	    field: lat
//	    omit: true
//	    status: 400
//	    error: обязательным
//
// A value with repeat > 0 is repeated that many times. Every case is validated.
func ParseCases(data []byte) (Table, error) {
	var f caseFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	t := make(Table, 0, len(f.Cases))
	for i, row := range f.Cases {
		c := ValidationCase{
			Name:       row.Name,
			Field:      placeapi.Field(row.Field),
			Omit:       row.Omit,
			Status:     row.Status,
			Error:      row.Error,
			StatusOnly: row.StatusOnly,
			KnownIssue: row.KnownIssue,
		}
		switch {
		case row.Value == nil && !row.Omit:
			return nil, fmt.Errorf("case %d (%q): needs either a value or omit: true", i+1, row.Name)
		case row.Value != nil:
			c.Value = *row.Value
			if row.Repeat > 0 {
				c.Value = strings.Repeat(c.Value, row.Repeat)
			}
		}
		t = append(t, c)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
