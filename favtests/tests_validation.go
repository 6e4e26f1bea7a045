package favtests

import (
	"github.com/favorites-qa/favorites-contract-tests/spectable"

	"github.com/stretchr/testify/require"
)

// DoValidationTests runs one test per row of the validation table, grouped by field.
func DoValidationTests(t *T) {
	table := t.env.params.Table
	for _, field := range table.Fields() {
		cases := table.ForField(field)
		t.Run(string(field), func(t *T) {
			for _, c := range cases {
				t.Run(c.Name, validationCaseTest(c))
			}
		})
	}
}

// validationCaseTest checks one row. A known issue only excuses what follows the status
// check and, for rejections, the check that the message names the field.
func validationCaseTest(c spectable.ValidationCase) func(*T) {
	return func(t *T) {
		draft, err := c.Apply(spectable.ValidPlace())
		require.NoError(t, err)

		resp := t.Submit(draft, t.NewCredential())
		t.RequireStatus(resp, c.Status)
		if !c.ExpectsSuccess() && !c.StatusOnly {
			t.RequireErrorMentioning(resp, string(c.Field))
		}

		if c.KnownIssue != "" {
			t.KnownIssue(c.KnownIssue)
		}
		switch {
		case c.ExpectsSuccess():
			t.RequireRecordEchoing(resp, draft)
		case !c.StatusOnly:
			t.RequireErrorMentioning(resp, c.Error)
		}
	}
}
