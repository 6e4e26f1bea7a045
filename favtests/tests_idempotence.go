package favtests

import (
	"net/http"

	"github.com/favorites-qa/favorites-contract-tests/spectable"

	"github.com/stretchr/testify/assert"
)

func DoIdempotenceTests(t *T) {
	t.Run("identical submissions create distinct places", func(t *T) {
		cred := t.NewCredential()
		draft := spectable.ValidPlace()

		first := t.Submit(draft, cred)
		t.RequireStatus(first, http.StatusOK)
		second := t.Submit(draft, cred)
		t.RequireStatus(second, http.StatusOK)

		r1 := t.RequireRecordEchoing(first, draft)
		r2 := t.RequireRecordEchoing(second, draft)
		assert.NotEqual(t, r1.ID.JSONString(), r2.ID.JSONString(), "both submissions got the same id")
	})
}
