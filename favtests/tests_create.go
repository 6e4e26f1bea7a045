package favtests

import (
	"net/http"

	"github.com/favorites-qa/favorites-contract-tests/placeapi"
	"github.com/favorites-qa/favorites-contract-tests/spectable"

	"github.com/stretchr/testify/assert"
)

func DoCreateTests(t *T) {
	t.Run("required fields only", func(t *T) {
		draft := placeapi.NewPlaceDraft("Test", 55.7558, 37.6173)
		resp := t.Submit(draft, t.NewCredential())
		t.RequireStatus(resp, http.StatusOK)
		rec := t.RequireRecordEchoing(resp, draft)
		assert.False(t, rec.Color.IsDefined())
	})

	t.Run("all fields", func(t *T) {
		draft := spectable.ValidPlace()
		resp := t.Submit(draft, t.NewCredential())
		t.RequireStatus(resp, http.StatusOK)
		t.RequireRecordEchoing(resp, draft)
	})
}
