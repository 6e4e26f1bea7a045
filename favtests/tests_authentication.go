package favtests

import (
	"github.com/favorites-qa/favorites-contract-tests/placeapi"
	"github.com/favorites-qa/favorites-contract-tests/spectable"
)

func DoAuthenticationTests(t *T) {
	for _, c := range spectable.AuthCases(t.Catalog()) {
		c := c
		t.Run(c.Name, func(t *T) {
			var cred placeapi.Credential
			switch c.Mode {
			case spectable.CredentialUnknown:
				cred = placeapi.UnknownCredential(spectable.UnknownToken)
			case spectable.CredentialExpired:
				cred = t.NewCredential()
				t.AwaitCredentialExpiry(cred)
			}

			resp := t.Submit(spectable.ValidPlace(), cred)
			t.RequireStatus(resp, c.Status)
			t.RequireErrorMentioning(resp, placeapi.TokenCookie, c.Indicator)
		})
	}
}
