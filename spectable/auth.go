package spectable

import "net/http"

// CredentialMode is the kind of credential an authentication case sends.
type CredentialMode int

const (
	CredentialMissing CredentialMode = iota
	CredentialUnknown
	CredentialExpired
)

func (m CredentialMode) String() string {
	switch m {
	case CredentialMissing:
		return "missing"
	case CredentialUnknown:
		return "unknown"
	case CredentialExpired:
		return "expired"
	}
	return "invalid"
}

// UnknownToken is a syntactically plausible token that the service never issued.
const UnknownToken = "token"

// AuthCase is a request with a valid place but an unusable credential.
type AuthCase struct {
	Name      string
	Mode      CredentialMode
	Status    int
	Indicator string
}

// AuthCases lists the authentication failures, each of which has its own message.
func AuthCases(cat Catalog) []AuthCase {
	return []AuthCase{
		{Name: "missing token", Mode: CredentialMissing, Status: http.StatusUnauthorized, Indicator: cat.TokenRequiredIndicator()},
		{Name: "unknown token", Mode: CredentialUnknown, Status: http.StatusUnauthorized, Indicator: cat.TokenUnknownIndicator()},
		{Name: "expired token", Mode: CredentialExpired, Status: http.StatusUnauthorized, Indicator: cat.TokenExpiredIndicator()},
	}
}
