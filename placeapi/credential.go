package placeapi

import (
	"context"
	"time"
)

// Credential is a token issued by the service. The zero value means that no token is sent.
type Credential struct {
	Token    string
	IssuedAt time.Time
}

// UnknownCredential returns a credential that the service never issued.
func UnknownCredential(token string) Credential {
	return Credential{Token: token}
}

func (c Credential) IsDefined() bool {
	return c.Token != ""
}

// AwaitExpiry blocks until at least age has passed since the credential was issued. The
// service enforces expiry on its own clock, so this is a real wait.
func AwaitExpiry(ctx context.Context, cred Credential, age time.Duration) error {
	issued := cred.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	wait := time.Until(issued.Add(age))
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
