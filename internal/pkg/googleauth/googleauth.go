package googleauth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

var ErrInvalidAssertion = errors.New("invalid google credential")

// Identity is the subset of the Google ID-token payload the backend needs.
type Identity struct {
	Email string
	Name  string
}

// Verifier validates Google ID tokens against the published Google keys and
// the registered OAuth client id.
type Verifier struct {
	clientID string
}

func New(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify checks signature, issuer, audience and expiry of a raw ID token.
// Any verification failure collapses to ErrInvalidAssertion.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, ErrInvalidAssertion
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, ErrInvalidAssertion
	}

	return &Identity{Email: email, Name: name}, nil
}
