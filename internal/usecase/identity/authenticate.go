package identity

import (
	"context"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/pkg/hasher"
)

// dummySecretHash is compared against when the username is unknown, so that
// authentication latency does not reveal whether a username exists.
const dummySecretHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthenticateIn is the authentication request.
type AuthenticateIn struct {
	Username string `json:"username" validate:"required"  mask:"true"`
	Secret   string `json:"secret"   validate:"required"  mask:"true"`
}

// AuthenticateOut is the authentication response.
type AuthenticateOut struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Authenticate verifies a username/secret pair.
type Authenticate struct {
	dir Directory
}

// NewAuthenticate creates the Authenticate use case.
func NewAuthenticate(dir Directory) *Authenticate {
	return &Authenticate{dir: dir}
}

// OperationID implements ucdef.UserAction.
func (uc *Authenticate) OperationID() string { return "identity.authenticate" }

// Execute authenticates a principal. Unknown username and wrong secret both
// produce the same INVALID_CREDENTIALS error.
func (uc *Authenticate) Execute(ctx context.Context, in *AuthenticateIn) (*AuthenticateOut, error) {
	p, err := uc.dir.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	if p == nil {
		hasher.Compare(in.Secret, dummySecretHash)
		return nil, invalidCredentials()
	}

	if !hasher.Compare(in.Secret, p.SecretHash) {
		return nil, invalidCredentials()
	}

	return &AuthenticateOut{
		UserID:   p.ID,
		Username: p.Username,
	}, nil
}

func invalidCredentials() error {
	return errx.New(
		"username or secret is invalid",
		errx.WithCode(domain.CodeInvalidCredentials),
		errx.WithType(errx.T_Authentication),
	)
}
