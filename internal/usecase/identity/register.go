package identity

import (
	"context"

	"github.com/code19m/errx"
	"github.com/google/uuid"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/pkg/hasher"
	"github.com/rise-and-shine/filevault/pkg/logger"
)

// RegisterIn is the registration request.
type RegisterIn struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Secret   string `json:"secret"   validate:"required"               mask:"true"`
}

// RegisterOut is the registration response. It never carries the secret.
type RegisterOut struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`

	// StorageReady reports whether the principal's bucket was created.
	// When false, the bucket can be obtained later via re-provisioning;
	// the registration itself has already succeeded.
	StorageReady bool `json:"storage_ready"`
}

// Register creates a new principal and provisions its storage bucket.
type Register struct {
	dir  Directory
	prov Provisioner
	log  logger.Logger
}

// NewRegister creates the Register use case.
func NewRegister(dir Directory, prov Provisioner, log logger.Logger) *Register {
	return &Register{
		dir:  dir,
		prov: prov,
		log:  log.Named("usecase.register"),
	}
}

// OperationID implements ucdef.UserAction.
func (uc *Register) OperationID() string { return "identity.register" }

// Execute registers a new principal.
//
// The principal ID is generated here and becomes the name of the
// principal's bucket. A bucket creation failure is logged and reflected in
// StorageReady but does not undo the registration.
func (uc *Register) Execute(ctx context.Context, in *RegisterIn) (*RegisterOut, error) {
	secretHash, err := hasher.Hash(in.Secret)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	created, err := uc.dir.Create(ctx, &domain.Principal{
		ID:         uuid.NewString(),
		Username:   in.Username,
		SecretHash: secretHash,
	})
	if err != nil {
		return nil, errx.Wrap(err)
	}

	out := &RegisterOut{
		UserID:       created.ID,
		Username:     created.Username,
		StorageReady: true,
	}

	if err := uc.prov.Provision(ctx, created.ID); err != nil {
		uc.log.WithContext(ctx).With("user_id", created.ID).Errorx(err)
		out.StorageReady = false
	}

	return out, nil
}
