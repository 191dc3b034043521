package identity

import (
	"context"
	"time"

	"github.com/code19m/errx"
)

// GetUserIn is the user view request.
type GetUserIn struct {
	UserID string `params:"user_id" json:"user_id" validate:"required,uuid4"`
}

// GetUserOut is the user view response.
type GetUserOut struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUser reads principal metadata by ID.
type GetUser struct {
	dir Directory
}

// NewGetUser creates the GetUser use case.
func NewGetUser(dir Directory) *GetUser {
	return &GetUser{dir: dir}
}

// OperationID implements ucdef.UserAction.
func (uc *GetUser) OperationID() string { return "identity.get_user" }

// Execute returns the principal's public metadata.
func (uc *GetUser) Execute(ctx context.Context, in *GetUserIn) (*GetUserOut, error) {
	p, err := uc.dir.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &GetUserOut{
		UserID:    p.ID,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
	}, nil
}
