// Package uploads contains the namespace-scoped query use cases.
package uploads

import (
	"context"
	"iter"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/filevault/internal/domain"
)

// ObjectLister is the storage backend's namespace-scoped listing primitive.
type ObjectLister interface {
	// Objects returns a lazy sequence of object records in the given
	// namespace. An absent namespace yields an empty sequence.
	Objects(ctx context.Context, namespaceID string) iter.Seq2[domain.ObjectRecord, error]
}

// ListIn is the upload listing request. The authenticated principal's own
// ID selects the namespace; there is no separate namespace parameter.
type ListIn struct {
	UserID string `params:"user_id" json:"user_id" validate:"required,uuid4"`
}

// ListOut is the upload listing response.
type ListOut struct {
	Uploads []domain.ObjectRecord `json:"uploads"`
}

// List resolves the objects visible to a principal, which are exactly the
// objects of the bucket named by the principal's ID.
type List struct {
	store ObjectLister
}

// NewList creates the List use case.
func NewList(store ObjectLister) *List {
	return &List{store: store}
}

// OperationID implements ucdef.UserAction.
func (uc *List) OperationID() string { return "uploads.list" }

// Execute lists the principal's uploads. A principal with no bucket or an
// empty bucket gets an empty slice, never an error.
func (uc *List) Execute(ctx context.Context, in *ListIn) (*ListOut, error) {
	records := make([]domain.ObjectRecord, 0)

	for rec, err := range uc.store.Objects(ctx, in.UserID) {
		if err != nil {
			return nil, errx.Wrap(err)
		}
		records = append(records, rec)
	}

	return &ListOut{Uploads: records}, nil
}
