package uploads_test

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/usecase/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister serves object records per namespace. Namespaces without an
// entry behave like absent buckets and yield nothing.
type fakeLister struct {
	objects map[string][]domain.ObjectRecord
	err     error
}

func (l *fakeLister) Objects(_ context.Context, namespaceID string) iter.Seq2[domain.ObjectRecord, error] {
	return func(yield func(domain.ObjectRecord, error) bool) {
		if l.err != nil {
			yield(domain.ObjectRecord{}, l.err)
			return
		}
		for _, rec := range l.objects[namespaceID] {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func record(ns, key string, size int64) domain.ObjectRecord {
	return domain.ObjectRecord{
		NamespaceID:  ns,
		Key:          key,
		Size:         size,
		ETag:         "etag-" + key,
		ContentType:  "application/octet-stream",
		LastModified: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestListReturnsOwnNamespaceOnly(t *testing.T) {
	ctx := context.Background()
	alice := uuid.NewString()
	bob := uuid.NewString()

	lister := &fakeLister{objects: map[string][]domain.ObjectRecord{
		alice: {record(alice, "photo.jpg", 1024), record(alice, "notes.txt", 42)},
		bob:   {record(bob, "secret.pdf", 2048)},
	}}
	uc := uploads.NewList(lister)

	out, err := uc.Execute(ctx, &uploads.ListIn{UserID: alice})
	require.NoError(t, err)
	require.Len(t, out.Uploads, 2)
	for _, rec := range out.Uploads {
		assert.Equal(t, alice, rec.NamespaceID)
	}
	assert.Equal(t, "photo.jpg", out.Uploads[0].Key)
	assert.Equal(t, "notes.txt", out.Uploads[1].Key)
}

func TestListEmptyNamespace(t *testing.T) {
	ctx := context.Background()
	uc := uploads.NewList(&fakeLister{objects: map[string][]domain.ObjectRecord{}})

	out, err := uc.Execute(ctx, &uploads.ListIn{UserID: uuid.NewString()})
	require.NoError(t, err)

	assert.NotNil(t, out.Uploads)
	assert.Empty(t, out.Uploads)
}

func TestListPropagatesBackendError(t *testing.T) {
	ctx := context.Background()
	uc := uploads.NewList(&fakeLister{err: errors.New("listing interrupted")})

	out, err := uc.Execute(ctx, &uploads.ListIn{UserID: uuid.NewString()})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "listing interrupted")
}
