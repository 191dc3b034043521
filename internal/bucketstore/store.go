// Package bucketstore provisions and reads per-principal storage buckets
// on MinIO. The bucket name always equals the owning principal's ID; no
// operation accepts a bucket name from outside the service.
package bucketstore

import (
	"context"
	"iter"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rise-and-shine/filevault/internal/domain"
)

// MinIO error response codes handled by the store.
const (
	codeBucketAlreadyOwned  = "BucketAlreadyOwnedByYou"
	codeBucketAlreadyExists = "BucketAlreadyExists"
	codeNoSuchBucket        = "NoSuchBucket"
)

const retryBaseDelay = 100 * time.Millisecond

// Store implements namespace provisioning and namespace-scoped listing
// against a MinIO backend. It is safe for concurrent use.
type Store struct {
	client   *minio.Client
	region   string
	attempts uint
}

// New creates a bucket store connected to the configured MinIO server.
func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Store{
		client:   client,
		region:   cfg.Region,
		attempts: cfg.ProvisionAttempts,
	}, nil
}

// Provision creates the bucket for the given namespace ID in the fixed
// configured region. Re-provisioning an existing bucket is a no-op, so the
// call is safe to retry. Transient backend failures are retried with
// backoff before a BUCKET_PROVISIONING_FAILED error is surfaced.
func (s *Store) Provision(ctx context.Context, namespaceID string) error {
	err := retry.Do(
		func() error {
			err := s.client.MakeBucket(ctx, namespaceID, minio.MakeBucketOptions{Region: s.region})
			if err != nil && isAlreadyProvisioned(err) {
				return nil
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(retryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return errx.Wrap(
			err,
			errx.WithCode(domain.CodeBucketProvisioningFailed),
			errx.WithDetails(errx.D{
				"namespace_id": namespaceID,
				"region":       s.region,
			}),
		)
	}
	return nil
}

// Objects returns a lazy sequence of object records in the given namespace.
// Each range over the sequence starts a fresh listing. A namespace that does
// not exist yet yields an empty sequence, not an error.
func (s *Store) Objects(ctx context.Context, namespaceID string) iter.Seq2[domain.ObjectRecord, error] {
	return func(yield func(domain.ObjectRecord, error) bool) {
		listing := s.client.ListObjects(ctx, namespaceID, minio.ListObjectsOptions{})

		for obj := range listing {
			if obj.Err != nil {
				if isNoSuchBucket(obj.Err) {
					return
				}
				yield(domain.ObjectRecord{}, errx.Wrap(obj.Err, errx.WithDetails(errx.D{
					"namespace_id": namespaceID,
				})))
				return
			}

			rec := domain.ObjectRecord{
				NamespaceID:  namespaceID,
				Key:          obj.Key,
				Size:         obj.Size,
				ETag:         obj.ETag,
				ContentType:  obj.ContentType,
				LastModified: obj.LastModified,
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func isAlreadyProvisioned(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == codeBucketAlreadyOwned || code == codeBucketAlreadyExists
}

func isNoSuchBucket(err error) bool {
	return minio.ToErrorResponse(err).Code == codeNoSuchBucket
}
