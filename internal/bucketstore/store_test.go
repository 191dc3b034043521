package bucketstore

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestIsAlreadyProvisioned(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "owned by caller",
			err:  minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou"},
			want: true,
		},
		{
			name: "owned by anyone",
			err:  minio.ErrorResponse{Code: "BucketAlreadyExists"},
			want: true,
		},
		{
			name: "access denied",
			err:  minio.ErrorResponse{Code: "AccessDenied"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAlreadyProvisioned(tt.err))
		})
	}
}

func TestIsNoSuchBucket(t *testing.T) {
	assert.True(t, isNoSuchBucket(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, isNoSuchBucket(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNoSuchBucket(errors.New("timeout")))
}
