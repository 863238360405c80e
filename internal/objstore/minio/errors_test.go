package minio

import (
	"context"
	"errors"
	"net/http"
	"testing"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"github.com/imgfit/imgfit/internal/errs"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{
			name: "404 status",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusNotFound, Code: "NoSuchKey"},
			pred: errs.IsNotFound,
		},
		{
			name: "NoSuchBucket code without status",
			err:  miniogo.ErrorResponse{Code: "NoSuchBucket"},
			pred: errs.IsNotFound,
		},
		{
			name: "403 status",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusForbidden, Code: "AccessDenied"},
			pred: errs.IsPermissionDenied,
		},
		{
			name: "400 status",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusBadRequest, Code: "InvalidBucketName"},
			pred: errs.IsInvalidInput,
		},
		{
			name: "throttling",
			err:  miniogo.ErrorResponse{Code: "SlowDown"},
			pred: errs.IsTimeout,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			pred: errs.IsTimeout,
		},
		{
			name: "plain network error",
			err:  errors.New("connection reset by peer"),
			pred: errs.IsStoreFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err, "op failed")
			assert.True(t, tt.pred(mapped), "got %v", mapped)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, mapError(nil, "noop"))
}

func TestMapError_PreservesCause(t *testing.T) {
	cause := errors.New("tls handshake failure")
	mapped := mapError(cause, "put failed")
	assert.ErrorIs(t, mapped, cause)
	assert.Contains(t, mapped.Error(), "put failed")
}
