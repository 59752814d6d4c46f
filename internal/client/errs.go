package client

import (
	"syscall"

	"github.com/chowes/WatFS/internal/wireproto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errnoError turns a wire Errno into a Go error, or nil for success.
func errnoError(e wireproto.Errno) error {
	if e == 0 {
		return nil
	}
	return syscall.Errno(e)
}

// retryable reports whether err, returned by the gRPC transport itself
// (as opposed to an application-level Errno on an otherwise successful
// reply), should be retried by the pacer. Only conditions that plausibly
// clear on their own — the server not yet being up, a transient
// disconnect, a slow attempt timing out — are retried, as is any error
// that carries no gRPC status at all; any other status code is treated
// as a permanent failure of this attempt.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return true
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}
