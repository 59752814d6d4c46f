package fsnode

import (
	"errors"
	"syscall"

	"bazil.org/fuse"

	"github.com/chowes/WatFS/internal/retry"
)

// toFuseError converts an error returned by the client package (a
// syscall.Errno on an application-level failure, a *retry.ErrRetriesExceeded
// once the pacer gives up on a transport failure, anything else
// unexpected) into the error shape bazil.org/fuse expects back from a
// Node/Handle callback.
func toFuseError(err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fuse.Errno(errno)
	}
	var exceeded *retry.ErrRetriesExceeded
	if errors.As(err, &exceeded) {
		return fuse.Errno(syscall.ETIMEDOUT)
	}
	return fuse.Errno(syscall.EIO)
}
