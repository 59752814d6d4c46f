// Package server implements the WatFS server operation handlers: one
// per RPC, each performing the single local-filesystem syscall of the
// corresponding name under the server's configured root directory, in
// the stateless, open-operate-close style of spec.md §4.3.
package server

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/chowes/WatFS/internal/logging"
	"github.com/chowes/WatFS/internal/metrics"
	"github.com/chowes/WatFS/internal/verifier"
	"github.com/chowes/WatFS/internal/wireproto"
	"github.com/sirupsen/logrus"
)

// Server implements wireproto.WatFSServer against a local root directory.
type Server struct {
	root    string
	verf    int64
	log     *logrus.Entry
	metrics *metrics.Registry
}

// New creates a Server rooted at rootDir, which must already exist.
// Its verifier is chosen once here and held for the server's lifetime,
// per spec.md §3.
func New(rootDir string, reg *metrics.Registry) (*Server, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("watfs: root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watfs: root %q is not a directory", rootDir)
	}
	s := &Server{
		root:    trimRoot(rootDir),
		verf:    verifier.New(),
		log:     logging.Component("server"),
		metrics: reg,
	}
	s.log.WithField("root", s.root).WithField("verf", s.verf).Info("WatFS server root directory set")
	return s, nil
}

var _ wireproto.WatFSServer = (*Server)(nil)

// errnoOf extracts the standard errno value a handler should report to
// the client for err, or 0 if err is nil. Protocol-level errors that
// don't carry a syscall.Errno (should not occur for local filesystem
// calls) are reported as EIO, per spec.md §7's protocol-error category.
func errnoOf(err error) wireproto.Errno {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return wireproto.Errno(errno)
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		if errors.As(pathErr.Err, &errno) {
			return wireproto.Errno(errno)
		}
	}
	if errors.Is(err, ErrOutsideRoot) {
		return wireproto.Errno(syscall.EACCES)
	}
	return wireproto.Errno(syscall.EIO)
}
