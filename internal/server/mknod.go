package server

import (
	"context"

	"github.com/chowes/WatFS/internal/wireproto"
	"golang.org/x/sys/unix"
)

// Mknod creates a file or FIFO named by req.Path with the given mode
// and, for device nodes, rdev. FIFOs are created with mkfifo semantics
// the way the reference implementation special-cases S_ISFIFO.
func (s *Server) Mknod(ctx context.Context, req *wireproto.MknodRequest) (*wireproto.MknodReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.MknodReply{Err: errnoOf(err)}, nil
	}
	if req.Mode&unix.S_IFMT == unix.S_IFIFO {
		err = unix.Mkfifo(path, req.Mode)
	} else {
		err = unix.Mknod(path, req.Mode, int(req.Rdev))
	}
	if err != nil {
		s.log.WithError(err).WithField("path", path).Debug("mknod failed")
		return &wireproto.MknodReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.MknodReply{Err: 0}, nil
}
