package server

import (
	"context"
	"syscall"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Rmdir removes the directory named by req.Path. syscall.Rmdir is used
// directly rather than os.Remove so a non-empty directory reports
// ENOTEMPTY rather than a generic removal error.
func (s *Server) Rmdir(ctx context.Context, req *wireproto.RmdirRequest) (*wireproto.RmdirReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.RmdirReply{Err: errnoOf(err)}, nil
	}
	if err := syscall.Rmdir(path); err != nil {
		return &wireproto.RmdirReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.RmdirReply{Err: 0}, nil
}
