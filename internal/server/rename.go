package server

import (
	"context"
	"os"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Rename moves req.Source to req.Dest, both paths resolved against root
// independently so a rename cannot be used to escape it in either
// direction.
func (s *Server) Rename(ctx context.Context, req *wireproto.RenameRequest) (*wireproto.RenameReply, error) {
	from, err := s.translate(req.Source)
	if err != nil {
		return &wireproto.RenameReply{Err: errnoOf(err)}, nil
	}
	to, err := s.translate(req.Dest)
	if err != nil {
		return &wireproto.RenameReply{Err: errnoOf(err)}, nil
	}
	if err := os.Rename(from, to); err != nil {
		return &wireproto.RenameReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.RenameReply{Err: 0}, nil
}
