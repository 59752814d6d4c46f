package server

import (
	"context"
	"os"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Unlink removes the file named by req.Path.
func (s *Server) Unlink(ctx context.Context, req *wireproto.UnlinkRequest) (*wireproto.UnlinkReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.UnlinkReply{Err: errnoOf(err)}, nil
	}
	if err := os.Remove(path); err != nil {
		return &wireproto.UnlinkReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.UnlinkReply{Err: 0}, nil
}
