package server

import (
	"context"
	"os"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Truncate resizes the file named by req.Path to req.Size.
func (s *Server) Truncate(ctx context.Context, req *wireproto.TruncateRequest) (*wireproto.TruncateReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.TruncateReply{Err: errnoOf(err)}, nil
	}
	if err := os.Truncate(path, req.Size); err != nil {
		return &wireproto.TruncateReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.TruncateReply{Err: 0}, nil
}
