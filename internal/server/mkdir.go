package server

import (
	"context"
	"os"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Mkdir creates the directory named by req.Path with the given mode.
func (s *Server) Mkdir(ctx context.Context, req *wireproto.MkdirRequest) (*wireproto.MkdirReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.MkdirReply{Err: errnoOf(err)}, nil
	}
	if err := os.Mkdir(path, os.FileMode(req.Mode)); err != nil {
		return &wireproto.MkdirReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.MkdirReply{Err: 0}, nil
}
