package server

import (
	"context"
	"syscall"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Lookup probes for the existence of req.Path and reports ENOENT (or
// another stat errno) if it does not exist. WatFS file handles are
// paths, so there is nothing else for Lookup to hand back; the upper
// layer adapter uses it purely to surface ENOENT early (spec.md §4.6).
func (s *Server) Lookup(ctx context.Context, req *wireproto.LookupRequest) (*wireproto.LookupReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.LookupReply{Err: errnoOf(err)}, nil
	}
	if err := syscall.Access(path, 0); err != nil {
		return &wireproto.LookupReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.LookupReply{Err: 0}, nil
}
