package server

import (
	"context"

	"github.com/chowes/WatFS/internal/rawattr"
	"github.com/chowes/WatFS/internal/wireproto"
)

// GetAttr fills in the attribute record for the file or directory named
// by req.Path, by statting the translated server path. A stat failure
// is reported through the reply's Err field rather than as a transport
// error, per spec.md §4.3.
func (s *Server) GetAttr(ctx context.Context, req *wireproto.GetAttrRequest) (*wireproto.GetAttrReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.GetAttrReply{Err: errnoOf(err)}, nil
	}
	attr, err := rawattr.StatPath(path)
	if err != nil {
		return &wireproto.GetAttrReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.GetAttrReply{Attr: attr, Err: 0}, nil
}
