package server

import (
	"context"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Null doubles as a liveness probe and verifier-fetch: it always
// replies with the server's stable startup verifier, never a fresh one
// (spec.md §9 calls returning a fresh verifier here a bug, since it
// would force the client to replay its write cache on every commit).
func (s *Server) Null(ctx context.Context, req *wireproto.NullRequest) (*wireproto.NullReply, error) {
	s.log.Debug("received ping from client")
	return &wireproto.NullReply{Verf: s.verf}, nil
}
