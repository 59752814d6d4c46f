package server

import (
	"context"

	"github.com/chowes/WatFS/internal/wireproto"
	"golang.org/x/sys/unix"
)

// Utimens sets the access and modification times of req.Path, mirroring
// the reference implementation's utimensat(AT_FDCWD, path, ts,
// AT_SYMLINK_NOFOLLOW) call.
func (s *Server) Utimens(ctx context.Context, req *wireproto.UtimensRequest) (*wireproto.UtimensReply, error) {
	path, err := s.translate(req.Path)
	if err != nil {
		return &wireproto.UtimensReply{Err: errnoOf(err)}, nil
	}

	ts := []unix.Timespec{
		{Sec: req.AtimeSec, Nsec: req.AtimeNsec},
		{Sec: req.MtimeSec, Nsec: req.MtimeNsec},
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &wireproto.UtimensReply{Err: errnoOf(err)}, nil
	}
	return &wireproto.UtimensReply{Err: 0}, nil
}
