package server

import (
	"io"
	"os"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Read opens req.Handle read-only, seeks to req.Offset, reads up to
// req.Count bytes into a server-side buffer, then streams it back to
// the client in MSG-byte chunks (spec.md §4.1, §4.3). EOF before Count
// bytes have been delivered ends the stream with no error; a mid-read
// I/O error is signalled by a final chunk with Count = -1.
func (s *Server) Read(req *wireproto.ReadRequest, stream wireproto.WatFS_ReadServer) error {
	path, err := s.translate(req.Handle)
	if err != nil {
		return stream.Send(&wireproto.ReadReply{Count: -1, Err: errnoOf(err)})
	}

	f, err := os.Open(path)
	if err != nil {
		return stream.Send(&wireproto.ReadReply{Count: -1, Err: errnoOf(err)})
	}
	defer f.Close()

	if req.Offset > 0 {
		if _, err := f.Seek(req.Offset, io.SeekStart); err != nil {
			return stream.Send(&wireproto.ReadReply{Count: -1, Err: errnoOf(err)})
		}
	}

	buf := make([]byte, req.Count)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return stream.Send(&wireproto.ReadReply{Count: -1, Err: errnoOf(err)})
	}
	buf = buf[:n]

	for sent := 0; sent < len(buf); {
		end := sent + wireproto.MSG
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[sent:end]
		if err := stream.Send(&wireproto.ReadReply{
			Data:  chunk,
			Count: int32(len(chunk)),
			Err:   0,
		}); err != nil {
			return err
		}
		sent = end
	}
	return nil
}
