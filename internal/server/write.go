package server

import (
	"io"
	"os"

	"github.com/chowes/WatFS/internal/wireproto"
)

// Write accumulates every chunk of the incoming stream into a single
// in-memory buffer of length TotalSize, then performs one
// open(O_WRONLY|O_SYNC) + seek + write + close against the path named
// by the stream's final chunk, per spec.md §4.1/§4.3 ("implementations
// SHOULD take them from the last chunk received, to match observed
// client behaviour"). Every successful Write is therefore durable
// before its reply, which is what lets Commit be a cheap verifier fetch
// rather than an fsync (spec.md §4.5).
func (s *Server) Write(stream wireproto.WatFS_WriteServer) error {
	var (
		buf       []byte
		received  int64
		path      string
		offset    int64
		totalSize int64
		gotChunk  bool
	)

	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		gotChunk = true
		if buf == nil {
			totalSize = chunk.TotalSize
			buf = make([]byte, totalSize)
		}
		path = chunk.Path
		offset = chunk.Offset
		totalSize = chunk.TotalSize
		n := copy(buf[received:], chunk.Buffer[:chunk.Size])
		received += int64(n)
	}

	if !gotChunk {
		return stream.SendAndClose(&wireproto.WriteReply{Size: 0, Err: 0})
	}

	serverPath, err := s.translate(path)
	if err != nil {
		return stream.SendAndClose(&wireproto.WriteReply{Size: -1, Err: errnoOf(err)})
	}

	f, err := os.OpenFile(serverPath, os.O_WRONLY|os.O_SYNC, 0)
	if err != nil {
		return stream.SendAndClose(&wireproto.WriteReply{Size: -1, Err: errnoOf(err)})
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return stream.SendAndClose(&wireproto.WriteReply{Size: -1, Err: errnoOf(err)})
	}

	n, err := f.Write(buf[:received])
	if err != nil {
		return stream.SendAndClose(&wireproto.WriteReply{Size: -1, Err: errnoOf(err)})
	}

	return stream.SendAndClose(&wireproto.WriteReply{Size: int64(n), Err: 0})
}
