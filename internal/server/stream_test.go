package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chowes/WatFS/internal/rawattr"
	"github.com/chowes/WatFS/internal/wireproto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

// direntName decodes the name out of a wire-encoded dirent record, for
// tests that only care about which names a Readdir stream produced.
func direntName(t *testing.T, buf []byte) string {
	t.Helper()
	d, err := rawattr.DecodeDirent(buf)
	require.NoError(t, err)
	return rawattr.DirentName(d)
}

// startTestService brings up the Server behind an in-process gRPC
// listener and returns a connected client, so the streaming RPCs can be
// exercised through the real grpc.ServerStream/ClientStream machinery
// rather than by calling the handler methods directly.
func startTestService(t *testing.T) (wireproto.WatFSClient, string) {
	t.Helper()
	root := t.TempDir()
	s, err := New(root, nil)
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	gs := grpc.NewServer()
	wireproto.RegisterWatFSServer(gs, s)
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	conn, err := grpc.DialContext(dialCtx, "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return wireproto.NewWatFSClient(conn), root
}

func TestStreamReadReturnsFullContent(t *testing.T) {
	client, root := startTestService(t)
	content := bytes.Repeat([]byte("abcdefgh"), wireproto.MSG) // multiple chunks
	require.NoError(t, os.WriteFile(filepath.Join(root, "big"), content, 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := client.Read(ctx, &wireproto.ReadRequest{Handle: "/big", Offset: 0, Count: int64(len(content))})
	require.NoError(t, err)

	var got bytes.Buffer
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, wireproto.Errno(0), chunk.Err)
		got.Write(chunk.Data[:chunk.Count])
	}
	require.Equal(t, content, got.Bytes())
}

func TestStreamWriteAcrossMultipleChunks(t *testing.T) {
	client, root := startTestService(t)
	path := filepath.Join(root, "out")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	content := bytes.Repeat([]byte("Z"), wireproto.MSG*3+17)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := client.Write(ctx)
	require.NoError(t, err)

	for sent := 0; sent < len(content); {
		end := sent + wireproto.MSG
		if end > len(content) {
			end = len(content)
		}
		chunk := content[sent:end]
		require.NoError(t, stream.Send(&wireproto.WriteRequest{
			Path:      "/out",
			Buffer:    chunk,
			Offset:    0,
			Size:      int64(len(chunk)),
			TotalSize: int64(len(content)),
		}))
		sent = end
	}
	reply, err := stream.CloseAndRecv()
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)
	require.EqualValues(t, len(content), reply.Size)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestStreamReaddirIncludesDotEntries(t *testing.T) {
	client, root := startTestService(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "d", "child"), nil, 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := client.Readdir(ctx, &wireproto.ReaddirRequest{Handle: "/d"})
	require.NoError(t, err)

	var names []string
	for {
		reply, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, wireproto.Errno(0), reply.Err)
		names = append(names, direntName(t, reply.DirEntry))
	}
	require.Contains(t, names, ".")
	require.Contains(t, names, "..")
	require.Contains(t, names, "child")
}
