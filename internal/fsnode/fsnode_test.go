package fsnode_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bazil.org/fuse"
	bfs "bazil.org/fuse/fs"
	"github.com/chowes/WatFS/internal/client"
	"github.com/chowes/WatFS/internal/fsnode"
	"github.com/chowes/WatFS/internal/server"
	"github.com/chowes/WatFS/internal/wireproto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

// startMount brings up a real Server behind an in-process gRPC listener,
// dials it, and wraps the result in an fs.FS, the way cmd/watfs-client
// does for a real mount.
func startMount(t *testing.T, singleThreaded bool) (*fsnode.FS, string) {
	t.Helper()
	root := t.TempDir()
	s, err := server.New(root, nil)
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	gs := grpc.NewServer()
	wireproto.RegisterWatFSServer(gs, s)
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	dialCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h, err := client.DialWithDialer(dialCtx, "bufnet", func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })

	return fsnode.New(h, singleThreaded), root
}

func TestLookupAndReadDirAll(t *testing.T) {
	filesys, root := startMount(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("hello"), 0o644))

	ctx := context.Background()
	rootNode, err := filesys.Root()
	require.NoError(t, err)

	dir, ok := rootNode.(bfs.HandleReadDirAller)
	require.True(t, ok)
	entries, err := dir.ReadDirAll(ctx)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	require.Contains(t, names, "a")
	require.Contains(t, names, ".")

	lookuper, ok := rootNode.(bfs.NodeStringLookuper)
	require.True(t, ok)
	child, err := lookuper.Lookup(ctx, "a")
	require.NoError(t, err)

	var attr fuse.Attr
	getattrer, ok := child.(bfs.NodeGetattrer)
	require.True(t, ok)
	require.NoError(t, getattrer.Getattr(ctx, &fuse.GetattrRequest{}, &fuse.GetattrResponse{Attr: attr}))
}

func TestLookupMissingReturnsENOENT(t *testing.T) {
	filesys, _ := startMount(t, false)
	rootNode, err := filesys.Root()
	require.NoError(t, err)

	lookuper := rootNode.(bfs.NodeStringLookuper)
	_, err = lookuper.Lookup(context.Background(), "missing")
	require.Equal(t, fuse.ENOENT, err)
}

func TestCreateWriteReadRoundTrip(t *testing.T) {
	filesys, _ := startMount(t, false)
	rootNode, err := filesys.Root()
	require.NoError(t, err)

	creater := rootNode.(bfs.NodeCreater)
	ctx := context.Background()
	node, handle, err := creater.Create(ctx,
		&fuse.CreateRequest{Name: "new", Mode: 0o644},
		&fuse.CreateResponse{},
	)
	require.NoError(t, err)

	writer := handle.(bfs.HandleWriter)
	var wresp fuse.WriteResponse
	require.NoError(t, writer.Write(ctx, &fuse.WriteRequest{Offset: 0, Data: []byte("payload")}, &wresp))
	require.Equal(t, len("payload"), wresp.Size)

	flusher := handle.(bfs.HandleFlusher)
	require.NoError(t, flusher.Flush(ctx, &fuse.FlushRequest{}))

	reader := node.(bfs.HandleReader)
	var rresp fuse.ReadResponse
	require.NoError(t, reader.Read(ctx, &fuse.ReadRequest{Offset: 0, Size: 64}, &rresp))
	require.Equal(t, "payload", string(rresp.Data))
}

func TestMkdirRemoveAndRename(t *testing.T) {
	filesys, _ := startMount(t, false)
	rootNode, err := filesys.Root()
	require.NoError(t, err)

	ctx := context.Background()
	mkdirer := rootNode.(bfs.NodeMkdirer)
	dirNode, err := mkdirer.Mkdir(ctx, &fuse.MkdirRequest{Name: "d", Mode: os.ModeDir | 0o755})
	require.NoError(t, err)

	renamer := rootNode.(bfs.NodeRenamer)
	require.NoError(t, renamer.Rename(ctx, &fuse.RenameRequest{OldName: "d", NewName: "d2"}, rootNode))

	remover := rootNode.(bfs.NodeRemover)
	require.NoError(t, remover.Remove(ctx, &fuse.RemoveRequest{Name: "d2", Dir: true}))
	_ = dirNode
}

func TestSingleThreadedConcurrentCallsComplete(t *testing.T) {
	filesys, root := startMount(t, true)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("x"), 0o644))

	rootNode, err := filesys.Root()
	require.NoError(t, err)
	getattrer := rootNode.(bfs.NodeGetattrer)

	done := make(chan struct{})
	go func() {
		_ = getattrer.Getattr(context.Background(), &fuse.GetattrRequest{}, &fuse.GetattrResponse{})
		close(done)
	}()
	require.NoError(t, getattrer.Getattr(context.Background(), &fuse.GetattrRequest{}, &fuse.GetattrResponse{}))
	<-done
}
