package server

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/chowes/WatFS/internal/rawattr"
	"github.com/chowes/WatFS/internal/wireproto"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	s, err := New(root, nil)
	require.NoError(t, err)
	return s, root
}

func TestNewRejectsMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	require.Error(t, err)
}

func TestNewRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err := New(file, nil)
	require.Error(t, err)
}

func TestNullReturnsStableVerifier(t *testing.T) {
	s, _ := newTestServer(t)
	first, err := s.Null(context.Background(), &wireproto.NullRequest{})
	require.NoError(t, err)
	second, err := s.Null(context.Background(), &wireproto.NullRequest{})
	require.NoError(t, err)
	require.Equal(t, first.Verf, second.Verf)
}

func TestCommitReturnsSameVerifierAsNull(t *testing.T) {
	s, _ := newTestServer(t)
	nullReply, err := s.Null(context.Background(), &wireproto.NullRequest{})
	require.NoError(t, err)
	commitReply, err := s.Commit(context.Background(), &wireproto.CommitRequest{Verf: 0})
	require.NoError(t, err)
	require.Equal(t, nullReply.Verf, commitReply.Verf)
}

func TestGetAttrOnExistingFile(t *testing.T) {
	s, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("hello"), 0o644))

	reply, err := s.GetAttr(context.Background(), &wireproto.GetAttrRequest{Path: "/a"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)

	st, err := rawattr.DecodeAttr(reply.Attr)
	require.NoError(t, err)
	require.EqualValues(t, 5, st.Size)
}

func TestGetAttrMissingReturnsENOENT(t *testing.T) {
	s, _ := newTestServer(t)
	reply, err := s.GetAttr(context.Background(), &wireproto.GetAttrRequest{Path: "/missing"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(syscall.ENOENT), reply.Err)
}

func TestLookupExistingAndMissing(t *testing.T) {
	s, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), nil, 0o644))

	ok, err := s.Lookup(context.Background(), &wireproto.LookupRequest{Path: "/a"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), ok.Err)

	missing, err := s.Lookup(context.Background(), &wireproto.LookupRequest{Path: "/nope"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(syscall.ENOENT), missing.Err)
}

func TestTranslateRejectsEscapingPath(t *testing.T) {
	s, _ := newTestServer(t)
	_, err := s.translate("/../../etc/passwd")
	require.ErrorIs(t, err, ErrOutsideRoot)
}

func TestTranslateAcceptsRootItself(t *testing.T) {
	s, _ := newTestServer(t)
	path, err := s.translate("/")
	require.NoError(t, err)
	require.Equal(t, s.root, path)
}

func TestTruncate(t *testing.T) {
	s, root := newTestServer(t)
	p := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(p, []byte("0123456789"), 0o644))

	reply, err := s.Truncate(context.Background(), &wireproto.TruncateRequest{Path: "/f", Size: 4})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)

	info, err := os.Stat(p)
	require.NoError(t, err)
	require.EqualValues(t, 4, info.Size())
}

func TestMkdirRmdir(t *testing.T) {
	s, root := newTestServer(t)

	mk, err := s.Mkdir(context.Background(), &wireproto.MkdirRequest{Path: "/d", Mode: 0o755})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), mk.Err)
	require.DirExists(t, filepath.Join(root, "d"))

	rm, err := s.Rmdir(context.Background(), &wireproto.RmdirRequest{Path: "/d"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), rm.Err)
	require.NoDirExists(t, filepath.Join(root, "d"))
}

func TestRmdirNonEmptyReturnsENOTEMPTY(t *testing.T) {
	s, root := newTestServer(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "d", "child"), nil, 0o644))

	reply, err := s.Rmdir(context.Background(), &wireproto.RmdirRequest{Path: "/d"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(syscall.ENOTEMPTY), reply.Err)
}

func TestUnlink(t *testing.T) {
	s, root := newTestServer(t)
	p := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	reply, err := s.Unlink(context.Background(), &wireproto.UnlinkRequest{Path: "/f"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)
	require.NoFileExists(t, p)
}

func TestRename(t *testing.T) {
	s, root := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("x"), 0o644))

	reply, err := s.Rename(context.Background(), &wireproto.RenameRequest{Source: "/a", Dest: "/b"})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)
	require.NoFileExists(t, filepath.Join(root, "a"))
	require.FileExists(t, filepath.Join(root, "b"))
}

func TestUtimens(t *testing.T) {
	s, root := newTestServer(t)
	p := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	reply, err := s.Utimens(context.Background(), &wireproto.UtimensRequest{
		Path:      "/f",
		AtimeSec:  1000,
		AtimeNsec: 0,
		MtimeSec:  2000,
		MtimeNsec: 0,
	})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)

	var st syscall.Stat_t
	require.NoError(t, syscall.Stat(p, &st))
	require.EqualValues(t, 2000, st.Mtim.Sec)
}

func TestMknodFIFO(t *testing.T) {
	s, root := newTestServer(t)
	reply, err := s.Mknod(context.Background(), &wireproto.MknodRequest{Path: "/fifo", Mode: syscall.S_IFIFO | 0o644})
	require.NoError(t, err)
	require.Equal(t, wireproto.Errno(0), reply.Err)

	info, err := os.Lstat(filepath.Join(root, "fifo"))
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeNamedPipe)
}

func TestErrnoOfUnwrapsPathError(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, wireproto.Errno(syscall.ENOENT), errnoOf(err))
}

func TestErrnoOfNilIsZero(t *testing.T) {
	require.Equal(t, wireproto.Errno(0), errnoOf(nil))
}
