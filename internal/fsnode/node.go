package fsnode

import (
	"context"
	"path"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"golang.org/x/sys/unix"
)

// Node is one path inside the mount. WatFS file handles are whole paths
// (spec.md §3), so Node doubles as its own fs.Handle: there is no
// separate open-file state to track client-side, matching the server's
// stateless open-operate-close handling of every RPC.
type Node struct {
	fs   *FS
	path string
}

var (
	_ fs.Node                = (*Node)(nil)
	_ fs.NodeGetattrer       = (*Node)(nil)
	_ fs.NodeStringLookuper  = (*Node)(nil)
	_ fs.HandleReadDirAller  = (*Node)(nil)
	_ fs.NodeOpener          = (*Node)(nil)
	_ fs.HandleReader        = (*Node)(nil)
	_ fs.HandleWriter        = (*Node)(nil)
	_ fs.HandleFlusher       = (*Node)(nil)
	_ fs.HandleReleaser      = (*Node)(nil)
	_ fs.NodeMkdirer         = (*Node)(nil)
	_ fs.NodeMknoder         = (*Node)(nil)
	_ fs.NodeCreater         = (*Node)(nil)
	_ fs.NodeRemover         = (*Node)(nil)
	_ fs.NodeRenamer         = (*Node)(nil)
	_ fs.NodeSetattrer       = (*Node)(nil)
)

func (n *Node) child(name string) *Node {
	return &Node{fs: n.fs, path: path.Join(n.path, name)}
}

// Attr implements fs.Node.
func (n *Node) Attr(ctx context.Context, a *fuse.Attr) error {
	defer n.fs.lock()()
	st, err := n.fs.handle.GetAttr(ctx, n.path)
	if err != nil {
		return toFuseError(err)
	}
	fillAttr(&st, a)
	return nil
}

// Getattr implements fs.NodeGetattrer.
func (n *Node) Getattr(ctx context.Context, req *fuse.GetattrRequest, resp *fuse.GetattrResponse) error {
	defer n.fs.lock()()
	st, err := n.fs.handle.GetAttr(ctx, n.path)
	if err != nil {
		return toFuseError(err)
	}
	fillAttr(&st, &resp.Attr)
	return nil
}

// Lookup implements fs.NodeStringLookuper.
func (n *Node) Lookup(ctx context.Context, name string) (fs.Node, error) {
	defer n.fs.lock()()
	child := n.child(name)
	if err := n.fs.handle.Lookup(ctx, child.path); err != nil {
		return nil, toFuseError(err)
	}
	return child, nil
}

// ReadDirAll implements fs.HandleReadDirAller.
func (n *Node) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	defer n.fs.lock()()
	entries, err := n.fs.handle.Readdir(ctx, n.path)
	if err != nil {
		return nil, toFuseError(err)
	}
	out := make([]fuse.Dirent, 0, len(entries))
	for _, e := range entries {
		out = append(out, fuse.Dirent{Inode: e.Attr.Ino, Name: e.Name})
	}
	return out, nil
}

// Open implements fs.NodeOpener. WatFS has no open-file state beyond the
// path itself, so the node serves as its own handle.
func (n *Node) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fs.Handle, error) {
	resp.Flags |= fuse.OpenDirectIO
	return n, nil
}

// Read implements fs.HandleReader.
func (n *Node) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	defer n.fs.lock()()
	data, err := n.fs.handle.Read(ctx, n.path, req.Offset, int64(req.Size))
	if err != nil {
		return toFuseError(err)
	}
	resp.Data = data
	return nil
}

// Write implements fs.HandleWriter.
func (n *Node) Write(ctx context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	defer n.fs.lock()()
	written, err := n.fs.handle.Write(ctx, n.path, req.Offset, req.Data)
	if err != nil {
		return toFuseError(err)
	}
	resp.Size = int(written)
	return nil
}

// Flush implements fs.HandleFlusher. Per spec.md §4.5 the client commits
// its buffered writes here; any error is logged and swallowed rather
// than surfaced to the caller of close(2), matching the original's
// best-effort commit behaviour.
func (n *Node) Flush(ctx context.Context, req *fuse.FlushRequest) error {
	defer n.fs.lock()()
	if err := n.fs.handle.Commit(ctx); err != nil {
		log.WithError(err).WithField("path", n.path).Debug("commit on flush failed")
	}
	return nil
}

// Release implements fs.HandleReleaser, for the same reason as Flush.
func (n *Node) Release(ctx context.Context, req *fuse.ReleaseRequest) error {
	defer n.fs.lock()()
	if err := n.fs.handle.Commit(ctx); err != nil {
		log.WithError(err).WithField("path", n.path).Debug("commit on release failed")
	}
	return nil
}

// Mkdir implements fs.NodeMkdirer.
func (n *Node) Mkdir(ctx context.Context, req *fuse.MkdirRequest) (fs.Node, error) {
	defer n.fs.lock()()
	child := n.child(req.Name)
	if err := n.fs.handle.Mkdir(ctx, child.path, uint32(req.Mode.Perm())); err != nil {
		return nil, toFuseError(err)
	}
	return child, nil
}

// Mknod implements fs.NodeMknoder.
func (n *Node) Mknod(ctx context.Context, req *fuse.MknodRequest) (fs.Node, error) {
	defer n.fs.lock()()
	child := n.child(req.Name)
	if err := n.fs.handle.Mknod(ctx, child.path, rawModeFromFileMode(req.Mode), uint64(req.Rdev)); err != nil {
		return nil, toFuseError(err)
	}
	return child, nil
}

// Create implements fs.NodeCreater: a regular-file Mknod followed by
// handing back the new node as both the fs.Node and its own fs.Handle.
func (n *Node) Create(ctx context.Context, req *fuse.CreateRequest, resp *fuse.CreateResponse) (fs.Node, fs.Handle, error) {
	defer n.fs.lock()()
	child := n.child(req.Name)
	if err := n.fs.handle.Mknod(ctx, child.path, unix.S_IFREG|uint32(req.Mode.Perm()), 0); err != nil {
		return nil, nil, toFuseError(err)
	}
	return child, child, nil
}

// Remove implements fs.NodeRemover.
func (n *Node) Remove(ctx context.Context, req *fuse.RemoveRequest) error {
	defer n.fs.lock()()
	child := n.child(req.Name)
	var err error
	if req.Dir {
		err = n.fs.handle.Rmdir(ctx, child.path)
	} else {
		err = n.fs.handle.Unlink(ctx, child.path)
	}
	return toFuseError(err)
}

// Rename implements fs.NodeRenamer.
func (n *Node) Rename(ctx context.Context, req *fuse.RenameRequest, newDir fs.Node) error {
	defer n.fs.lock()()
	destParent, ok := newDir.(*Node)
	if !ok {
		return fuse.Errno(syscall.EXDEV)
	}
	oldPath := n.child(req.OldName).path
	newPath := destParent.child(req.NewName).path
	return toFuseError(n.fs.handle.Rename(ctx, oldPath, newPath))
}

// Setattr implements fs.NodeSetattrer: truncate and utimens both arrive
// through it, matching the FUSE ioctl surface WatFS forwards.
func (n *Node) Setattr(ctx context.Context, req *fuse.SetattrRequest, resp *fuse.SetattrResponse) error {
	defer n.fs.lock()()
	if req.Valid.Size() {
		if err := n.fs.handle.Truncate(ctx, n.path, int64(req.Size)); err != nil {
			return toFuseError(err)
		}
	}
	if req.Valid.Mtime() || req.Valid.Atime() {
		atime, mtime := req.Atime, req.Mtime
		if !req.Valid.Atime() || !req.Valid.Mtime() {
			// The wire protocol has no UTIME_OMIT equivalent, so a
			// one-sided Setattr must read the other time back from the
			// server rather than clobber it with the zero value.
			st, err := n.fs.handle.GetAttr(ctx, n.path)
			if err != nil {
				return toFuseError(err)
			}
			if !req.Valid.Atime() {
				atime = time.Unix(st.Atim.Sec, st.Atim.Nsec)
			}
			if !req.Valid.Mtime() {
				mtime = time.Unix(st.Mtim.Sec, st.Mtim.Nsec)
			}
		}
		if err := n.fs.handle.Utimens(ctx, n.path, atime, mtime); err != nil {
			return toFuseError(err)
		}
	}
	st, err := n.fs.handle.GetAttr(ctx, n.path)
	if err != nil {
		return toFuseError(err)
	}
	fillAttr(&st, &resp.Attr)
	return nil
}
