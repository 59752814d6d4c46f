// Package fsnode adapts a WatFS client.Handle to bazil.org/fuse's Node/
// Handle callback contract. A single Handle is constructed once per
// mount (in cmd/watfs-client) and shared by every Node below it; no
// fsnode type ever dials its own connection.
package fsnode

import (
	"sync"

	"github.com/chowes/WatFS/internal/client"
	"github.com/chowes/WatFS/internal/logging"
	"bazil.org/fuse/fs"
)

// FS is the mount root handed to fs.Serve.
type FS struct {
	handle *client.Handle

	// single, when set, forces every Node callback below this FS to run
	// under serial, matching the -s flag on the original client binary.
	// bazil.org/fuse otherwise dispatches each request on its own
	// goroutine.
	single bool
	mu     sync.Mutex
}

// New wraps handle as a mountable fs.FS. When singleThreaded is true,
// Node callbacks serialize against each other instead of running
// concurrently.
func New(handle *client.Handle, singleThreaded bool) *FS {
	return &FS{handle: handle, single: singleThreaded}
}

// lock serializes callers when single-threaded dispatch was requested,
// and is a no-op otherwise. Call as "defer f.lock()()".
func (f *FS) lock() func() {
	if !f.single {
		return func() {}
	}
	f.mu.Lock()
	return f.mu.Unlock
}

// Root implements fs.FS.
func (f *FS) Root() (fs.Node, error) {
	return &Node{fs: f, path: "/"}, nil
}

var log = logging.Component("fsnode")
