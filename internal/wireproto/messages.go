// Package wireproto defines the WatFS RPC message schema and the
// hand-authored gRPC service glue that carries it. No protobuf compiler
// runs as part of this build: messages are plain exported Go structs and
// the methods below are shaped exactly as protoc-gen-go-grpc would emit
// them, so that the service, the client stub, and the wire codec
// (codec.go) stay a drop-in match for a future .proto-generated version.
package wireproto

// Errno is the wire type of every reply's error field: zero on success,
// a positive standard errno value observed on the server otherwise. Null
// and Commit are the exceptions described in spec.md §7 — their integer
// field carries the server verifier, not an error.
type Errno int32

// MSG is the maximum payload, in bytes, of a single Read or Write stream
// chunk.
const MSG = 8192

// NullRequest pings the server and carries the client's last-known
// verifier purely for symmetry with NullReply; the server does not use it.
type NullRequest struct {
	Verf int64
}

// NullReply carries the server's current verifier.
type NullReply struct {
	Verf int64
}

// GetAttrRequest asks for the attribute record of a path.
type GetAttrRequest struct {
	Path string
}

// GetAttrReply carries the opaque attribute record and an error code.
type GetAttrReply struct {
	Attr []byte
	Err  Errno
}

// LookupRequest probes for the existence of a path.
type LookupRequest struct {
	Path string
}

// LookupReply carries only an error code; WatFS file handles are paths,
// so Lookup has nothing else to return.
type LookupReply struct {
	Err Errno
}

// ReadRequest asks the server to stream up to Count bytes of Handle
// starting at Offset.
type ReadRequest struct {
	Handle string
	Offset int64
	Count  int64
}

// ReadReply is one chunk of a Read response stream. Count is the number
// of valid bytes in Data, or -1 if Err is set on a mid-read I/O failure.
type ReadReply struct {
	Data  []byte
	Count int32
	Err   Errno
}

// WriteRequest is one chunk of a Write request stream. Path, Offset and
// TotalSize must be consistent across every chunk of a given Write; per
// spec.md §4.1 the server takes them from the last chunk it receives.
type WriteRequest struct {
	Path      string
	Buffer    []byte
	Offset    int64
	Size      int64
	TotalSize int64
	Commit    bool
}

// WriteReply carries the total number of bytes written and an error code.
type WriteReply struct {
	Size int64
	Err  Errno
}

// TruncateRequest asks the server to resize a file.
type TruncateRequest struct {
	Path string
	Size int64
}

// TruncateReply carries only an error code.
type TruncateReply struct {
	Err Errno
}

// ReaddirRequest asks the server to stream the entries of a directory.
type ReaddirRequest struct {
	Handle string
}

// ReaddirReply is one directory entry: its opaque dirent record and the
// attribute record of the named object.
type ReaddirReply struct {
	DirEntry []byte
	Attr     []byte
	Err      Errno
}

// MknodRequest asks the server to create a file or FIFO.
type MknodRequest struct {
	Path string
	Mode uint32
	Rdev uint64
}

// MknodReply carries only an error code.
type MknodReply struct {
	Err Errno
}

// UnlinkRequest asks the server to remove a file.
type UnlinkRequest struct {
	Path string
}

// UnlinkReply carries only an error code.
type UnlinkReply struct {
	Err Errno
}

// RenameRequest asks the server to rename Source to Dest.
type RenameRequest struct {
	Source string
	Dest   string
}

// RenameReply carries only an error code.
type RenameReply struct {
	Err Errno
}

// MkdirRequest asks the server to create a directory.
type MkdirRequest struct {
	Path string
	Mode uint32
}

// MkdirReply carries only an error code.
type MkdirReply struct {
	Err Errno
}

// RmdirRequest asks the server to remove an empty directory.
type RmdirRequest struct {
	Path string
}

// RmdirReply carries only an error code.
type RmdirReply struct {
	Err Errno
}

// UtimensRequest asks the server to set the access and modification
// times of a path without following a terminal symlink.
type UtimensRequest struct {
	Path       string
	AtimeSec   int64
	AtimeNsec  int64
	MtimeSec   int64
	MtimeNsec  int64
}

// UtimensReply carries only an error code.
type UtimensReply struct {
	Err Errno
}

// CommitRequest carries the client's last-known verifier; the server
// ignores it and always replies with its current one (spec.md §4.3 —
// returning anything else is the bug described in spec.md §9).
type CommitRequest struct {
	Verf int64
}

// CommitReply carries the server's current verifier.
type CommitReply struct {
	Verf int64
}
