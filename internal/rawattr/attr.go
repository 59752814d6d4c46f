// Package rawattr blits the host's fixed-size stat and dirent records to
// and from opaque byte strings for transport, the way the original WatFS
// wire schema does. Both endpoints of a WatFS deployment must run on the
// same OS/ABI for this encoding to be meaningful; see the doc comment on
// ErrLengthMismatch for the one failure mode it detects.
package rawattr

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"
)

// AttrSize is the size in bytes of the wire-encoded attribute record.
const AttrSize = int(unsafe.Sizeof(syscall.Stat_t{}))

// ErrLengthMismatch is returned when a decoded opaque record does not have
// the expected size for the host's struct layout. This is a protocol
// violation, not an application error, and callers should treat it as
// fatal to the RPC the way a malformed reply is treated elsewhere.
var ErrLengthMismatch = errors.New("rawattr: opaque record length mismatch")

// EncodeAttr copies a syscall.Stat_t into an opaque byte string of exactly
// AttrSize bytes, the wire representation of AttributeRecord.
func EncodeAttr(st *syscall.Stat_t) []byte {
	buf := make([]byte, AttrSize)
	copy(buf, (*[1 << 30]byte)(unsafe.Pointer(st))[:AttrSize:AttrSize])
	return buf
}

// DecodeAttr reverses EncodeAttr. The returned struct aliases nothing in
// buf; it is a copy.
func DecodeAttr(buf []byte) (syscall.Stat_t, error) {
	var st syscall.Stat_t
	if len(buf) != AttrSize {
		return st, fmt.Errorf("%w: got %d want %d", ErrLengthMismatch, len(buf), AttrSize)
	}
	copy((*[1 << 30]byte)(unsafe.Pointer(&st))[:AttrSize:AttrSize], buf)
	return st, nil
}

// StatPath fills an AttributeRecord from a local filesystem stat of path,
// mirroring the server handler's "stat, marshal, send" sequence from
// spec.md's GetAttr/Lookup handlers.
func StatPath(path string) ([]byte, error) {
	var st syscall.Stat_t
	if err := syscall.Stat(path, &st); err != nil {
		return nil, err
	}
	return EncodeAttr(&st), nil
}
