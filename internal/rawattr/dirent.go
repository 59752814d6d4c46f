package rawattr

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DirEntSize is the size in bytes of the wire-encoded directory-entry
// record: the whole fixed-size unix.Dirent layout, including its name
// array, in which the name is stored null-terminated (the same way the
// reference implementation blits struct dirent).
const DirEntSize = int(unsafe.Sizeof(unix.Dirent{}))

// EncodeDirent copies a unix.Dirent into an opaque byte string of exactly
// DirEntSize bytes, the wire representation of DirEntryRecord.
func EncodeDirent(d *unix.Dirent) []byte {
	buf := make([]byte, DirEntSize)
	copy(buf, (*[1 << 30]byte)(unsafe.Pointer(d))[:DirEntSize:DirEntSize])
	return buf
}

// DecodeDirent reverses EncodeDirent.
func DecodeDirent(buf []byte) (unix.Dirent, error) {
	var d unix.Dirent
	if len(buf) != DirEntSize {
		return d, fmt.Errorf("%w: got %d want %d", ErrLengthMismatch, len(buf), DirEntSize)
	}
	copy((*[1 << 30]byte)(unsafe.Pointer(&d))[:DirEntSize:DirEntSize], buf)
	return d, nil
}

// DirentName extracts the null-terminated name out of a decoded dirent
// record.
func DirentName(d unix.Dirent) string {
	n := 0
	for n < len(d.Name) && d.Name[n] != 0 {
		n++
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = byte(d.Name[i])
	}
	return string(buf)
}
