// Package verifier generates the server-restart verifier described in
// spec.md §3: a 64-bit value chosen once at server startup and returned
// unchanged by every Null/Commit call for as long as that process runs.
// A client-observed change between two commits means the server has
// restarted since the earlier one.
package verifier

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// New picks a fresh verifier from eight bytes of crypto/rand, so that two
// servers started in quick succession (e.g. during tests) still reliably
// produce different verifiers. The wall-clock time is used only when
// crypto/rand fails or yields zero.
func New() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failure is effectively unheard of in practice; fall
		// back to the start time alone rather than panicking a server boot.
		return time.Now().UnixNano()
	}
	v := int64(binary.BigEndian.Uint64(buf[:]))
	if v == 0 {
		v = time.Now().UnixNano()
	}
	return v
}
