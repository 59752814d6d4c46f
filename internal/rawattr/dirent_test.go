package rawattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDirentRoundTrip(t *testing.T) {
	var want unix.Dirent
	want.Ino = 42
	want.Type = unix.DT_REG
	want.Reclen = uint16(DirEntSize)
	copy(want.Name[:], []int8{'f', 'o', 'o', 0})

	buf := EncodeDirent(&want)
	assert.Len(t, buf, DirEntSize)

	got, err := DecodeDirent(buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeDirentLengthMismatch(t *testing.T) {
	_, err := DecodeDirent([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
