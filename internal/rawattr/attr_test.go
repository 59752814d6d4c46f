package rawattr

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	var want syscall.Stat_t
	require.NoError(t, syscall.Stat(path, &want))

	buf := EncodeAttr(&want)
	assert.Len(t, buf, AttrSize)

	got, err := DecodeAttr(buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatPathMatchesDirectStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	buf, err := StatPath(path)
	require.NoError(t, err)

	var direct syscall.Stat_t
	require.NoError(t, syscall.Stat(path, &direct))

	assert.Equal(t, EncodeAttr(&direct), buf)
}

func TestDecodeAttrLengthMismatch(t *testing.T) {
	_, err := DecodeAttr([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestStatPathMissing(t *testing.T) {
	_, err := StatPath("/nonexistent/path/that/should/not/exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.ENOENT)
}
