package fsnode

import (
	"os"
	"syscall"
	"time"

	"bazil.org/fuse"
	"golang.org/x/sys/unix"
)

// fillAttr copies a decoded attribute record into a's fields, the way
// every Attr/Getattr callback below needs to.
func fillAttr(st *syscall.Stat_t, a *fuse.Attr) {
	a.Inode = st.Ino
	a.Size = uint64(st.Size)
	a.Blocks = uint64(st.Blocks)
	a.Atime = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	a.Mtime = time.Unix(st.Mtim.Sec, st.Mtim.Nsec)
	a.Ctime = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	a.Mode = fileModeFromRaw(st.Mode)
	a.Nlink = uint32(st.Nlink)
	a.Uid = st.Uid
	a.Gid = st.Gid
	a.Rdev = uint32(st.Rdev)
	a.BlockSize = uint32(st.Blksize)
}

// fileModeFromRaw turns a raw st_mode value into the os.FileMode bazil.org/
// fuse expects: permission bits unchanged, with the high type bits
// translated to Go's ModeDir/ModeSymlink/etc flags.
func fileModeFromRaw(mode uint32) os.FileMode {
	perm := os.FileMode(mode & 0o7777)
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return perm | os.ModeDir
	case unix.S_IFLNK:
		return perm | os.ModeSymlink
	case unix.S_IFIFO:
		return perm | os.ModeNamedPipe
	case unix.S_IFSOCK:
		return perm | os.ModeSocket
	case unix.S_IFBLK:
		return perm | os.ModeDevice
	case unix.S_IFCHR:
		return perm | os.ModeDevice | os.ModeCharDevice
	default:
		return perm
	}
}

// rawModeFromFileMode is the inverse of fileModeFromRaw: it turns the
// os.FileMode bazil.org/fuse hands Mknod/Create requests back into the
// raw mode_t bits the wire protocol and the server's unix.Mknod/Mkfifo
// calls expect.
func rawModeFromFileMode(m os.FileMode) uint32 {
	perm := uint32(m.Perm())
	switch {
	case m&os.ModeNamedPipe != 0:
		return perm | unix.S_IFIFO
	case m&os.ModeSocket != 0:
		return perm | unix.S_IFSOCK
	case m&os.ModeDevice != 0 && m&os.ModeCharDevice != 0:
		return perm | unix.S_IFCHR
	case m&os.ModeDevice != 0:
		return perm | unix.S_IFBLK
	case m&os.ModeSymlink != 0:
		return perm | unix.S_IFLNK
	case m&os.ModeDir != 0:
		return perm | unix.S_IFDIR
	default:
		return perm | unix.S_IFREG
	}
}
