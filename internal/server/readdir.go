package server

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/chowes/WatFS/internal/rawattr"
	"github.com/chowes/WatFS/internal/wireproto"
	"golang.org/x/sys/unix"
)

// Readdir streams one ReaddirReply per entry of req.Handle, including
// "." and ".." so a client never has to synthesize them (spec.md §8
// scenario 3). A stat failure on an individual entry is reported inline
// on that entry's reply rather than aborting the whole stream, since a
// concurrent unlink racing the listing is expected, not exceptional.
func (s *Server) Readdir(req *wireproto.ReaddirRequest, stream wireproto.WatFS_ReaddirServer) error {
	path, err := s.translate(req.Handle)
	if err != nil {
		return stream.Send(&wireproto.ReaddirReply{Err: errnoOf(err)})
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return stream.Send(&wireproto.ReaddirReply{Err: errnoOf(err)})
	}

	names := make([]string, 0, len(entries)+2)
	names = append(names, ".", "..")
	for _, e := range entries {
		names = append(names, e.Name())
	}

	for _, name := range names {
		entryPath := filepath.Join(path, name)

		var st syscall.Stat_t
		if err := syscall.Lstat(entryPath, &st); err != nil {
			if err := stream.Send(&wireproto.ReaddirReply{Err: errnoOf(err)}); err != nil {
				return err
			}
			continue
		}

		d := direntFor(name, st.Ino, direntType(st.Mode))
		if err := stream.Send(&wireproto.ReaddirReply{
			DirEntry: rawattr.EncodeDirent(&d),
			Attr:     rawattr.EncodeAttr(&st),
			Err:      0,
		}); err != nil {
			return err
		}
	}
	return nil
}

// direntFor builds the wire dirent record for an entry already stat'd by
// the caller, including the synthetic "." and ".." entries this handler
// also has to produce. Go's os.ReadDir does not expose the kernel's raw
// struct dirent, so only the fields a stat can supply (inode, name, type)
// are filled in; offset and reclen are not meaningful off the raw
// getdents stream, so offset is left zero and reclen is set to the fixed
// record size.
func direntFor(name string, ino uint64, dtype uint8) unix.Dirent {
	var d unix.Dirent
	d.Ino = ino
	d.Type = dtype
	max := len(d.Name) - 1
	if len(name) < max {
		max = len(name)
	}
	for i := 0; i < max; i++ {
		d.Name[i] = int8(name[i])
	}
	d.Name[max] = 0
	d.Reclen = uint16(rawattr.DirEntSize)
	return d
}

func direntType(mode uint32) uint8 {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return unix.DT_DIR
	case unix.S_IFLNK:
		return unix.DT_LNK
	case unix.S_IFIFO:
		return unix.DT_FIFO
	case unix.S_IFSOCK:
		return unix.DT_SOCK
	case unix.S_IFBLK:
		return unix.DT_BLK
	case unix.S_IFCHR:
		return unix.DT_CHR
	default:
		return unix.DT_REG
	}
}
