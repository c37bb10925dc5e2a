//go:build unix

package mmfile

import (
	"fmt"
	"os"
	"syscall"
)

// Open returns a read-only view of the file at path, memory-mapped when
// possible. Decoding never mutates the buffer, so the mapping is
// PROT_READ and private.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping keeps the pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{Data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: %s too large to map (%d bytes)", path, size)
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_PRIVATE)
	if err != nil {
		// Some filesystems refuse mmap; a plain read still works.
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, err
		}
		return &Mapping{Data: data}, nil
	}
	return &Mapping{Data: data, mapped: true}, nil
}

func munmap(data []byte) error {
	return syscall.Munmap(data)
}
