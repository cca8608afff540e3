//go:build linux || darwin || freebsd

package pin

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

var errMapUnsupported = errors.New("pin: memory mapping not supported")

// mapCells maps n cells of anonymous private memory.
func mapCells(n int) ([]uint32, func() error, error) {
	mem, err := unix.Mmap(-1, 0, n*CellSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("pin: mmap %d bytes: %w", n*CellSize, err)
	}
	cells := unsafe.Slice((*uint32)(unsafe.Pointer(&mem[0])), n)
	free := func() error {
		if err := unix.Munmap(mem); err != nil {
			return fmt.Errorf("pin: munmap: %w", err)
		}
		return nil
	}
	return cells, free, nil
}
