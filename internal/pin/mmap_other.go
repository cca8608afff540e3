//go:build !(linux || darwin || freebsd)

package pin

import "errors"

var errMapUnsupported = errors.New("pin: memory mapping not supported")

func mapCells(int) ([]uint32, func() error, error) {
	return nil, nil, errMapUnsupported
}
