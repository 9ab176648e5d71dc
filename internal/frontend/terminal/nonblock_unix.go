//go:build unix

package terminal

import "syscall"

const nonblockSupported = true

func setNonblock(fd int, nonblocking bool) error {
	return syscall.SetNonblock(fd, nonblocking)
}
