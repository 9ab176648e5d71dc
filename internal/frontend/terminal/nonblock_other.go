//go:build !unix

package terminal

const nonblockSupported = false

func setNonblock(int, bool) error {
	return nil
}
