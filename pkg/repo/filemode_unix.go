//go:build unix

package repo

import (
	"io/fs"
	"strconv"

	"golang.org/x/sys/unix"
)

// rawMode returns the file's st_mode as unpadded octal text, following
// symlinks like stat(2).
func rawMode(path string) (string, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return "", &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return strconv.FormatUint(uint64(st.Mode), 8), nil
}
