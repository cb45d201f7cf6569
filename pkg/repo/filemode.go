package repo

import (
	"io/fs"
	"strconv"
	"strings"
)

// FormatMode zero-pads a stored mode to six digits for display. The
// stored encoding itself is never padded.
func FormatMode(mode string) string {
	if len(mode) >= 6 {
		return mode
	}
	return strings.Repeat("0", 6-len(mode)) + mode
}

// modeFromFileInfo rebuilds st_mode-style octal text from portable
// FileMode bits, for platforms without a raw stat mode.
func modeFromFileInfo(m fs.FileMode) string {
	bits := uint32(m.Perm())
	if m.IsDir() {
		bits |= 0o40000
	} else {
		bits |= 0o100000
	}
	return strconv.FormatUint(uint64(bits), 8)
}
