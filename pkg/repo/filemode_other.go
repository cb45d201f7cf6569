//go:build !unix

package repo

import "os"

func rawMode(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return modeFromFileInfo(info.Mode()), nil
}
