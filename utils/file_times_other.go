//go:build !linux

package utils

import (
	"io/fs"
	"time"
)

// fileTimes falls back to the modification time on platforms without a
// portable way to read change/access times.
func fileTimes(info fs.FileInfo) (created, modified, accessed time.Time) {
	modified = info.ModTime()
	return modified, modified, modified
}
