//go:build linux

package utils

import (
	"io/fs"
	"syscall"
	"time"
)

// fileTimes extracts change, modification and access times from the
// underlying stat record.
func fileTimes(info fs.FileInfo) (created, modified, accessed time.Time) {
	modified = info.ModTime()
	created, accessed = modified, modified
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		created = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
		accessed = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	}
	return created, modified, accessed
}
