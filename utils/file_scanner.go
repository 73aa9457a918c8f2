package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/DanielJacob1998/capstone/models"
)

// ScanOptions controls a directory scan. Zero values mean "no filter";
// ExcludeHidden defaults to true when left nil.
type ScanOptions struct {
	Directory         string   `json:"directory"`
	ExcludeHidden     *bool    `json:"exclude_hidden"`
	ExcludeExtensions []string `json:"exclude_extensions"`
	Extensions        []string `json:"extensions"` // allow-list, e.g. [".go", ".md"]
	MinSize           int64    `json:"min_size"`
	MaxSize           int64    `json:"max_size"`
	ModifiedAfter     string   `json:"modified_after"`  // YYYY-MM-DD
	ModifiedBefore    string   `json:"modified_before"` // YYYY-MM-DD
	SortBy            string   `json:"sort_by"`         // file_name | file_size | date_modified
	SortOrder         string   `json:"sort_order"`      // asc | desc
}

// ScanDirectory walks opts.Directory recursively and returns metadata
// for every file passing the filters, sorted per opts.
func ScanDirectory(opts ScanOptions) ([]models.FileInfo, error) {
	if opts.Directory == "" {
		return nil, fmt.Errorf("directory is required")
	}
	excludeHidden := true
	if opts.ExcludeHidden != nil {
		excludeHidden = *opts.ExcludeHidden
	}

	var modAfter, modBefore time.Time
	if opts.ModifiedAfter != "" {
		t, err := models.ParseDate(opts.ModifiedAfter)
		if err != nil {
			return nil, fmt.Errorf("invalid modified_after %q, use YYYY-MM-DD", opts.ModifiedAfter)
		}
		modAfter = t
	}
	if opts.ModifiedBefore != "" {
		t, err := models.ParseDate(opts.ModifiedBefore)
		if err != nil {
			return nil, fmt.Errorf("invalid modified_before %q, use YYYY-MM-DD", opts.ModifiedBefore)
		}
		// Inclusive day bound.
		modBefore = t.AddDate(0, 0, 1)
	}

	files := []models.FileInfo{}
	err := filepath.WalkDir(opts.Directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if excludeHidden && path != opts.Directory && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if excludeHidden && strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if matchesExt(opts.ExcludeExtensions, ext) {
			return nil
		}
		if len(opts.Extensions) > 0 && !matchesExt(opts.Extensions, ext) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil // file vanished mid-walk
		}
		size := info.Size()
		if opts.MinSize > 0 && size < opts.MinSize {
			return nil
		}
		if opts.MaxSize > 0 && size > opts.MaxSize {
			return nil
		}

		created, modified, accessed := fileTimes(info)
		if !modAfter.IsZero() && modified.Before(modAfter) {
			return nil
		}
		if !modBefore.IsZero() && !modified.Before(modBefore) {
			return nil
		}

		files = append(files, models.FileInfo{
			FilePath:     path,
			FileName:     d.Name(),
			FileSize:     size,
			FileSizeText: humanize.Bytes(uint64(size)),
			DateCreated:  created,
			DateModified: modified,
			DateAccessed: accessed,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", opts.Directory, err)
	}

	sortFiles(files, opts.SortBy, opts.SortOrder)
	return files, nil
}

func matchesExt(list []string, ext string) bool {
	for _, e := range list {
		e = strings.ToLower(strings.TrimSpace(e))
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e == ext {
			return true
		}
	}
	return false
}

func sortFiles(files []models.FileInfo, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")
	var less func(i, j int) bool
	switch sortBy {
	case "file_size":
		less = func(i, j int) bool { return files[i].FileSize < files[j].FileSize }
	case "date_modified":
		less = func(i, j int) bool { return files[i].DateModified.Before(files[j].DateModified) }
	default: // file_name
		less = func(i, j int) bool {
			return strings.ToLower(files[i].FileName) < strings.ToLower(files[j].FileName)
		}
	}
	if desc {
		orig := less
		less = func(i, j int) bool { return orig(j, i) }
	}
	sort.SliceStable(files, less)
}
