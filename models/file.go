package models

import "time"

// FileInfo is a single row in a directory scan result.
type FileInfo struct {
	FilePath     string    `json:"file_path"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	FileSizeText string    `json:"file_size_text"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
	DateAccessed time.Time `json:"date_accessed"`
}

// ScanDetail summarizes the most recent scan of a directory.
type ScanDetail struct {
	Directory string    `bson:"_id" json:"directory"`
	FileCount int       `bson:"file_count" json:"file_count"`
	TotalSize int64     `bson:"total_size" json:"total_size"`
	ScannedAt time.Time `bson:"scanned_at" json:"scanned_at"`
}
