package fs

import "time"

// Entry represents a single file or directory on disk. All fields are
// captured once when the directory is listed; callers never re-stat.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
}
