package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// LoadDirectory reads and sorts the children of dirPath without touching
// any state, so callers can validate a navigation target before committing
// to it. Entries whose metadata cannot be read are silently dropped: a
// partial listing beats an error that would stall the UI.
func LoadDirectory(dirPath string) ([]FileEntry, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	listed := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		fullPath := filepath.Join(dirPath, e.Name())

		isDir := e.IsDir()
		isSymlink := (info.Mode() & os.ModeSymlink) != 0

		// For symlinks, check if the target is a directory
		if isSymlink {
			targetInfo, err := os.Stat(fullPath)
			if err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		listed = append(listed, FileEntry{
			Name:      norm.NFC.String(e.Name()),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
		})
	}

	sortEntries(listed)
	return listed, nil
}

// sortEntries orders directories before files, each group lexicographic by
// name. The ordering is total; goParent relies on it to find the directory
// the user just left.
func sortEntries(entries []FileEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
}
