package filza

import "time"

// Mode is the access intent for an opened file.
type Mode uint8

const (
	ModeRead Mode = iota
	// ModeWrite creates the file if needed and appends to it.
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	default:
		return "unknown"
	}
}

// A FileSystem is the storage backend of an SD card volume. Names are
// slash separated and rooted at the volume root.
type FileSystem interface {
	Exists(name string) bool
	Open(name string, mode Mode) (File, error)
	// Remove deletes a file. Directories are removed with Rmdir.
	Remove(name string) error
	Mkdir(name string) error
	Rmdir(name string) error
	OpenDir(name string) (Directory, error)
	Stat(name string) (DirectoryEntry, error)
	// Chtimes sets the modification time recorded in the directory entry.
	Chtimes(name string, mtime time.Time) error
}
