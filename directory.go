package filza

import "time"

type DirectoryAttr uint8

const (
	AttrReadOnly  DirectoryAttr = 0x01
	AttrHidden    DirectoryAttr = 0x02
	AttrSystem    DirectoryAttr = 0x04
	AttrVolumeId  DirectoryAttr = 0x08
	AttrDirectory DirectoryAttr = 0x10
	AttrArchive   DirectoryAttr = 0x20
)

// Directory is an open directory cursor. Next returns io.EOF once
// every entry has been returned.
type Directory interface {
	Name() string
	Next() (DirectoryEntry, error)
	Close() error
}

// DirectoryEntry represents a single entry within a directory,
// which can be either another Directory or a File.
type DirectoryEntry interface {
	Name() string
	IsDir() bool
	// Size is meaningful only for files.
	Size() int64
	ModTime() time.Time
	Attr() DirectoryAttr
}
