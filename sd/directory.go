package sd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rstms/filza"
)

// Directory implements filza.Directory as a cursor over a snapshot of
// the directory's entries taken when it was opened.
type Directory struct {
	name   string
	infos  []os.FileInfo
	next   int
	closed bool
}

// ensure Directory implements filza.Directory
var _ filza.Directory = (*Directory)(nil)

// DirectoryEntry implements filza.DirectoryEntry.
type DirectoryEntry struct {
	info os.FileInfo
	name string
}

// ensure DirectoryEntry implements filza.DirectoryEntry
var _ filza.DirectoryEntry = (*DirectoryEntry)(nil)

func (d *Directory) Name() string {
	return d.name
}

func (d *Directory) Next() (filza.DirectoryEntry, error) {
	if d.closed {
		return nil, Fatalf("directory closed: %s", d.name)
	}
	if d.next >= len(d.infos) {
		return nil, io.EOF
	}
	entry := &DirectoryEntry{info: d.infos[d.next]}
	d.next++
	return entry, nil
}

func (d *Directory) Close() error {
	d.closed = true
	return nil
}

// Entries returns every entry regardless of the cursor position.
func (d *Directory) Entries() []filza.DirectoryEntry {
	result := make([]filza.DirectoryEntry, 0, len(d.infos))
	for _, info := range d.infos {
		result = append(result, &DirectoryEntry{info: info})
	}
	return result
}

// Entry looks up name, preferring an exact match over a case-insensitive one.
func (d *Directory) Entry(name string) filza.DirectoryEntry {
	for _, info := range d.infos {
		if info.Name() == name {
			return &DirectoryEntry{info: info}
		}
	}

	name = strings.ToUpper(name)
	for _, entry := range d.Entries() {
		if strings.ToUpper(entry.Name()) == name {
			return entry
		}
	}

	return nil
}

func (e *DirectoryEntry) Name() string {
	if e.name != "" {
		return e.name
	}
	return e.info.Name()
}

func (e *DirectoryEntry) IsDir() bool {
	return e.info.IsDir()
}

func (e *DirectoryEntry) Size() int64 {
	if e.IsDir() {
		return 0
	}
	return e.info.Size()
}

func (e *DirectoryEntry) ModTime() time.Time {
	return e.info.ModTime()
}

// Attr derives the FAT attribute bits from the entry's mode and name.
func (e *DirectoryEntry) Attr() filza.DirectoryAttr {
	var attr filza.DirectoryAttr
	if e.IsDir() {
		attr |= filza.AttrDirectory
	} else {
		attr |= filza.AttrArchive
	}
	if e.info.Mode().Perm()&0200 == 0 {
		attr |= filza.AttrReadOnly
	}
	if strings.HasPrefix(e.Name(), ".") && e.Name() != "/" {
		attr |= filza.AttrHidden
	}
	return attr
}
