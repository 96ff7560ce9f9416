package sd

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/rstms/filza"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FileSystem is the implementation of filza.FileSystem for an SD card
// volume. The volume is any afero.Fs: a BasePathFs over the card's mount
// point, or a MemMapFs. Names are matched case-insensitively one path
// component at a time, the way FAT looks them up.
type FileSystem struct {
	fs afero.Fs
}

// ensure FileSystem implements filza.FileSystem
var _ filza.FileSystem = (*FileSystem)(nil)

// New returns a FileSystem for accessing the volume rooted at fs.
func New(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// NewMemory returns an empty in-memory volume.
func NewMemory() *FileSystem {
	return New(afero.NewMemMapFs())
}

// Fs returns the underlying afero filesystem.
func (f *FileSystem) Fs() afero.Fs {
	return f.fs
}

func clean(name string) string {
	return path.Clean("/" + name)
}

// resolve maps name onto the stored path. When the name does not exist the
// existing prefix is still resolved and the remainder is appended as given.
func (f *FileSystem) resolve(name string) (string, bool) {
	name = clean(name)
	if name == "/" {
		return name, true
	}
	current := "/"
	parts := strings.Split(strings.TrimPrefix(name, "/"), "/")
	for i, part := range parts {
		entry := f.lookup(current, part)
		if entry == nil {
			return path.Join(append([]string{current}, parts[i:]...)...), false
		}
		current = path.Join(current, entry.Name())
	}
	return current, true
}

func (f *FileSystem) lookup(dir, name string) filza.DirectoryEntry {
	d, err := f.readDir(dir)
	if err != nil {
		return nil
	}
	return d.Entry(name)
}

func (f *FileSystem) readDir(name string) (*Directory, error) {
	infos, err := afero.ReadDir(f.fs, name)
	if err != nil {
		return nil, Fatal(err)
	}
	return &Directory{name: name, infos: infos}, nil
}

func (f *FileSystem) isDir(name string) bool {
	info, err := f.fs.Stat(name)
	return err == nil && info.IsDir()
}

func (f *FileSystem) Exists(name string) bool {
	_, ok := f.resolve(name)
	return ok
}

func (f *FileSystem) Open(name string, mode filza.Mode) (filza.File, error) {
	p, ok := f.resolve(name)
	if ok && f.isDir(p) {
		return nil, Fatalf("is a directory: %s", name)
	}
	switch mode {
	case filza.ModeRead:
		if !ok {
			return nil, Fatalf("not found: %s", name)
		}
		file, err := f.fs.Open(p)
		if err != nil {
			return nil, Fatal(err)
		}
		return newFile(file, mode), nil
	case filza.ModeWrite:
		if !ok && !f.isDir(path.Dir(p)) {
			return nil, Fatalf("directory not found: %s", path.Dir(name))
		}
		file, err := f.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
		if err != nil {
			return nil, Fatal(err)
		}
		return newFile(file, mode), nil
	}
	return nil, Fatalf("invalid mode: %d", mode)
}

func (f *FileSystem) Remove(name string) error {
	p, ok := f.resolve(name)
	if !ok {
		return Fatalf("not found: %s", name)
	}
	if f.isDir(p) {
		return Fatalf("is a directory: %s", name)
	}
	if err := f.fs.Remove(p); err != nil {
		return Fatal(err)
	}
	return nil
}

// Mkdir creates name along with any missing parents.
func (f *FileSystem) Mkdir(name string) error {
	p, ok := f.resolve(name)
	if ok {
		return Fatalf("name already exists: %s", name)
	}
	if err := f.fs.MkdirAll(p, dirPerm); err != nil {
		return Fatal(err)
	}
	return nil
}

// Rmdir removes an empty directory.
func (f *FileSystem) Rmdir(name string) error {
	p, ok := f.resolve(name)
	if !ok {
		return Fatalf("not found: %s", name)
	}
	if p == "/" {
		return Fatalf("cannot remove root directory")
	}
	dir, err := f.readDir(p)
	if err != nil {
		return Fatalf("not a directory: %s", name)
	}
	if len(dir.infos) > 0 {
		return Fatalf("directory not empty: %s", name)
	}
	if err := f.fs.Remove(p); err != nil {
		return Fatal(err)
	}
	return nil
}

// OpenDir returns a cursor over the entries of name, sorted by name.
func (f *FileSystem) OpenDir(name string) (filza.Directory, error) {
	p, ok := f.resolve(name)
	if !ok {
		return nil, Fatalf("not found: %s", name)
	}
	if !f.isDir(p) {
		return nil, Fatalf("not a directory: %s", name)
	}
	return f.readDir(p)
}

func (f *FileSystem) Stat(name string) (filza.DirectoryEntry, error) {
	p, ok := f.resolve(name)
	if !ok {
		return nil, Fatalf("not found: %s", name)
	}
	info, err := f.fs.Stat(p)
	if err != nil {
		return nil, Fatal(err)
	}
	if p == "/" {
		return &DirectoryEntry{info: info, name: "/"}, nil
	}
	return &DirectoryEntry{info: info}, nil
}

func (f *FileSystem) Chtimes(name string, mtime time.Time) error {
	p, ok := f.resolve(name)
	if !ok {
		return Fatalf("not found: %s", name)
	}
	if err := f.fs.Chtimes(p, mtime, mtime); err != nil {
		return Fatal(err)
	}
	return nil
}
