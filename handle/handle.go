// Package handle binds a directory and file name on an SD card volume to
// at most one open backend descriptor and offers read, write and file
// management operations on top of it.
//
// A Handle is not safe for concurrent use, and two Handles bound to the
// same file are not coordinated.
package handle

import (
	"fmt"
	"path"
	"strings"

	"github.com/rstms/filza"
)

// DefaultPrecision is the number of decimals SaveFloat writes.
const DefaultPrecision = 2

type Handle struct {
	fs        filza.FileSystem
	path      string
	filename  string
	file      filza.File
	logger    Logger
	precision int
}

type Option func(*Handle)

func WithLogger(logger Logger) Option {
	return func(h *Handle) {
		h.logger = logger
	}
}

func WithPrecision(digits int) Option {
	return func(h *Handle) {
		h.precision = digits
	}
}

// New returns a closed Handle for filename in directory dir.
func New(fs filza.FileSystem, dir, filename string, opts ...Option) *Handle {
	h := &Handle{
		fs:        fs,
		path:      cleanDir(dir),
		filename:  filename,
		logger:    Discard,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logf("handle created for %s", h.FullPath())
	return h
}

func cleanDir(dir string) string {
	return path.Clean("/" + dir)
}

func (h *Handle) logf(format string, args ...interface{}) {
	h.logger.Log(fmt.Sprintf(format, args...))
}

func (h *Handle) Path() string {
	return h.path
}

func (h *Handle) Filename() string {
	return h.filename
}

func (h *Handle) FullPath() string {
	return path.Join(h.path, h.filename)
}

func (h *Handle) IsOpen() bool {
	return h.file != nil
}

// resolve interprets name relative to the current directory unless it is
// absolute.
func (h *Handle) resolve(name string) string {
	if strings.HasPrefix(name, "/") {
		return path.Clean(name)
	}
	return path.Join(h.path, name)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (h *Handle) Exists() bool {
	exists := h.fs.Exists(h.FullPath())
	h.logf("file exists: %s", yesNo(exists))
	return exists
}

// Open acquires a descriptor for the bound file. It refuses when a
// descriptor is already held, leaving that descriptor in place.
func (h *Handle) Open(mode filza.Mode) error {
	return h.open("open", mode)
}

func (h *Handle) open(op string, mode filza.Mode) error {
	if h.file != nil {
		return h.fail(op, h.FullPath(), ErrAlreadyOpen)
	}
	if !h.Exists() {
		return h.fail(op, h.FullPath(), ErrNotFound)
	}
	file, err := h.fs.Open(h.FullPath(), mode)
	if err != nil {
		return h.fail(op, h.FullPath(), cause(ErrOpenFailed, err))
	}
	h.file = file
	h.logf("file opened for %s", mode)
	return nil
}

// Close releases the descriptor if one is held.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	if err != nil {
		return h.fail("close", h.FullPath(), cause(ErrWriteFailed, err))
	}
	h.logf("file closed")
	return nil
}

// with opens the bound file, runs fn on the descriptor and closes it again
// on every path out.
func (h *Handle) with(op string, mode filza.Mode, fn func(filza.File) error) (err error) {
	if err := h.open(op, mode); err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(h.file)
}

// Create makes the bound file as an empty file.
func (h *Handle) Create() error {
	if h.Exists() {
		return h.fail("create", h.FullPath(), ErrDestinationExists)
	}
	file, err := h.fs.Open(h.FullPath(), filza.ModeWrite)
	if err != nil {
		return h.fail("create", h.FullPath(), cause(ErrOpenFailed, err))
	}
	if err := file.Close(); err != nil {
		return h.fail("create", h.FullPath(), cause(ErrWriteFailed, err))
	}
	h.logf("file created")
	return nil
}
