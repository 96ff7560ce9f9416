package handle

import (
	"io"
	"path"

	"github.com/rstms/filza"
)

const copyBufferSize = 512

// Remove deletes the bound file. The caller must not hold a descriptor on
// it.
func (h *Handle) Remove() error {
	if !h.Exists() {
		return h.fail("remove", h.FullPath(), ErrNotFound)
	}
	if err := h.fs.Remove(h.FullPath()); err != nil {
		return h.fail("remove", h.FullPath(), cause(ErrWriteFailed, err))
	}
	h.logf("file removed: %s", h.FullPath())
	return nil
}

// Move relocates the bound file to newPath, a file path resolved against
// the current directory, by copying it and then removing the original. It
// fails without touching anything when newPath already exists.
//
// Move is not atomic. If the copy fails part way the partial destination
// file is left behind next to the intact source, and the handle keeps its
// old path. The source is removed only after the whole copy succeeded.
func (h *Handle) Move(newPath string) error {
	return h.relocate("move", h.resolve(newPath))
}

// Rename gives the bound file a new name in its current directory. It is a
// Move in disguise and carries the same copy cost and non-atomic contract.
func (h *Handle) Rename(newName string) error {
	return h.relocate("rename", path.Join(h.path, newName))
}

func (h *Handle) relocate(op, dst string) error {
	src := h.FullPath()

	if h.file != nil {
		return h.fail(op, src, ErrAlreadyOpen)
	}
	if !h.fs.Exists(src) {
		return h.fail(op, src, ErrNotFound)
	}
	if h.fs.Exists(dst) {
		return h.fail(op, dst, ErrDestinationExists)
	}

	out, err := h.fs.Open(dst, filza.ModeWrite)
	if err != nil {
		return h.fail(op, dst, cause(ErrOpenFailed, err))
	}
	if err := h.open(op, filza.ModeRead); err != nil {
		out.Close()
		return err
	}

	count, copyErr := io.CopyBuffer(out, h.file, make([]byte, copyBufferSize))
	closeErr := out.Close()
	srcErr := h.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr == nil {
		copyErr = srcErr
	}
	if copyErr != nil {
		h.logf("%s: copy of %s stopped after %d bytes, partial file left at %s", op, src, count, dst)
		return h.fail(op, dst, cause(ErrWriteFailed, copyErr))
	}

	if err := h.fs.Remove(src); err != nil {
		return h.fail(op, src, cause(ErrWriteFailed, err))
	}

	h.path = path.Dir(dst)
	h.filename = path.Base(dst)
	h.logf("%s: %s -> %s (%d bytes)", op, src, dst, count)
	return nil
}

// CreateDirectory makes dir, which must not exist yet.
func (h *Handle) CreateDirectory(dir string) error {
	target := h.resolve(dir)
	if h.fs.Exists(target) {
		return h.fail("createDirectory", target, ErrDestinationExists)
	}
	if err := h.fs.Mkdir(target); err != nil {
		return h.fail("createDirectory", target, cause(ErrWriteFailed, err))
	}
	h.logf("directory created: %s", target)
	return nil
}

// RemoveDirectory removes dir, which must exist and be empty.
func (h *Handle) RemoveDirectory(dir string) error {
	target := h.resolve(dir)
	if !h.fs.Exists(target) {
		return h.fail("removeDirectory", target, ErrNotFound)
	}
	if err := h.fs.Rmdir(target); err != nil {
		return h.fail("removeDirectory", target, cause(ErrWriteFailed, err))
	}
	h.logf("directory removed: %s", target)
	return nil
}

// ChangeDirectory moves the handle to dir when dir is an existing
// directory and leaves it where it is otherwise.
func (h *Handle) ChangeDirectory(dir string) error {
	target := h.resolve(dir)
	entry, err := h.fs.Stat(target)
	if err != nil || !entry.IsDir() {
		return h.fail("changeDirectory", target, ErrNotFound)
	}
	h.path = target
	h.logf("current directory: %s", h.path)
	return nil
}
