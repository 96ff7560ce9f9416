package handle

import (
	"hash/crc32"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rstms/filza"
)

type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeText
	FileTypeImage
	FileTypeBinary
)

func (t FileType) String() string {
	switch t {
	case FileTypeText:
		return "text"
	case FileTypeImage:
		return "image"
	case FileTypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

var extensionTypes = map[string]FileType{
	"txt": FileTypeText, "csv": FileTypeText, "log": FileTypeText,
	"json": FileTypeText, "xml": FileTypeText, "html": FileTypeText,
	"htm": FileTypeText, "md": FileTypeText, "ini": FileTypeText,
	"cfg": FileTypeText, "conf": FileTypeText, "yaml": FileTypeText,
	"yml": FileTypeText, "gcode": FileTypeText,

	"png": FileTypeImage, "jpg": FileTypeImage, "jpeg": FileTypeImage,
	"gif": FileTypeImage, "bmp": FileTypeImage, "webp": FileTypeImage,
	"tif": FileTypeImage, "tiff": FileTypeImage, "ico": FileTypeImage,
	"svg": FileTypeImage,

	"bin": FileTypeBinary, "hex": FileTypeBinary, "elf": FileTypeBinary,
	"img": FileTypeBinary, "dat": FileTypeBinary, "raw": FileTypeBinary,
	"zip": FileTypeBinary, "gz": FileTypeBinary, "tar": FileTypeBinary,
	"exe": FileTypeBinary,
}

// ClassifyExtension maps the extension of filename to a FileType,
// ignoring case.
func ClassifyExtension(filename string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	return extensionTypes[ext]
}

// classifyMIME walks up the MIME hierarchy looking for a text or image
// ancestor.
func classifyMIME(mtype *mimetype.MIME) FileType {
	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case strings.HasPrefix(m.String(), "text/"):
			return FileTypeText
		case strings.HasPrefix(m.String(), "image/"):
			return FileTypeImage
		}
	}
	return FileTypeBinary
}

// openNamed opens name for reading without touching the handle's own
// descriptor.
func (h *Handle) openNamed(op, name string) (filza.File, error) {
	target := h.resolve(name)
	if !h.fs.Exists(target) {
		return nil, h.fail(op, target, ErrNotFound)
	}
	file, err := h.fs.Open(target, filza.ModeRead)
	if err != nil {
		return nil, h.fail(op, target, cause(ErrOpenFailed, err))
	}
	return file, nil
}

func (h *Handle) GetFileSize(name string) (int64, error) {
	file, err := h.openNamed("getFileSize", name)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	size, err := file.Size()
	if err != nil {
		return 0, h.fail("getFileSize", h.resolve(name), err)
	}
	h.logf("file size of %s: %d", name, size)
	return size, nil
}

// CalculateChecksum returns the CRC32 (IEEE) of the file's contents.
func (h *Handle) CalculateChecksum(name string) (uint32, error) {
	file, err := h.openNamed("calculateChecksum", name)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	crc := crc32.NewIEEE()
	if _, err := io.Copy(crc, file); err != nil {
		return 0, h.fail("calculateChecksum", h.resolve(name), err)
	}
	sum := crc.Sum32()
	h.logf("checksum of %s: %08x", name, sum)
	return sum, nil
}

// GetFileType classifies name by its extension only.
func (h *Handle) GetFileType(name string) FileType {
	ftype := ClassifyExtension(name)
	h.logf("file type of %s: %s", name, ftype)
	return ftype
}

// SniffFileType classifies name by its contents.
func (h *Handle) SniffFileType(name string) (FileType, error) {
	file, err := h.openNamed("sniffFileType", name)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer file.Close()
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return FileTypeUnknown, h.fail("sniffFileType", h.resolve(name), err)
	}
	ftype := classifyMIME(mtype)
	h.logf("detected %s for %s: %s", mtype, name, ftype)
	return ftype, nil
}

// GetTimestamp returns the modification time recorded in name's
// directory entry.
func (h *Handle) GetTimestamp(name string) (time.Time, error) {
	target := h.resolve(name)
	entry, err := h.fs.Stat(target)
	if err != nil {
		return time.Time{}, h.fail("getTimestamp", target, cause(ErrNotFound, err))
	}
	return entry.ModTime(), nil
}

func (h *Handle) SetTimestamp(name string, stamp time.Time) error {
	target := h.resolve(name)
	if !h.fs.Exists(target) {
		return h.fail("setTimestamp", target, ErrNotFound)
	}
	if err := h.fs.Chtimes(target, stamp); err != nil {
		return h.fail("setTimestamp", target, cause(ErrWriteFailed, err))
	}
	h.logf("timestamp of %s set to %s", name, stamp.Format(time.RFC3339))
	return nil
}
