package handle

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// ListEntry records one entry visited by ListDirectory.
type ListEntry struct {
	Path  string
	Name  string
	Depth int
	IsDir bool
	Size  int64
	Line  string
}

// ListDirectory walks dirname depth first, logging one line per entry
// indented by indent tabs. Directories are followed by their own contents
// at indent+1; files carry their size. The visited entries are returned in
// the order they were logged.
func (h *Handle) ListDirectory(dirname string, indent int) ([]ListEntry, error) {
	target := h.resolve(dirname)
	dir, err := h.fs.OpenDir(target)
	if err != nil {
		return nil, h.fail("listDirectory", target, cause(ErrNotFound, err))
	}
	defer dir.Close()

	records := []ListEntry{}
	tabs := strings.Repeat("\t", indent)
	for {
		entry, err := dir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return records, h.fail("listDirectory", target, err)
		}

		record := ListEntry{
			Path:  path.Join(dir.Name(), entry.Name()),
			Name:  entry.Name(),
			Depth: indent,
			IsDir: entry.IsDir(),
		}
		if record.IsDir {
			record.Line = tabs + record.Name + "/"
		} else {
			record.Size = entry.Size()
			record.Line = fmt.Sprintf("%s%s\t\t%d", tabs, record.Name, record.Size)
		}
		h.logger.Log(record.Line)
		records = append(records, record)

		if record.IsDir {
			children, err := h.ListDirectory(record.Path, indent+1)
			records = append(records, children...)
			if err != nil {
				return records, err
			}
		}
	}
	return records, nil
}
