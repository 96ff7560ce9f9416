package handle

import (
	"io"
	"strconv"
	"strings"

	"github.com/rstms/filza"
)

func (h *Handle) write(op string, data []byte) error {
	return h.with(op, filza.ModeWrite, func(f filza.File) error {
		n, err := f.Write(data)
		if err == nil && n < len(data) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return h.fail(op, h.FullPath(), cause(ErrWriteFailed, err))
		}
		h.logf("%s: wrote %d bytes", op, n)
		return nil
	})
}

// SaveFloat appends value on its own line with the handle's precision.
func (h *Handle) SaveFloat(value float64) error {
	return h.write("saveFloat", []byte(strconv.FormatFloat(value, 'f', h.precision, 64)+"\n"))
}

// SaveText appends text as is.
func (h *Handle) SaveText(text string) error {
	return h.write("saveText", []byte(text))
}

func (h *Handle) WriteLine(line string) error {
	return h.write("writeLine", []byte(line+"\n"))
}

// AppendLine is WriteLine; the backend always appends.
func (h *Handle) AppendLine(line string) error {
	return h.write("appendLine", []byte(line+"\n"))
}

func (h *Handle) WriteBytes(data []byte) error {
	return h.write("writeBytes", data)
}

// ReadFloat parses the first number in the file. The value is 0 when the
// file holds no number, and 0 with an error when it cannot be opened.
func (h *Handle) ReadFloat() (float64, error) {
	var value float64
	err := h.with("readFloat", filza.ModeRead, func(f filza.File) error {
		var err error
		value, err = f.ParseFloat()
		if err != nil {
			return h.fail("readFloat", h.FullPath(), err)
		}
		h.logf("read value: %v", value)
		return nil
	})
	return value, err
}

// ReadText returns the whole file.
func (h *Handle) ReadText() (string, error) {
	var text string
	err := h.with("readText", filza.ModeRead, func(f filza.File) error {
		data, err := io.ReadAll(f)
		if err != nil {
			return h.fail("readText", h.FullPath(), err)
		}
		text = string(data)
		h.logf("read %d bytes", len(data))
		return nil
	})
	return text, err
}

// ReadLine returns the first line of the file without its line ending.
func (h *Handle) ReadLine() (string, error) {
	var line string
	err := h.with("readLine", filza.ModeRead, func(f filza.File) error {
		var err error
		line, err = f.ReadStringUntil('\n')
		if err != nil {
			return h.fail("readLine", h.FullPath(), err)
		}
		line = strings.TrimSuffix(line, "\r")
		h.logf("read line: %s", line)
		return nil
	})
	return line, err
}

// ReadBytes fills buf from the start of the file and returns the number of
// bytes read, which is short when the file is smaller than buf.
func (h *Handle) ReadBytes(buf []byte) (int, error) {
	var n int
	err := h.with("readBytes", filza.ModeRead, func(f filza.File) error {
		var err error
		n, err = io.ReadFull(f, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = nil
		}
		if err != nil {
			return h.fail("readBytes", h.FullPath(), err)
		}
		h.logf("read %d bytes", n)
		return nil
	})
	return n, err
}
