package sd

import (
	"bufio"
	"io"
	"strconv"

	"github.com/rstms/filza"
	"github.com/spf13/afero"
)

// SectorSize is the read buffer size, one SD card block.
const SectorSize = 512

// File implements filza.File. Files opened for reading are buffered so
// the stream helpers can look ahead.
type File struct {
	file   afero.File
	mode   filza.Mode
	reader *bufio.Reader
}

// ensure File implements filza.File
var _ filza.File = (*File)(nil)

func newFile(file afero.File, mode filza.Mode) *File {
	f := &File{file: file, mode: mode}
	if mode == filza.ModeRead {
		f.reader = bufio.NewReaderSize(file, SectorSize)
	}
	return f
}

func (f *File) Name() string {
	return f.file.Name()
}

func (f *File) Read(p []byte) (int, error) {
	if f.reader == nil {
		return 0, Fatalf("not open for reading: %s", f.Name())
	}
	return f.reader.Read(p)
}

func (f *File) Write(p []byte) (int, error) {
	if f.mode != filza.ModeWrite {
		return 0, Fatalf("not open for writing: %s", f.Name())
	}
	n, err := f.file.Write(p)
	if err != nil {
		return n, Fatal(err)
	}
	return n, nil
}

func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return Fatal(err)
	}
	return nil
}

func (f *File) Size() (int64, error) {
	info, err := f.file.Stat()
	if err != nil {
		return 0, Fatal(err)
	}
	return info.Size(), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (f *File) ParseFloat() (float64, error) {
	if f.reader == nil {
		return 0, Fatalf("not open for reading: %s", f.Name())
	}

	// skip to the first character that can start a number
	for {
		b, err := f.reader.ReadByte()
		if err == io.EOF {
			return 0, nil
		}
		if err != nil {
			return 0, Fatal(err)
		}
		if isDigit(b) || b == '-' || b == '.' {
			if err := f.reader.UnreadByte(); err != nil {
				return 0, Fatal(err)
			}
			break
		}
	}

	var digits []byte
	seenDot := false
	for {
		b, err := f.reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, Fatal(err)
		}
		switch {
		case isDigit(b):
		case b == '-' && len(digits) == 0:
		case b == '.' && !seenDot:
			seenDot = true
		default:
			if err := f.reader.UnreadByte(); err != nil {
				return 0, Fatal(err)
			}
			return parseDigits(digits), nil
		}
		digits = append(digits, b)
	}
	return parseDigits(digits), nil
}

// a lone sign or dot parses as zero
func parseDigits(digits []byte) float64 {
	value, err := strconv.ParseFloat(string(digits), 64)
	if err != nil {
		return 0
	}
	return value
}

func (f *File) ReadStringUntil(delim byte) (string, error) {
	if f.reader == nil {
		return "", Fatalf("not open for reading: %s", f.Name())
	}
	line, err := f.reader.ReadString(delim)
	if err != nil && err != io.EOF {
		return "", Fatal(err)
	}
	if len(line) > 0 && line[len(line)-1] == delim {
		line = line[:len(line)-1]
	}
	return line, nil
}
