package filza

import "io"

// File is an open backend descriptor.
type File interface {
	io.ReadWriteCloser
	Name() string
	Size() (int64, error)
	// ParseFloat skips to the first numeric character and parses the
	// number found there. It returns 0 when the stream holds none.
	ParseFloat() (float64, error)
	// ReadStringUntil reads up to and discarding delim, or to the end of
	// the file.
	ReadStringUntil(delim byte) (string, error)
}
