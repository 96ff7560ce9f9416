package handle

import (
	"errors"
	"testing"

	"github.com/rstms/filza"
	"github.com/rstms/filza/sd"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
}

func (r *recorder) Log(message string) {
	r.lines = append(r.lines, message)
}

func newVolume(t *testing.T, files map[string]string) *sd.FileSystem {
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.Nil(t, afero.WriteFile(mem, name, []byte(content), 0644))
	}
	return sd.New(mem)
}

// brokenFS refuses to open anything for writing.
type brokenFS struct {
	filza.FileSystem
}

func (b brokenFS) Open(name string, mode filza.Mode) (filza.File, error) {
	if mode == filza.ModeWrite {
		return nil, errors.New("card write protected")
	}
	return b.FileSystem.Open(name, mode)
}

func TestHandleMissingFile(t *testing.T) {
	fs := newVolume(t, nil)
	for _, name := range []string{"a.txt", "LOG.CSV", "noext"} {
		h := New(fs, "/data", name)
		require.False(t, h.Exists())
		for _, mode := range []filza.Mode{filza.ModeRead, filza.ModeWrite} {
			err := h.Open(mode)
			require.ErrorIs(t, err, ErrNotFound)
			require.False(t, h.IsOpen())
		}
	}
}

func TestHandleDoubleOpen(t *testing.T) {
	fs := newVolume(t, map[string]string{"/data/a.txt": "abc\n"})
	h := New(fs, "/data", "a.txt")

	require.Nil(t, h.Open(filza.ModeRead))
	first := h.file
	err := h.Open(filza.ModeRead)
	require.ErrorIs(t, err, ErrAlreadyOpen)
	require.True(t, h.IsOpen())
	require.Same(t, first, h.file)

	require.Nil(t, h.Close())
	require.False(t, h.IsOpen())
	require.Nil(t, h.Close())
}

func TestHandleErrorType(t *testing.T) {
	fs := newVolume(t, nil)
	h := New(fs, "/", "missing.txt")
	err := h.Open(filza.ModeRead)
	var herr *Error
	require.True(t, errors.As(err, &herr))
	require.Equal(t, "open", herr.Op)
	require.Equal(t, "/missing.txt", herr.Path)
	require.Equal(t, "open /missing.txt: not found", err.Error())
}

func TestHandleOpenFailed(t *testing.T) {
	fs := brokenFS{newVolume(t, map[string]string{"/a.txt": ""})}
	h := New(fs, "/", "a.txt")
	err := h.Open(filza.ModeWrite)
	require.ErrorIs(t, err, ErrOpenFailed)
	require.Contains(t, err.Error(), "card write protected")
	require.False(t, h.IsOpen())
}

func TestHandleCreate(t *testing.T) {
	fs := newVolume(t, nil)
	require.Nil(t, fs.Mkdir("/data"))
	h := New(fs, "data", "new.txt")
	require.Equal(t, "/data", h.Path())
	require.Equal(t, "/data/new.txt", h.FullPath())

	require.Nil(t, h.Create())
	require.True(t, h.Exists())
	require.ErrorIs(t, h.Create(), ErrDestinationExists)

	size, err := h.GetFileSize("new.txt")
	require.Nil(t, err)
	require.Equal(t, int64(0), size)
}

func TestHandleLogsDiagnostics(t *testing.T) {
	fs := newVolume(t, map[string]string{"/a.txt": "1"})
	log := &recorder{}
	h := New(fs, "/", "a.txt", WithLogger(log))
	require.True(t, h.Exists())
	require.Contains(t, log.lines, "handle created for /a.txt")
	require.Contains(t, log.lines, "file exists: yes")

	_ = New(fs, "/", "b.txt", WithLogger(log)).Open(filza.ModeRead)
	require.Contains(t, log.lines, "error: open /b.txt: not found")
}
