package handle

import (
	"hash/crc32"
	"testing"
	"time"

	"github.com/rstms/filza"
	"github.com/stretchr/testify/require"
)

func TestGetFileType(t *testing.T) {
	h := New(newVolume(t, nil), "/", "x")
	tests := []struct {
		name     string
		expected FileType
	}{
		{"report.txt", FileTypeText},
		{"photo.PNG", FileTypeImage},
		{"firmware.bin", FileTypeBinary},
		{"noext", FileTypeUnknown},
		{"DATA.CSV", FileTypeText},
		{"archive.tar.gz", FileTypeBinary},
		{"/logs/boot.Log", FileTypeText},
		{"notes.docx", FileTypeUnknown},
		{"trailing.", FileTypeUnknown},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, h.GetFileType(tt.name), tt.name)
	}
	require.Equal(t, "image", FileTypeImage.String())
	require.Equal(t, "unknown", FileTypeUnknown.String())
}

func TestSniffFileType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	fs := newVolume(t, map[string]string{
		"/notes.bin": "plain ascii text\n",
		"/image.dat": string(png),
		"/blob.txt":  "\x00\x01\x02\x03\xfe\xff\x00\x10",
		"/conf.json": `{"rate": 9600}`,
	})
	h := New(fs, "/", "x")

	for name, expected := range map[string]FileType{
		"notes.bin": FileTypeText,
		"image.dat": FileTypeImage,
		"blob.txt":  FileTypeBinary,
		"conf.json": FileTypeText,
	} {
		ftype, err := h.SniffFileType(name)
		require.Nil(t, err)
		require.Equal(t, expected, ftype, name)
	}

	_, err := h.SniffFileType("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCalculateChecksum(t *testing.T) {
	fs := newVolume(t, map[string]string{"/data/log.txt": "123456789"})
	h := New(fs, "/data", "log.txt")

	first, err := h.CalculateChecksum("log.txt")
	require.Nil(t, err)
	require.Equal(t, uint32(0xcbf43926), first)
	require.Equal(t, crc32.ChecksumIEEE([]byte("123456789")), first)

	second, err := h.CalculateChecksum("/data/log.txt")
	require.Nil(t, err)
	require.Equal(t, first, second)

	require.Nil(t, h.WriteBytes([]byte{0}))
	third, err := h.CalculateChecksum("log.txt")
	require.Nil(t, err)
	require.NotEqual(t, first, third)

	_, err = h.CalculateChecksum("missing.txt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCalculateChecksumDoesNotTouchHandle(t *testing.T) {
	fs := newVolume(t, map[string]string{"/a.txt": "a", "/b.txt": "b"})
	h := New(fs, "/", "a.txt")
	require.Nil(t, h.Open(filza.ModeRead))
	_, err := h.CalculateChecksum("b.txt")
	require.Nil(t, err)
	require.True(t, h.IsOpen())
	require.Nil(t, h.Close())
}

func TestGetFileSize(t *testing.T) {
	fs := newVolume(t, map[string]string{"/a.txt": "hello"})
	h := New(fs, "/", "a.txt")
	size, err := h.GetFileSize("a.txt")
	require.Nil(t, err)
	require.Equal(t, int64(5), size)

	size, err = h.GetFileSize("missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, int64(0), size)
}

func TestTimestamp(t *testing.T) {
	fs := newVolume(t, map[string]string{"/a.txt": "hello"})
	h := New(fs, "/", "a.txt")
	stamp := time.Date(2023, 7, 14, 8, 30, 0, 0, time.UTC)

	require.Nil(t, h.SetTimestamp("a.txt", stamp))
	got, err := h.GetTimestamp("A.TXT")
	require.Nil(t, err)
	require.True(t, stamp.Equal(got))

	require.ErrorIs(t, h.SetTimestamp("missing", stamp), ErrNotFound)
	_, err = h.GetTimestamp("missing")
	require.ErrorIs(t, err, ErrNotFound)
}
