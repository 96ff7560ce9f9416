package handle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleListDirectory(t *testing.T) {
	fs := newVolume(t, map[string]string{
		"/a.txt":          "1",
		"/d1/b.txt":       "22",
		"/d1/d2/c.txt":    "333",
		"/d1/d2/d3/e.txt": "4444",
		"/d1/d2/d3/f.txt": "",
		"/d1/z.txt":       "55555",
		"/zz/readme.md":   "hello",
	})
	log := &recorder{}
	h := New(fs, "/", "x", WithLogger(log))
	log.lines = nil

	records, err := h.ListDirectory("/d1", 0)
	require.Nil(t, err)

	expected := []string{
		"b.txt\t\t2",
		"d2/",
		"\tc.txt\t\t3",
		"\td3/",
		"\t\te.txt\t\t4",
		"\t\tf.txt\t\t0",
		"z.txt\t\t5",
	}
	require.Equal(t, expected, log.lines)

	lines := []string{}
	for _, record := range records {
		lines = append(lines, record.Line)
	}
	require.Equal(t, expected, lines)

	require.Equal(t, "/d1/d2/d3/e.txt", records[4].Path)
	require.Equal(t, 2, records[4].Depth)
	require.True(t, records[3].IsDir)
	require.Equal(t, int64(0), records[3].Size)
	require.Equal(t, int64(5), records[6].Size)
	require.Equal(t, 0, records[6].Depth)
}

func TestHandleListDirectoryIndent(t *testing.T) {
	fs := newVolume(t, map[string]string{"/d/a.txt": "1", "/d/s/b.txt": "22"})
	h := New(fs, "/", "x")
	records, err := h.ListDirectory("d", 2)
	require.Nil(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "\t\ta.txt\t\t1", records[0].Line)
	require.Equal(t, "\t\ts/", records[1].Line)
	require.Equal(t, "\t\t\tb.txt\t\t2", records[2].Line)
	require.Equal(t, 3, records[2].Depth)
}

func TestHandleListDirectoryMissing(t *testing.T) {
	fs := newVolume(t, map[string]string{"/a.txt": "1"})
	h := New(fs, "/", "x")
	_, err := h.ListDirectory("/missing", 0)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = h.ListDirectory("/a.txt", 0)
	require.ErrorIs(t, err, ErrNotFound)
}
