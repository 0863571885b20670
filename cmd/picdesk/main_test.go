package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/picdesk/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLocal(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	album := filepath.Join(root, "album")
	require.NoError(t, os.MkdirAll(album, 0o755))
	for i := range 5 {
		name := filepath.Join(album, fmt.Sprintf("img-%d.png", i))
		require.NoError(t, os.WriteFile(name, testutil.PNG(i+1, 2), 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(album, "notes.txt"), []byte("skip"), 0o600))

	t.Setenv("PICDESK_LOCAL_ROOT", root)
	t.Setenv("PICDESK_LOG_LEVEL", "error")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-dir", "album", "-sections", "2,2"}, &out)
	require.NoError(t, err)

	assert.Equal(t, `5 items in 2 sections
section 0 (0,2)
  [0, 0] img-0.png (png 1x2, `+size(t, album, 0)+` bytes)
  [0, 1] img-1.png (png 2x2, `+size(t, album, 1)+` bytes)
section 1 (2,3)
  [1, 0] img-2.png (png 3x2, `+size(t, album, 2)+` bytes)
  [1, 1] img-3.png (png 4x2, `+size(t, album, 3)+` bytes)
  [1, 2] img-4.png (png 5x2, `+size(t, album, 4)+` bytes)
`, out.String())
}

func size(t *testing.T, dir string, i int) string {
	t.Helper()
	info, err := os.Stat(filepath.Join(dir, fmt.Sprintf("img-%d.png", i)))
	require.NoError(t, err)
	return fmt.Sprint(info.Size())
}

func TestRunMissingDirectory(t *testing.T) {
	isolate(t)
	t.Setenv("PICDESK_LOCAL_ROOT", t.TempDir())
	t.Setenv("PICDESK_LOG_LEVEL", "error")

	err := run(context.Background(), []string{"-dir", "missing"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("PICDESK_BACKEND", "ftp")

	err := run(context.Background(), nil, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown backend")
}
