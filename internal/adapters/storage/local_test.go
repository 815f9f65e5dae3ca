package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalcms/internal/domain"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s := &localStorage{
		root:  root,
		now:   func() time.Time { return time.UnixMilli(1700000000000) },
		newID: func() string { return "0b5f4c2e-9d1a-4c67-8f0e-3a2b1c0d9e8f" },
	}
	ctx := context.Background()

	url, err := s.Save(ctx, "2024/Day 1/Archive", &domain.UploadedFile{Filename: "../../etc/my photo.png", Content: strings.NewReader("png")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/2024/Day_1/Archive/1700000000000-0b5f4c2e-my_photo.png", url)

	onDisk := filepath.Join(root, "2024", "Day_1", "Archive", "1700000000000-0b5f4c2e-my_photo.png")
	b, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))

	require.NoError(t, s.Delete(ctx, url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// Already gone.
	require.NoError(t, s.Delete(ctx, url))
}

func TestLocalStorage_SaveSameNameConcurrently(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root)
	ctx := context.Background()

	const n = 10
	urls := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			urls[i], errs[i] = s.Save(ctx, "2024/Day1/Archive", &domain.UploadedFile{Filename: "IMG.jpg", Content: strings.NewReader("jpg")})
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i := range n {
		require.NoError(t, errs[i])
		assert.True(t, strings.HasSuffix(urls[i], "-IMG.jpg"), urls[i])
		seen[urls[i]] = true
	}
	assert.Len(t, seen, n)

	entries, err := os.ReadDir(filepath.Join(root, "2024", "Day1", "Archive"))
	require.NoError(t, err)
	assert.Len(t, entries, n)
}

func TestLocalStorage_DeleteIgnoresForeignURLs(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(filepath.Dir(root), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	s := NewLocalStorage(root)
	ctx := context.Background()
	require.NoError(t, s.Delete(ctx, "https://cdn.example.com/a.png"))
	require.NoError(t, s.Delete(ctx, ""))
	require.NoError(t, s.Delete(ctx, "/uploads/../keep.txt"))

	_, err := os.Stat(outside)
	require.NoError(t, err)
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":        "photo.jpg",
		"my photo (1).jpg": "my_photo__1_.jpg",
		`C:\tmp\a.pdf`:     "a.pdf",
		"..":               "file",
		"":                 "file",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitize(in), in)
	}
}
