package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"festivalcms/internal/domain"
)

// URLPrefix is the path under which locally stored files are served.
const URLPrefix = "/uploads/"

type localStorage struct {
	root  string
	now   func() time.Time
	newID func() string
}

// NewLocalStorage stores files below root and addresses them as /uploads/<folder>/<file>.
// File names are <unix millis>-<short id>-<sanitized name>, so the same client name can be
// saved many times at once.
func NewLocalStorage(root string) domain.FileStorage {
	return &localStorage{root: root, now: time.Now, newID: uuid.NewString}
}

func (s *localStorage) Save(ctx context.Context, folder string, file *domain.UploadedFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel := path.Join(cleanFolder(folder), fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), s.newID()[:8], sanitize(file.Filename)))
	dst := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, file.Content); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}
	return URLPrefix + rel, nil
}

// Delete removes the file behind url. URLs not served by this storage and files that are
// already gone are ignored.
func (s *localStorage) Delete(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, URLPrefix)
	if !ok || rel == "" {
		return nil
	}
	rel = path.Clean("/" + rel)[1:]
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}
