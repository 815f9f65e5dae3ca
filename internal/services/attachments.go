package services

import (
	"context"
	"fmt"
	"log/slog"

	"festivalcms/internal/domain"
)

// attachments applies the shared file lifecycle of content records: save on create,
// swap on update, remove on delete. Removal failures never fail the request.
type attachments struct {
	storage domain.FileStorage
	logger  *slog.Logger
}

func (a attachments) save(ctx context.Context, folder string, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return "", nil
	}
	url, err := a.storage.Save(ctx, folder, file)
	if err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return url, nil
}

// replace stores file and then removes oldURL. With no new file the old URL is kept.
func (a attachments) replace(ctx context.Context, folder, oldURL string, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return oldURL, nil
	}
	url, err := a.save(ctx, folder, file)
	if err != nil {
		return "", err
	}
	a.remove(ctx, oldURL)
	return url, nil
}

func (a attachments) remove(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := a.storage.Delete(ctx, url); err != nil {
		a.logger.WarnContext(ctx, "failed to delete stored file", "url", url, "err", err)
	}
}
