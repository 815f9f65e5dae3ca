package domain

import (
	"context"
	"io"
)

// UploadedFile is a file received from a multipart request.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStorage persists uploaded media and addresses it by public URL.
type FileStorage interface {
	Save(ctx context.Context, folder string, file *UploadedFile) (url string, err error)
	Delete(ctx context.Context, url string) error
}
