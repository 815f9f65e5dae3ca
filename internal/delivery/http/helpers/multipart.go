package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"festivalcms/internal/domain"
)

// Accepted upload extensions per field kind.
var (
	ImageExts = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
	PDFExts   = []string{".pdf"}
	VideoExts = []string{".mp4", ".webm", ".mov", ".mkv"}
)

// MaxUploadBytes caps a multipart request body.
const MaxUploadBytes = 200 << 20

// memoryParts is how much of a multipart body is held in memory before spilling to disk.
const memoryParts = 16 << 20

// Form is a parsed multipart request. Close releases opened files and temporary storage.
type Form struct {
	r      *http.Request
	opened []io.Closer
}

// ParseForm parses a multipart body of at most maxBytes. On failure it writes a 400 JSON
// error and returns false.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (*Form, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(memoryParts); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid multipart form: "+err.Error())
		return nil, false
	}
	return &Form{r: r}, true
}

// Value returns the trimmed form value for key.
func (f *Form) Value(key string) string {
	return strings.TrimSpace(f.r.FormValue(key))
}

// File opens the single file uploaded under field. It returns nil, nil when no file was sent.
func (f *Form) File(field string, exts []string) (*domain.UploadedFile, error) {
	files, err := f.Files(field, exts, 1)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return files[0], nil
}

// Files opens up to limit files uploaded under field.
func (f *Form) Files(field string, exts []string, limit int) ([]*domain.UploadedFile, error) {
	if f.r.MultipartForm == nil {
		return nil, nil
	}
	headers := f.r.MultipartForm.File[field]
	if len(headers) > limit {
		return nil, fmt.Errorf("%w: at most %d files allowed in %q", domain.ErrInvalidInput, limit, field)
	}
	out := make([]*domain.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		if err := checkExt(fh, exts); err != nil {
			return nil, err
		}
		file, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		f.opened = append(f.opened, file)
		out = append(out, &domain.UploadedFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     file,
		})
	}
	return out, nil
}

func checkExt(fh *multipart.FileHeader, exts []string) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(exts, ext) {
		return fmt.Errorf("%w: %q has unsupported type, allowed: %s", domain.ErrInvalidInput, fh.Filename, strings.Join(exts, ", "))
	}
	return nil
}

func (f *Form) Close() {
	for _, c := range f.opened {
		_ = c.Close()
	}
	if f.r.MultipartForm != nil {
		_ = f.r.MultipartForm.RemoveAll()
	}
}
