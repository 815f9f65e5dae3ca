package controllers

import (
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// openForm parses a multipart request and opens the optional file in field. On failure the
// response is already written and ok is false. Callers must Close the form.
func openForm(w http.ResponseWriter, r *http.Request, field string, exts []string) (form *helpers.Form, file *domain.UploadedFile, ok bool) {
	form, ok = helpers.ParseForm(w, r, helpers.MaxUploadBytes)
	if !ok {
		return nil, nil, false
	}
	file, err := form.File(field, exts)
	if err != nil {
		form.Close()
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return nil, nil, false
	}
	return form, file, true
}
