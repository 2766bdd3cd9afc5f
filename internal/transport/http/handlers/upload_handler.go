package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dimantha2004/Blog-publication/internal/storage"
	"github.com/dimantha2004/Blog-publication/internal/transport/http/middleware"
)

type UploadHandler struct {
	store *storage.DiskStore
}

func NewUploadHandler(store *storage.DiskStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts a multipart image and returns its public URL.
// Type and size are checked before anything touches the store.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadSize+1024)
	if err := r.ParseMultipartForm(storage.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the 5MB limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "Multipart field \"file\" is required")
		return
	}
	defer file.Close()

	url, err := h.store.Save(userID, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotAnImage):
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", "File must be an image")
		case errors.Is(err, storage.ErrTooLarge):
			writeError(w, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the 5MB limit")
		default:
			log.Printf("ERROR upload: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
