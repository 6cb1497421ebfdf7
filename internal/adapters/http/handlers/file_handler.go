package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// multipartMemoryBytes is how much of a parsed multipart form is held in
// memory before spilling to temp files.
const multipartMemoryBytes = 4 << 20

// FileHandler handles HTTP requests for list item attachments.
type FileHandler struct {
	svc ports.FileService

	// maxRequestBytes caps the total size of an upload request body.
	maxRequestBytes int64
}

// NewFileHandler creates a new FileHandler with the given service port and
// upload size cap.
func NewFileHandler(svc ports.FileService, maxRequestBytes int64) *FileHandler {
	return &FileHandler{svc: svc, maxRequestBytes: maxRequestBytes}
}

// ListFiles handles GET /api/list-items/{listItemId}/files.
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	listItemID, err := parseID(r, "listItemId", "Invalid ListItem id.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	files, err := h.svc.ListFiles(r.Context(), listItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFileListResponse(files))
}

// UploadFiles handles POST /api/list-items/{listItemId}/files. The request is
// a multipart form; every file part, whatever its field name, is part of the
// batch. The whole request body is capped at maxRequestBytes.
func (h *FileHandler) UploadFiles(w http.ResponseWriter, r *http.Request) {
	listItemID, err := parseID(r, "listItemId", "Invalid ListItem id.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		dto.WriteErrorResponse(w, r, domain.Validationf("No files uploaded."))
		return
	}
	defer r.MultipartForm.RemoveAll()

	uploads, err := readUploads(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	stored, err := h.svc.UploadFiles(r.Context(), listItemID, uploads)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFileListResponse(stored))
}

// GetFile handles GET /api/list-items/{listItemId}/files/{fileId} and its
// /download alias. The payload is served with the stored content type and an
// attachment disposition.
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	listItemID, fileID, err := parseFilePath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	f, err := h.svc.GetFile(r.Context(), listItemID, fileID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.EffectiveContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.FileName))
	w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(f.Data); err != nil {
		// Client went away mid-download; nothing useful to do.
		return
	}
}

// DeleteFile handles DELETE /api/list-items/{listItemId}/files/{fileId}.
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	listItemID, fileID, err := parseFilePath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteFile(r.Context(), listItemID, fileID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseFilePath extracts the item and file ids from a file route. A malformed
// item id is a client mistake (400); a malformed file id can never match a
// stored file, so it reports the same not-found as a missing row.
func parseFilePath(r *http.Request) (listItemID, fileID int64, err error) {
	listItemID, err = parseID(r, "listItemId", "Invalid ListItem id.")
	if err != nil {
		return 0, 0, err
	}

	fileID, convErr := strconv.ParseInt(chi.URLParam(r, "fileId"), 10, 64)
	if convErr != nil || fileID <= 0 {
		return 0, 0, domain.NotFoundf("File not found.")
	}
	return listItemID, fileID, nil
}

// readUploads drains every file part of a parsed multipart form into memory.
// Field names don't matter; all file parts join the batch.
func readUploads(r *http.Request) ([]ports.FileUpload, error) {
	var uploads []ports.FileUpload
	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			part, err := fh.Open()
			if err != nil {
				return nil, fmt.Errorf("opening multipart file %q: %w", fh.Filename, err)
			}
			data, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				return nil, fmt.Errorf("reading multipart file %q: %w", fh.Filename, err)
			}

			uploads = append(uploads, ports.FileUpload{
				FileName:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}
	return uploads, nil
}
