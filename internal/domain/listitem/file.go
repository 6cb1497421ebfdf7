package listitem

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

const (
	// MaxFileNameLen is the maximum length of an attachment file name.
	MaxFileNameLen = 255

	// MaxContentTypeLen is the maximum length of a declared content type.
	MaxContentTypeLen = 100

	// DefaultContentType is used when an upload declares no content type.
	DefaultContentType = "application/octet-stream"
)

// File is a binary attachment bound to exactly one ListItem. The payload is
// stored inline as a column value, a deliberate simplicity trade-off that
// caps practical attachment size. Deleting the owning item cascades here.
type File struct {
	ID          int64
	ListItemID  int64
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
	CreatedAt   time.Time
}

// Validate checks business rules for the File entity. Rules are applied in
// order and the first violation is returned.
func (f *File) Validate() error {
	if strings.TrimSpace(f.FileName) == "" {
		return domain.Validationf("FileName is required.")
	}
	if len(f.FileName) > MaxFileNameLen {
		return domain.Validationf("FileName must be at most %d characters.", MaxFileNameLen)
	}
	if len(f.ContentType) > MaxContentTypeLen {
		return domain.Validationf("ContentType must be at most %d characters.", MaxContentTypeLen)
	}
	return nil
}

// EffectiveContentType returns the stored content type, or
// DefaultContentType when none was declared.
func (f *File) EffectiveContentType() string {
	if f.ContentType == "" {
		return DefaultContentType
	}
	return f.ContentType
}
