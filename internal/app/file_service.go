package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// Compile-time check that FileService implements ports.FileService.
var _ ports.FileService = (*FileService)(nil)

// FileService implements ports.FileService. Payload bytes are only read for
// single-file downloads; listings carry metadata only.
type FileService struct {
	files  ports.FileRepository
	items  ports.ListItemRepository
	logger *slog.Logger
}

// NewFileService creates a FileService.
func NewFileService(files ports.FileRepository, items ports.ListItemRepository, logger *slog.Logger) *FileService {
	return &FileService{files: files, items: items, logger: logger}
}

// ListFiles returns attachment metadata for an item, newest first.
func (s *FileService) ListFiles(ctx context.Context, listItemID int64) ([]listitem.File, error) {
	if err := s.checkItem(ctx, listItemID); err != nil {
		return nil, err
	}

	files, err := s.files.ListFileMeta(ctx, listItemID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list files",
			slog.String("operation", "ListFiles"),
			slog.Int64("list_item_id", listItemID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return files, nil
}

// UploadFiles stores a batch of uploads against an item. Zero-length payloads
// are skipped; the batch is rejected when nothing non-empty remains. The
// surviving files are inserted in one transaction.
func (s *FileService) UploadFiles(ctx context.Context, listItemID int64, uploads []ports.FileUpload) ([]listitem.File, error) {
	if err := s.checkItem(ctx, listItemID); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, domain.Validationf("No files uploaded.")
	}

	files := make([]listitem.File, 0, len(uploads))
	for _, u := range uploads {
		if len(u.Data) == 0 {
			continue
		}
		f := listitem.File{
			ListItemID:  listItemID,
			FileName:    u.FileName,
			ContentType: u.ContentType,
			Size:        int64(len(u.Data)),
			Data:        u.Data,
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, domain.Validationf("No valid files to upload.")
	}

	if err := s.files.InsertFiles(ctx, files); err != nil {
		s.logger.ErrorContext(ctx, "failed to store files",
			slog.String("operation", "UploadFiles"),
			slog.Int64("list_item_id", listItemID),
			slog.Int("count", len(files)),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "files uploaded",
		slog.Int64("list_item_id", listItemID),
		slog.Int("count", len(files)),
	)

	// Strip payloads from the response; metadata only.
	for n := range files {
		files[n].Data = nil
	}
	return files, nil
}

// GetFile returns a stored file including its payload. The file must belong
// to the given item.
func (s *FileService) GetFile(ctx context.Context, listItemID, fileID int64) (*listitem.File, error) {
	f, err := s.files.GetFile(ctx, listItemID, fileID)
	if err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to load file",
				slog.String("operation", "GetFile"),
				slog.Int64("list_item_id", listItemID),
				slog.Int64("file_id", fileID),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return f, nil
}

// DeleteFile removes a stored file belonging to the given item.
func (s *FileService) DeleteFile(ctx context.Context, listItemID, fileID int64) error {
	if err := s.files.DeleteFile(ctx, listItemID, fileID); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to delete file",
				slog.String("operation", "DeleteFile"),
				slog.Int64("list_item_id", listItemID),
				slog.Int64("file_id", fileID),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "file deleted",
		slog.Int64("list_item_id", listItemID),
		slog.Int64("file_id", fileID),
	)
	return nil
}

// checkItem verifies the owning item exists.
func (s *FileService) checkItem(ctx context.Context, listItemID int64) error {
	if listItemID <= 0 {
		return domain.Validationf("Invalid ListItem id.")
	}

	exists, err := s.items.ListItemExists(ctx, listItemID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check list item",
			slog.Int64("list_item_id", listItemID),
			slog.Any("error", err),
		)
		return err
	}
	if !exists {
		return domain.NotFoundf("ListItem %d not found.", listItemID)
	}
	return nil
}
